package repositories

import (
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/railstemplate/internal/domain/repositories"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/packages"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/rails"
)

// WorkspaceFactory opens the on-disk adapters for a Rails application directory.
type WorkspaceFactory struct {
	environment *entities.EnvironmentSettings
}

// NewWorkspaceFactory creates a WorkspaceFactory using the process toggles.
func NewWorkspaceFactory(environment *entities.EnvironmentSettings) *WorkspaceFactory {
	return &WorkspaceFactory{environment: environment}
}

// Open binds every adapter to root.
func (f *WorkspaceFactory) Open(root string) (*domainRepos.Workspace, error) {
	project, err := filesystem.NewProjectRepository(root)
	if err != nil {
		return nil, err
	}
	dir := project.Root()

	return &domainRepos.Workspace{
		Project:   project,
		Framework: rails.NewFrameworkRepository(dir, f.environment.RailsBin),
		Packages:  packages.NewPackageRepository(dir),
		VCS:       gitRepo.NewVCSRepository(dir),
	}, nil
}
