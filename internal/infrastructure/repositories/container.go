package repositories

import (
	"io"
	"os"

	domainRepos "github.com/rios0rios0/railstemplate/internal/domain/repositories"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/prompt"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/rails"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register template registry with all template factories
	if err := container.Provide(func() domainRepos.TemplateRepository {
		reg := NewTemplateRegistry()
		reg.Register(rails.TemplateBase, rails.BaseTemplate)
		reg.Register(rails.TemplateDevise42, rails.Devise42Template)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func(factory *WorkspaceFactory) domainRepos.WorkspaceRepository {
		return factory
	}); err != nil {
		return err
	}
	if err := container.Provide(NewWorkspaceFactory); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.PromptRepository {
		return prompt.NewPromptRepository()
	}); err != nil {
		return err
	}

	// Summary and diagnostics go to stdout
	if err := container.Provide(func() io.Writer {
		return os.Stdout
	}); err != nil {
		return err
	}

	return nil
}
