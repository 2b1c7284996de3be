//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// StubWorkspaceRepository returns the same Workspace for every root.
type StubWorkspaceRepository struct {
	Workspace *repositories.Workspace
	OpenErr   error
	Roots     []string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) Open(root string) (*repositories.Workspace, error) {
	s.Roots = append(s.Roots, root)
	return s.Workspace, s.OpenErr
}
