//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// SpyVCSRepository records version control calls in order.
type SpyVCSRepository struct {
	Calls     []string
	Messages  []string
	InitErr   error
	AddErr    error
	CommitErr error
}

var _ repositories.VCSRepository = (*SpyVCSRepository)(nil)

func (s *SpyVCSRepository) Init(_ context.Context) error {
	s.Calls = append(s.Calls, "init")
	return s.InitErr
}

func (s *SpyVCSRepository) AddAll(_ context.Context) error {
	s.Calls = append(s.Calls, "add")
	return s.AddErr
}

func (s *SpyVCSRepository) Commit(_ context.Context, message string) error {
	s.Calls = append(s.Calls, "commit")
	s.Messages = append(s.Messages, message)
	return s.CommitErr
}
