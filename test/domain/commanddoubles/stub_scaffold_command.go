//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/railstemplate/internal/domain/commands"
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// StubScaffoldCommand is a stub implementation of commands.Scaffold.
type StubScaffoldCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.ScaffoldResult
	LastSettings     *entities.Settings
	LastOpts         commands.ScaffoldOptions
}

var _ commands.Scaffold = (*StubScaffoldCommand)(nil)

func (s *StubScaffoldCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ScaffoldOptions,
) (*commands.ScaffoldResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
