//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/railstemplate/internal/domain/commands"
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// StubPlanCommand is a stub implementation of commands.Plan.
type StubPlanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Plan = (*StubPlanCommand)(nil)

func (s *StubPlanCommand) Execute(_ context.Context, settings *entities.Settings, _ io.Writer) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.ExecuteErr
}
