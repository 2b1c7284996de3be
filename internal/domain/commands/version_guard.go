package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// VersionGuard gates a run on the host framework version.
type VersionGuard struct {
	framework repositories.FrameworkRepository
	prompt    repositories.PromptRepository
}

// NewVersionGuard creates a VersionGuard.
func NewVersionGuard(
	framework repositories.FrameworkRepository,
	prompt repositories.PromptRepository,
) *VersionGuard {
	return &VersionGuard{framework: framework, prompt: prompt}
}

// Check returns nil when the running version satisfies required, or when the user
// chose to continue anyway. A declined confirmation returns ErrVersionMismatch.
func (it *VersionGuard) Check(ctx context.Context, required string) error {
	versionRange, err := entities.ParseVersionRange(required)
	if err != nil {
		return err
	}

	actual, err := it.framework.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to read framework version: %w", err)
	}

	satisfied, checkErr := versionRange.Satisfied(actual)
	if checkErr != nil {
		logger.Warnf("Could not interpret framework version %q: %v", actual, checkErr)
	}
	if satisfied {
		logger.Debugf("Framework version %s satisfies %s", actual, versionRange)
		return nil
	}

	question := fmt.Sprintf(
		"This template requires Rails %s but you are running %s. Continue anyway?",
		versionRange, actual,
	)
	proceed, err := it.prompt.Confirm(ctx, question, false)
	if err != nil {
		return fmt.Errorf("failed to confirm version mismatch: %w", err)
	}
	if !proceed {
		return fmt.Errorf("%w: %s does not satisfy %s", entities.ErrVersionMismatch, actual, versionRange)
	}

	logger.Warnf("Continuing with unsupported framework version %s", actual)
	return nil
}
