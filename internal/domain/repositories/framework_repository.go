package repositories

import (
	"context"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// FrameworkRepository abstracts the host web framework's command line: its version,
// its generators and tasks. Every call is synchronous; failures wrap
// entities.ErrGeneratorFailure.
type FrameworkRepository interface {
	// Version returns the running framework version banner (e.g. "Rails 6.1.4").
	Version(ctx context.Context) (string, error)

	// Generate runs a named generator and reports the files it created.
	Generate(ctx context.Context, name string, args ...string) (entities.GeneratorResult, error)

	// RunTask runs a named framework task.
	RunTask(ctx context.Context, task string, args ...string) error

	// StopPreloader stops the background application preloader.
	StopPreloader(ctx context.Context) error
}
