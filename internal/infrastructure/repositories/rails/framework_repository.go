package rails

import (
	"context"
	"regexp"
	"strings"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/shell"
)

// createdLinePattern matches the "create <path>" lines Rails generators print.
var createdLinePattern = regexp.MustCompile(`(?m)^\s*create\s+(\S+)\s*$`)

// processRunner is the subset of shell.Runner used here.
type processRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// FrameworkRepository drives the Rails command line of one application.
type FrameworkRepository struct {
	runner   processRunner
	railsBin string
}

// NewFrameworkRepository creates a FrameworkRepository running railsBin inside dir.
func NewFrameworkRepository(dir, railsBin string) *FrameworkRepository {
	return newFrameworkRepository(shell.NewRunner(dir), railsBin)
}

func newFrameworkRepository(runner processRunner, railsBin string) *FrameworkRepository {
	if railsBin == "" {
		railsBin = entities.DefaultRailsBin
	}
	return &FrameworkRepository{runner: runner, railsBin: railsBin}
}

func (it *FrameworkRepository) Version(ctx context.Context) (string, error) {
	output, err := it.runner.Run(ctx, it.railsBin, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// Generate runs "rails generate" and reports the created files from its output.
func (it *FrameworkRepository) Generate(
	ctx context.Context,
	name string,
	args ...string,
) (entities.GeneratorResult, error) {
	output, err := it.runner.Run(ctx, it.railsBin, append([]string{"generate", name}, args...)...)
	if err != nil {
		return entities.GeneratorResult{Output: output}, err
	}
	return entities.GeneratorResult{Created: ParseCreatedFiles(output), Output: output}, nil
}

func (it *FrameworkRepository) RunTask(ctx context.Context, task string, args ...string) error {
	_, err := it.runner.Run(ctx, it.railsBin, append([]string{task}, args...)...)
	return err
}

// StopPreloader stops Spring.
func (it *FrameworkRepository) StopPreloader(ctx context.Context) error {
	_, err := it.runner.Run(ctx, "spring", "stop")
	return err
}

// ParseCreatedFiles extracts the paths of "create" lines, in output order.
func ParseCreatedFiles(output string) []string {
	matches := createdLinePattern.FindAllStringSubmatch(output, -1)
	created := make([]string, 0, len(matches))
	for _, match := range matches {
		created = append(created, match[1])
	}
	return created
}
