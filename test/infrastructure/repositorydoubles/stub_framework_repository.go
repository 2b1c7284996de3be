//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// GeneratorEffect mutates the project files the way a real generator would and returns
// the paths it reports as created.
type GeneratorEffect func(files map[string]string) []string

// CreateFiles is a GeneratorEffect writing files verbatim.
func CreateFiles(files map[string]string) GeneratorEffect {
	return func(project map[string]string) []string {
		created := make([]string, 0, len(files))
		for path, content := range files {
			project[path] = content
			created = append(created, path)
		}
		return created
	}
}

// StubFrameworkRepository implements repositories.FrameworkRepository. Generators
// apply the Effects configured for their name to Project.
type StubFrameworkRepository struct {
	// --- Version ---
	VersionBanner string
	VersionErr    error
	VersionCalls  int

	// --- Generate / RunTask ---
	Project     *MemoryProjectRepository
	Effects     map[string]GeneratorEffect
	GenerateErr map[string]error
	TaskErr     error
	Calls       []string

	// --- StopPreloader ---
	StopErr   error
	StopCalls int
}

var _ repositories.FrameworkRepository = (*StubFrameworkRepository)(nil)

func (s *StubFrameworkRepository) Version(_ context.Context) (string, error) {
	s.VersionCalls++
	return s.VersionBanner, s.VersionErr
}

func (s *StubFrameworkRepository) Generate(
	_ context.Context,
	name string,
	args ...string,
) (entities.GeneratorResult, error) {
	s.Calls = append(s.Calls, strings.TrimSpace("generate "+name+" "+strings.Join(args, " ")))
	if err := s.GenerateErr[name]; err != nil {
		return entities.GeneratorResult{}, err
	}

	effect, ok := s.Effects[name]
	if !ok || s.Project == nil {
		return entities.GeneratorResult{}, nil
	}
	return entities.GeneratorResult{Created: effect(s.Project.Files)}, nil
}

func (s *StubFrameworkRepository) RunTask(_ context.Context, task string, args ...string) error {
	s.Calls = append(s.Calls, strings.TrimSpace("task "+task+" "+strings.Join(args, " ")))
	return s.TaskErr
}

func (s *StubFrameworkRepository) StopPreloader(_ context.Context) error {
	s.StopCalls++
	return s.StopErr
}
