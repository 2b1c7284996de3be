//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// StubTemplateRepository serves fixed templates by name.
type StubTemplateRepository struct {
	Templates map[string]*entities.Template
}

var _ repositories.TemplateRepository = (*StubTemplateRepository)(nil)

// NewStubTemplateRepository registers each template under its own name.
func NewStubTemplateRepository(templates ...*entities.Template) *StubTemplateRepository {
	stub := &StubTemplateRepository{Templates: make(map[string]*entities.Template)}
	for _, template := range templates {
		stub.Templates[template.Name] = template
	}
	return stub
}

func (s *StubTemplateRepository) Get(name string) (*entities.Template, error) {
	template, ok := s.Templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %q", name)
	}
	return template, nil
}

func (s *StubTemplateRepository) Names() []string {
	names := make([]string, 0, len(s.Templates))
	for name := range s.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
