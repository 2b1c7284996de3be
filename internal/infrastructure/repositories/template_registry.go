package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// TemplateFactory builds a fresh Template on every call.
type TemplateFactory func() *entities.Template

// TemplateRegistry manages all registered scaffolding templates.
type TemplateRegistry struct {
	templates map[string]TemplateFactory
}

// NewTemplateRegistry creates an empty template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]TemplateFactory),
	}
}

// Register adds a template factory under the given name (e.g. "base").
func (r *TemplateRegistry) Register(name string, factory TemplateFactory) {
	r.templates[name] = factory
}

// Get returns a new instance of the named template.
func (r *TemplateRegistry) Get(name string) (*entities.Template, error) {
	factory, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %q (available: %v)", name, r.Names())
	}
	return factory(), nil
}

// Names returns the sorted list of registered template names.
func (r *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
