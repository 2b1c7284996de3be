package repositories

import "github.com/rios0rios0/railstemplate/internal/domain/entities"

// TemplateRepository is the catalog of scaffolding templates.
type TemplateRepository interface {
	Get(name string) (*entities.Template, error)
	Names() []string
}
