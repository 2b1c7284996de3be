//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/rails"
)

func TestTemplateRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a template by name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewTemplateRegistry()
		reg.Register(rails.TemplateBase, rails.BaseTemplate)

		// when
		template, err := reg.Get(rails.TemplateBase)

		// then
		require.NoError(t, err)
		assert.Equal(t, rails.TemplateBase, template.Name)
	})

	t.Run("should return a fresh template on every call", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewTemplateRegistry()
		reg.Register(rails.TemplateDevise42, rails.Devise42Template)
		first, err := reg.Get(rails.TemplateDevise42)
		require.NoError(t, err)

		// when
		first.Dependencies.Declare(entities.DependencySpec{Name: "pundit"})
		second, err := reg.Get(rails.TemplateDevise42)

		// then
		require.NoError(t, err)
		assert.Equal(t, first.Dependencies.Len()-1, second.Dependencies.Len())
	})

	t.Run("should list available names on an unknown template", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewTemplateRegistry()
		reg.Register(rails.TemplateDevise42, rails.Devise42Template)
		reg.Register(rails.TemplateBase, rails.BaseTemplate)

		// when
		_, err := reg.Get("rails7")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "[base devise42]")
		assert.Equal(t, []string{"base", "devise42"}, reg.Names())
	})
}
