package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings needs a config file path and is built by the controllers layer; the
// environment toggles are process-wide and provided here.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() (*EnvironmentSettings, error) {
		return LoadEnvironment(nil)
	})
}
