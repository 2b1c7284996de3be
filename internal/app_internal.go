package internal

import (
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/controllers"
)

// AppInternal exposes the controllers bound to CLI commands.
type AppInternal struct {
	controllers     []entities.Controller
	applyController *controllers.ApplyController
	environment     *entities.EnvironmentSettings
}

// NewAppInternal creates an AppInternal from the aggregated controllers.
func NewAppInternal(
	all *[]entities.Controller,
	applyController *controllers.ApplyController,
	environment *entities.EnvironmentSettings,
) *AppInternal {
	return &AppInternal{controllers: *all, applyController: applyController, environment: environment}
}

// GetControllers returns every controller, in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// ApplyController returns the controller the root command delegates to.
func (it *AppInternal) ApplyController() *controllers.ApplyController {
	return it.applyController
}

// Environment returns the process toggles shared by every controller.
func (it *AppInternal) Environment() *entities.EnvironmentSettings {
	return it.environment
}
