package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/railstemplate/internal/domain/commands"
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// PlanController prints the ordered steps of a template.
type PlanController struct {
	command     commands.Plan
	environment *entities.EnvironmentSettings
}

// NewPlanController creates a new PlanController.
func NewPlanController(command commands.Plan, environment *entities.EnvironmentSettings) *PlanController {
	return &PlanController{command: command, environment: environment}
}

// GetBind returns the Cobra command metadata for the plan controller.
func (it *PlanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plan",
		Short: "Show the steps a template would run",
		Long: `Print every step of a template in execution order, with the
generators it invokes and the edits it applies to each file.
Nothing is executed.`,
	}
}

// AddFlags has nothing to add; plan only uses the global flags.
func (it *PlanController) AddFlags(_ *cobra.Command) {}

// Execute prints the plan.
func (it *PlanController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.environment)
	if err != nil {
		return err
	}
	return it.command.Execute(context.Background(), settings, cmd.OutOrStdout())
}
