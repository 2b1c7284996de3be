package controllers

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/railstemplate/internal/domain/commands"
	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// ApplyController runs a template against a freshly generated application.
type ApplyController struct {
	command     commands.Scaffold
	environment *entities.EnvironmentSettings
}

// NewApplyController creates a new ApplyController.
func NewApplyController(
	command commands.Scaffold,
	environment *entities.EnvironmentSettings,
) *ApplyController {
	return &ApplyController{command: command, environment: environment}
}

// GetBind returns the Cobra command metadata for the apply controller.
func (it *ApplyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "apply [project-dir]",
		Short: "Apply a starter template to a new Rails application",
		Long: `Apply a starter template to a freshly generated Rails application.

The template declares gems, runs generators, rewrites generated files and
finally commits the result (unless SKIP_GIT is set). The run stops at the
first failing step; the tree is left as that step left it.`,
	}
}

// AddFlags adds the apply-specific flags to the given Cobra command.
func (it *ApplyController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("app-name", "", "Application name shown in the summary (default: directory name)")
	cmd.Flags().Bool("skip-git", false, "Do not initialise git or commit (same as SKIP_GIT)")
	cmd.Flags().Bool("defaults", false, "Answer every prompt with its default")
}

// Execute runs the scaffolding pipeline.
func (it *ApplyController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	appName, _ := cmd.Flags().GetString("app-name")
	skipGit, _ := cmd.Flags().GetBool("skip-git")
	acceptDefaults, _ := cmd.Flags().GetBool("defaults")

	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}
	if appName == "" {
		if abs, err := filepath.Abs(projectDir); err == nil {
			appName = filepath.Base(abs)
		}
	}

	settings, err := loadSettings(cmd, it.environment)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(ctx, settings, commands.ScaffoldOptions{
		ProjectDir:     projectDir,
		AppName:        appName,
		SkipVCS:        skipGit,
		AcceptDefaults: acceptDefaults,
	})
	if err != nil {
		if result != nil {
			logger.Debugf("Pipeline states: %v", result.States)
		}
		return fmt.Errorf("template %q failed: %w", settings.Template, err)
	}
	return nil
}
