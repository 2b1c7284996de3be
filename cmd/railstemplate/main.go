package main

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/railstemplate/internal"
	"github.com/rios0rios0/railstemplate/internal/infrastructure/controllers"
)

func buildRootCommand(applyController *controllers.ApplyController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "railstemplate [project-dir]",
		Short: "Starter template engine for new Rails applications",
		Long: `Turns a freshly generated Rails application into a ready-to-run starter:
HAML views, friendly_id slugs, Bootstrap with Font Awesome, a Home page and,
with the devise42 template, sign-in through the 42 intranet.

Usage:
  railstemplate .                  Apply the default template to the current app
  railstemplate apply path/to/app  Apply a template to a specific app
  railstemplate plan -t base       Show what a template would do`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			return applyController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("template", "t", "",
		"Template to apply (base, devise42)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	// The root command behaves like "apply"
	applyController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	// Inject controllers via DIG
	appContext := injectAppContext()
	if appContext.Environment().DebugEnabled() {
		logger.SetLevel(logger.DebugLevel)
	}
	cobraRoot := buildRootCommand(appContext.ApplyController())
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'railstemplate': %s", err)
	}
}
