package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// loadSettings reads --config (or an auto-detected file, if any), attaches the
// process toggles and applies the --template override.
func loadSettings(cmd *cobra.Command, environment *entities.EnvironmentSettings) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	template, _ := cmd.Flags().GetString("template")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err == nil {
			cfgPath = found
		} else {
			logger.Debugf("No config file found, using template defaults: %v", err)
		}
	}
	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)
	}

	settings, err := entities.NewSettings(cfgPath, environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if template != "" {
		settings.Template = template
	}
	return settings, nil
}
