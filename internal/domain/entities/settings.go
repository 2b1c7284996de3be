package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTemplate      = "devise42"
	DefaultCommitMessage = "Initial commit"
	DefaultRailsBin      = "bin/rails"
)

// Settings is the run configuration: an optional YAML file plus environment toggles.
type Settings struct {
	Template           string              `yaml:"template"`
	AppName            string              `yaml:"app_name"`
	RequiredRails      string              `yaml:"required_rails"`
	CommitMessage      string              `yaml:"commit_message"`
	Dependencies       DependencySettings  `yaml:"dependencies"`
	JavaScriptPackages []string            `yaml:"javascript_packages"`
	Environment        EnvironmentSettings `yaml:"-"`
}

// DependencySettings lists extra declarations added on top of the template's own.
type DependencySettings struct {
	Runtime []DependencySpec `yaml:"runtime"`
	DevTest []DependencySpec `yaml:"dev_test"`
}

const skipGitVariable = "SKIP_GIT"

// EnvironmentSettings holds the process-wide toggles.
type EnvironmentSettings struct {
	// SkipGit is true when SKIP_GIT is present, whatever its value (empty included).
	SkipGit   bool   `env:"-"`
	Debug     string `env:"DEBUG"`
	RailsBin  string `env:"RAILSTEMPLATE_RAILS_BIN"  envDefault:"bin/rails"`
	AssumeYes bool   `env:"RAILSTEMPLATE_ASSUME_YES"`
}

// SkipVCS reports whether SKIP_GIT was set.
func (e EnvironmentSettings) SkipVCS() bool {
	return e.SkipGit
}

// DebugEnabled reports whether DEBUG is exactly "true".
func (e EnvironmentSettings) DebugEnabled() bool {
	return e.Debug == "true"
}

// NewSettings loads the YAML file at path (empty path means defaults only) and
// attaches the already parsed environment toggles. A nil environment means defaults.
func NewSettings(path string, environment *EnvironmentSettings) (*Settings, error) {
	settings, err := loadSettingsFile(path)
	if err != nil {
		return nil, err
	}

	if environment == nil {
		environment = &EnvironmentSettings{RailsBin: DefaultRailsBin}
	}
	settings.Environment = *environment

	return settings, nil
}

// LoadEnvironment parses the toggles from environ, or from the process environment
// when environ is nil.
func LoadEnvironment(environ map[string]string) (*EnvironmentSettings, error) {
	var environment EnvironmentSettings
	if err := env.ParseWithOptions(&environment, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if environ == nil {
		_, environment.SkipGit = os.LookupEnv(skipGitVariable)
	} else {
		_, environment.SkipGit = environ[skipGitVariable]
	}
	return &environment, nil
}

func loadSettingsFile(path string) (*Settings, error) {
	settings := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
		logger.Debugf("Loaded settings from %s", path)
	}

	if settings.Template == "" {
		settings.Template = DefaultTemplate
	}
	if settings.CommitMessage == "" {
		settings.CommitMessage = DefaultCommitMessage
	}

	if err := validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".railstemplate.yaml",
		".railstemplate.yml",
		"railstemplate.yaml",
		"railstemplate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Customize returns a copy of template with the settings' extra dependencies and
// required range applied. The template itself is not modified.
func (s *Settings) Customize(template *Template) *Template {
	customized := *template
	customized.Dependencies = template.Dependencies.Clone()

	for _, spec := range s.Dependencies.Runtime {
		spec.Group = GroupRuntime
		customized.Dependencies.Declare(spec)
	}
	for _, spec := range s.Dependencies.DevTest {
		spec.Group = GroupDevTest
		customized.Dependencies.Declare(spec)
	}

	if s.RequiredRails != "" {
		customized.RequiredRange = s.RequiredRails
	}
	if customized.RequiredRange == "" {
		customized.RequiredRange = DefaultRequiredRange
	}

	if len(s.JavaScriptPackages) > 0 {
		actions := make([]Action, 0, len(s.JavaScriptPackages))
		for _, pkg := range s.JavaScriptPackages {
			actions = append(actions, AddPackage{Package: pkg})
		}
		customized.Steps = append(
			append([]PipelineStep(nil), template.Steps...),
			PipelineStep{Name: "extra_packages", Actions: actions},
		)
	}

	return &customized
}

// validate checks the file-provided values.
func validate(settings *Settings) error {
	for i, spec := range settings.Dependencies.Runtime {
		if spec.Name == "" {
			return fmt.Errorf("dependencies.runtime[%d].name is required", i)
		}
	}
	for i, spec := range settings.Dependencies.DevTest {
		if spec.Name == "" {
			return fmt.Errorf("dependencies.dev_test[%d].name is required", i)
		}
	}
	if settings.RequiredRails != "" {
		if _, err := ParseVersionRange(settings.RequiredRails); err != nil {
			return fmt.Errorf("required_rails: %w", err)
		}
	}
	return nil
}
