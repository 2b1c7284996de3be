package main

import (
	"github.com/rios0rios0/railstemplate/internal"
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		logger.Fatalf("Failed to register providers: %s", err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		logger.Fatalf("Failed to start 'railstemplate': %s", dig.RootCause(err))
	}

	return appInternal
}
