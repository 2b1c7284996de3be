package packages

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/railstemplate/internal/infrastructure/repositories/shell"
)

type processRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// PackageRepository runs Bundler for the Gemfile and Yarn for front-end packages.
type PackageRepository struct {
	runner processRunner
}

// NewPackageRepository creates a PackageRepository running inside dir.
func NewPackageRepository(dir string) *PackageRepository {
	return &PackageRepository{runner: shell.NewRunner(dir)}
}

func (it *PackageRepository) ResolveManifest(ctx context.Context) error {
	logger.Info("Running bundle install...")
	_, err := it.runner.Run(ctx, "bundle", "install")
	return err
}

func (it *PackageRepository) AddJavaScriptPackage(ctx context.Context, pkg string) error {
	logger.Infof("Running yarn add %s...", pkg)
	_, err := it.runner.Run(ctx, "yarn", "add", pkg)
	return err
}
