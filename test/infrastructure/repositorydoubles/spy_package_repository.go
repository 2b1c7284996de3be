//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// SpyPackageRepository records package manager calls.
type SpyPackageRepository struct {
	ResolveCalls int
	ResolveErr   error
	Packages     []string
	AddErr       error
}

var _ repositories.PackageRepository = (*SpyPackageRepository)(nil)

func (s *SpyPackageRepository) ResolveManifest(_ context.Context) error {
	s.ResolveCalls++
	return s.ResolveErr
}

func (s *SpyPackageRepository) AddJavaScriptPackage(_ context.Context, pkg string) error {
	s.Packages = append(s.Packages, pkg)
	return s.AddErr
}
