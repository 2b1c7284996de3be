package repositories

import "context"

// PackageRepository delegates package resolution to the external package managers.
type PackageRepository interface {
	// ResolveManifest installs whatever the dependency manifest declares.
	ResolveManifest(ctx context.Context) error

	// AddJavaScriptPackage adds a front-end package (e.g. "bootstrap@next").
	AddJavaScriptPackage(ctx context.Context, pkg string) error
}
