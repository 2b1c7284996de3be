package repositories

// Workspace bundles the adapters bound to one generated project directory.
type Workspace struct {
	Project   ProjectRepository
	Framework FrameworkRepository
	Packages  PackageRepository
	VCS       VCSRepository
}

// WorkspaceRepository opens a Workspace rooted at a project directory.
type WorkspaceRepository interface {
	Open(root string) (*Workspace, error)
}
