package repositories

// ProjectRepository is the generated project's file tree. Paths are relative to the
// project root.
type ProjectRepository interface {
	Root() string
	ReadFile(path string) (string, error)
	// WriteFile replaces the whole file; a failed write leaves the previous content.
	WriteFile(path, content string) error
	Exists(path string) bool
	RemoveAll(path string) error
}
