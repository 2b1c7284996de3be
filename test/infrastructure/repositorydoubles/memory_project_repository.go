//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// MemoryProjectRepository is an in-memory project tree.
type MemoryProjectRepository struct {
	Files    map[string]string
	Writes   []string
	Removed  []string
	WriteErr error
}

var _ repositories.ProjectRepository = (*MemoryProjectRepository)(nil)

// NewMemoryProjectRepository creates a tree holding a copy of files.
func NewMemoryProjectRepository(files map[string]string) *MemoryProjectRepository {
	copied := make(map[string]string, len(files))
	for path, content := range files {
		copied[path] = content
	}
	return &MemoryProjectRepository{Files: copied}
}

func (m *MemoryProjectRepository) Root() string { return "/memory/app" }

func (m *MemoryProjectRepository) ReadFile(path string) (string, error) {
	content, ok := m.Files[path]
	if !ok {
		return "", fmt.Errorf("failed to read %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

func (m *MemoryProjectRepository) WriteFile(path, content string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[path] = content
	m.Writes = append(m.Writes, path)
	return nil
}

func (m *MemoryProjectRepository) Exists(path string) bool {
	if _, ok := m.Files[path]; ok {
		return true
	}
	prefix := strings.TrimSuffix(path, "/") + "/"
	for name := range m.Files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (m *MemoryProjectRepository) RemoveAll(path string) error {
	prefix := strings.TrimSuffix(path, "/") + "/"
	for name := range m.Files {
		if name == path || strings.HasPrefix(name, prefix) {
			delete(m.Files, name)
		}
	}
	m.Removed = append(m.Removed, path)
	return nil
}

// Paths returns every file path, sorted.
func (m *MemoryProjectRepository) Paths() []string {
	paths := make([]string, 0, len(m.Files))
	for path := range m.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
