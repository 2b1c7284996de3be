package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultFileMode = 0o644

// ProjectRepository is the on-disk project tree.
type ProjectRepository struct {
	root string
}

// NewProjectRepository roots a ProjectRepository at dir.
func NewProjectRepository(dir string) (*ProjectRepository, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &ProjectRepository{root: root}, nil
}

func (it *ProjectRepository) Root() string {
	return it.root
}

func (it *ProjectRepository) ReadFile(path string) (string, error) {
	full, err := it.resolve(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile writes to a sibling temp file and renames it over path, keeping the
// original permissions.
func (it *ProjectRepository) WriteFile(path, content string) error {
	full, err := it.resolve(path)
	if err != nil {
		return err
	}

	mode := os.FileMode(defaultFileMode)
	if info, statErr := os.Stat(full); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), "."+filepath.Base(full)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Rename(tmpName, full); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (it *ProjectRepository) Exists(path string) bool {
	full, err := it.resolve(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

func (it *ProjectRepository) RemoveAll(path string) error {
	full, err := it.resolve(path)
	if err != nil {
		return err
	}
	if full == it.root {
		return errors.New("refusing to remove the project root")
	}
	return os.RemoveAll(full)
}

// resolve joins a project-relative path to the root and rejects escapes.
func (it *ProjectRepository) resolve(path string) (string, error) {
	full := filepath.Join(it.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(it.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the project root", path)
	}
	return full, nil
}
