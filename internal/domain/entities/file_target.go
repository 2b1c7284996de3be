package entities

import (
	"fmt"
	"path"
	"sort"
)

// FileTarget names a file inside the project tree. Either Path is fixed at authoring
// time, or the file is taken from the files reported by an earlier generator
// invocation (CreatedBy) whose path matches the glob Match.
type FileTarget struct {
	Path      string
	CreatedBy string
	Match     string
}

// FixedFile targets a known relative path.
func FixedFile(relPath string) FileTarget {
	return FileTarget{Path: relPath}
}

// GeneratedFile targets the file a captured generator invocation created matching glob.
func GeneratedFile(captureKey, glob string) FileTarget {
	return FileTarget{CreatedBy: captureKey, Match: glob}
}

// Resolve returns the relative path of the target. Generated targets must match
// exactly one reported file.
func (t FileTarget) Resolve(results map[string]GeneratorResult) (string, error) {
	if t.CreatedBy == "" {
		return t.Path, nil
	}

	result, ok := results[t.CreatedBy]
	if !ok {
		return "", fmt.Errorf("%w: no generator captured as %q", ErrTargetNotResolved, t.CreatedBy)
	}

	var matches []string
	for _, created := range result.Created {
		if matched, _ := path.Match(t.Match, created); matched {
			matches = append(matches, created)
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q created nothing matching %q", ErrTargetNotResolved, t.CreatedBy, t.Match)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf(
			"%w: %q created %d files matching %q: %v",
			ErrTargetNotResolved, t.CreatedBy, len(matches), t.Match, matches,
		)
	}
}

func (t FileTarget) String() string {
	if t.CreatedBy == "" {
		return t.Path
	}
	return fmt.Sprintf("<%s created %s>", t.CreatedBy, t.Match)
}

// GeneratorResult is what a generator invocation reports back.
type GeneratorResult struct {
	Created []string // project-relative paths, in the order reported
	Output  string
}

// FileEdit is the ordered list of operations applied to one file in one pass.
type FileEdit struct {
	Target     FileTarget
	Operations []EditOperation
}
