package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionMismatch is returned when the host framework version does not satisfy the
	// template's required range and the user declined to continue.
	ErrVersionMismatch = errors.New("framework version mismatch")

	// ErrAnchorNotFound is returned when an insertion anchor is absent from its file.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrGeneratorFailure wraps every failure of an external generator, task or package manager.
	ErrGeneratorFailure = errors.New("generator failure")

	// ErrTargetNotResolved is returned when a FileTarget bound to a generator result
	// cannot be matched against the files that generator reported.
	ErrTargetNotResolved = errors.New("file target not resolved")

	// ErrInvalidTransition is returned when the pipeline is asked to skip or repeat a state.
	ErrInvalidTransition = errors.New("invalid pipeline transition")
)

// AnchorNotFoundError carries the file and anchor of a failed insertion.
type AnchorNotFoundError struct {
	Path   string
	Anchor string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q in %s", ErrAnchorNotFound, e.Anchor, e.Path)
}

// Is makes errors.Is(err, ErrAnchorNotFound) match.
func (e *AnchorNotFoundError) Is(target error) bool {
	return target == ErrAnchorNotFound
}
