package repositories

import "context"

// VCSRepository is the version control system used by the finalizer.
type VCSRepository interface {
	Init(ctx context.Context) error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
}
