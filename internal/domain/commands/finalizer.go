package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// FinalizeOptions controls the finalize phase.
type FinalizeOptions struct {
	SkipVCS       bool
	CommitMessage string
	Summary       entities.Summary
}

// Finalizer initialises version control, commits once, and prints the summary.
type Finalizer struct {
	vcs repositories.VCSRepository
	out io.Writer
}

// NewFinalizer creates a Finalizer writing its report to out.
func NewFinalizer(vcs repositories.VCSRepository, out io.Writer) *Finalizer {
	return &Finalizer{vcs: vcs, out: out}
}

// Finalize never fails because of the commit itself: a commit error is printed and
// reported in the returned CommitAttempt.
func (it *Finalizer) Finalize(ctx context.Context, opts FinalizeOptions) (entities.CommitAttempt, error) {
	attempt, err := it.commit(ctx, opts)
	if err != nil {
		return attempt, err
	}

	summary := opts.Summary
	summary.Commit = attempt
	if writeErr := entities.WriteSummary(it.out, summary); writeErr != nil {
		return attempt, fmt.Errorf("failed to print summary: %w", writeErr)
	}
	return attempt, nil
}

func (it *Finalizer) commit(ctx context.Context, opts FinalizeOptions) (entities.CommitAttempt, error) {
	if opts.SkipVCS {
		logger.Info("SKIP_GIT is set, skipping version control")
		return entities.CommitAttempt{Skipped: true}, nil
	}

	if err := it.vcs.Init(ctx); err != nil {
		return entities.CommitAttempt{}, fmt.Errorf("failed to initialise repository: %w", err)
	}
	if err := it.vcs.AddAll(ctx); err != nil {
		return entities.CommitAttempt{}, fmt.Errorf("failed to stage files: %w", err)
	}

	message := opts.CommitMessage
	if message == "" {
		message = entities.DefaultCommitMessage
	}

	// fails when no author identity is configured
	if err := it.vcs.Commit(ctx, message); err != nil {
		logger.Warnf("Initial commit failed: %v", err)
		_, _ = fmt.Fprintln(it.out, err.Error())
		return entities.CommitAttempt{ErrorMessage: err.Error()}, nil
	}

	logger.Infof("Committed %q", message)
	return entities.CommitAttempt{Success: true}, nil
}
