package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"
)

// VCSRepository is a go-git backed repository for one project directory.
type VCSRepository struct {
	dir  string
	repo *gogit.Repository
}

// NewVCSRepository creates a VCSRepository for dir. Nothing touches disk until Init.
func NewVCSRepository(dir string) *VCSRepository {
	return &VCSRepository{dir: dir}
}

// Init creates the repository on branch main, or opens the one the framework's
// project generator already created.
func (it *VCSRepository) Init(_ context.Context) error {
	repo, err := gogit.PlainInitWithOptions(it.dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.Main},
	})
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		logger.Debugf("Repository already exists in %s, reusing it", it.dir)
		repo, err = gogit.PlainOpen(it.dir)
	}
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	it.repo = repo
	return nil
}

// AddAll stages the whole tree, honouring .gitignore.
func (it *VCSRepository) AddAll(_ context.Context) error {
	worktree, err := it.worktree()
	if err != nil {
		return err
	}
	if err = worktree.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	return nil
}

// Commit records the staged tree. The author comes from the git configuration; when
// none is configured the commit fails.
func (it *VCSRepository) Commit(_ context.Context, message string) error {
	worktree, err := it.worktree()
	if err != nil {
		return err
	}
	hash, err := worktree.Commit(message, &gogit.CommitOptions{})
	if err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	logger.Debugf("Created commit %s", hash)
	return nil
}

func (it *VCSRepository) worktree() (*gogit.Worktree, error) {
	if it.repo == nil {
		return nil, errors.New("repository not initialised")
	}
	worktree, err := it.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("git worktree: %w", err)
	}
	return worktree, nil
}
