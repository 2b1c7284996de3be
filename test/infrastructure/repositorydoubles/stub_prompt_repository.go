//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"errors"

	"github.com/rios0rios0/railstemplate/internal/domain/repositories"
)

// StubPromptRepository answers confirmations from a queue; an empty queue answers
// with the question's default.
type StubPromptRepository struct {
	Answers   []bool
	Questions []string
	Err       error
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) Confirm(_ context.Context, question string, defaultYes bool) (bool, error) {
	s.Questions = append(s.Questions, question)
	if s.Err != nil {
		return false, s.Err
	}
	if len(s.Answers) == 0 {
		return defaultYes, nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

// FailingPromptRepository fails the test's expectations by erroring on any question.
type FailingPromptRepository struct{}

var _ repositories.PromptRepository = (*FailingPromptRepository)(nil)

func (FailingPromptRepository) Confirm(_ context.Context, question string, _ bool) (bool, error) {
	return false, errors.New("unexpected prompt: " + question)
}
