package repositories

import "context"

// PromptRepository is the yes/no confirmation capability injected into the pipeline.
type PromptRepository interface {
	// Confirm asks question and blocks until a definitive answer. An empty answer
	// selects defaultYes.
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
}
