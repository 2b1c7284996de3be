package entities

// CommitAttempt records the outcome of the best-effort initial commit.
type CommitAttempt struct {
	Skipped      bool
	Success      bool
	ErrorMessage string
}
