package commands

// DefaultAnswers exports defaultAnswers for testing.
type DefaultAnswers = defaultAnswers
