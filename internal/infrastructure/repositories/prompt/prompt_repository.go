package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoAnswer is returned when the input ends before a definitive answer.
var ErrNoAnswer = errors.New("no answer received")

// PromptRepository asks yes/no questions on a terminal.
type PromptRepository struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptRepository reads answers from stdin and writes questions to stdout.
func NewPromptRepository() *PromptRepository {
	return NewPromptRepositoryWith(os.Stdin, os.Stdout)
}

// NewPromptRepositoryWith uses the given streams.
func NewPromptRepositoryWith(in io.Reader, out io.Writer) *PromptRepository {
	return &PromptRepository{in: bufio.NewReader(in), out: out}
}

// Confirm repeats the question until the answer is yes, no or empty (the default).
func (it *PromptRepository) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if _, err := fmt.Fprintf(it.out, "%s %s ", question, hint); err != nil {
			return false, err
		}

		line, err := it.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if err != nil && (!errors.Is(err, io.EOF) || answer == "") {
			if errors.Is(err, io.EOF) {
				return false, ErrNoAnswer
			}
			return false, err
		}

		switch answer {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(it.out, "Please answer yes or no.")
		if errors.Is(err, io.EOF) {
			return false, ErrNoAnswer
		}
	}
}
