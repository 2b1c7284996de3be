package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/railstemplate/internal/domain/entities"
)

// Runner executes external programs inside a project directory. Stdin is inherited so
// interactive tools can still ask questions; output is captured and mirrored to the
// debug log.
type Runner struct {
	Dir   string
	Env   []string
	Stdin io.Reader
}

// NewRunner creates a Runner for dir reading from the process stdin.
func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir, Stdin: os.Stdin}
}

// Run executes name with args and returns the combined output. A non-zero exit or a
// missing binary wraps entities.ErrGeneratorFailure.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
	logger.Debugf("Running %s (in %s)", commandLine, r.Dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	debugWriter := logger.StandardLogger().WriterLevel(logger.DebugLevel)
	defer debugWriter.Close()

	var output bytes.Buffer
	cmd.Stdout = io.MultiWriter(&output, debugWriter)
	cmd.Stderr = io.MultiWriter(&output, debugWriter)

	if err := cmd.Run(); err != nil {
		return output.String(), fmt.Errorf(
			"%w: %s: %w\nOutput:\n%s", entities.ErrGeneratorFailure, commandLine, err, output.String(),
		)
	}
	return output.String(), nil
}
