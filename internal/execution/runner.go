package execution

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"caselists/internal/domain"
)

// CommandRunner runs an external binary inside a working directory
type CommandRunner interface {
	Run(ctx context.Context, dir, binary string, args ...string) error
}

// Runner executes binaries with os/exec. The working directory is handed to
// the child process, the caller's own directory is never changed.
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes binary with args in dir and waits for it to exit
func (r *Runner) Run(ctx context.Context, dir, binary string, args ...string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = os.Environ()
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &domain.ProcessExecutionError{
		Binary:   binary,
		Args:     args,
		Dir:      dir,
		ExitCode: exitCode,
		Output:   string(output),
		Err:      err,
	}
}
