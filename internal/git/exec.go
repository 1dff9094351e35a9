package git

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	gitperrors "gitp.dev/gitp/internal/errors"
)

// ProcessExecutor runs delegated commands synchronously. With the default
// streams the child shares the terminal, so credential prompts still work.
type ProcessExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// NewProcessExecutor creates an executor wired to the process's own streams
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Exec runs name with args and returns the child's exit code.
// A child terminated without an exit code (e.g. by a signal) reports 1.
// If the process cannot be started the error is a *SpawnError.
func (e *ProcessExecutor) Exec(ctx context.Context, name string, args []string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, nil
	}
	if cmd.Process == nil {
		return 1, gitperrors.NewSpawnError(name, err)
	}
	// Started but the stream copy failed
	return 1, err
}
