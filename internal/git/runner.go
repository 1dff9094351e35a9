package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	gitperrors "gitp.dev/gitp/internal/errors"
)

// CommandRunner handles execution of git commands with captured output
type CommandRunner struct {
	binary     string
	workingDir string
}

// NewCommandRunner creates a new CommandRunner for the given git binary.
// An empty workingDir runs commands in the current directory.
func NewCommandRunner(binary, workingDir string) *CommandRunner {
	if binary == "" {
		binary = "git"
	}
	return &CommandRunner{binary: binary, workingDir: workingDir}
}

// WorkingDir returns the directory commands run in.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command and returns its trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	out, err := r.RunRaw(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// RunRaw executes a git command and returns stdout untouched.
// Failures, including a binary that cannot be started, are *GitCommandError.
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, gitperrors.NewGitCommandError(r.binary, args, stdout.String(), stderr.String(), err)
	}
	return stdout.Bytes(), nil
}
