package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBranchDetectionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 128")
	err := fmt.Errorf("push: %w", NewBranchDetectionError("fatal: not a git repository\n", cause))

	require.ErrorIs(t, err, ErrBranchDetection)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrSpawn)
	require.Equal(t, "push: could not determine current git branch: fatal: not a git repository", err.Error())

	noStderr := NewBranchDetectionError("", cause)
	require.Equal(t, "could not determine current git branch: exit status 128", noStderr.Error())
}

func TestSpawnError(t *testing.T) {
	t.Parallel()

	err := NewSpawnError("git", exec.ErrNotFound)

	require.ErrorIs(t, err, ErrSpawn)
	require.ErrorIs(t, err, exec.ErrNotFound)
	require.Equal(t, "error executing git: executable file not found in $PATH", err.Error())
}

func TestExitError(t *testing.T) {
	t.Parallel()

	var exitErr *ExitError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", NewExitError(7)), &exitErr))
	require.Equal(t, 7, exitErr.Code)
	require.Equal(t, "exit status 7", exitErr.Error())
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 1")
	err := NewGitCommandError("git", []string{"rev-parse"}, "", "fatal: bad", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "git command failed: git [rev-parse]\nstderr: fatal: bad\nexit status 1", err.Error())
}
