package main_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"gitp.dev/gitp/testhelpers"
)

func runGitp(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(testhelpers.RequireBinary(t), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GITP_LOG_FILE=")

	stdout, err := cmd.Output()
	var stderr string
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "failed to run gitp: %v", err)
		stderr = string(exitErr.Stderr)
		code = exitErr.ExitCode()
	}
	return string(stdout), stderr, code
}

func TestBinaryNoArgs(t *testing.T) {
	stdout, _, code := runGitp(t, t.TempDir())

	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Usage: gitp <command>")
}

func TestBinaryForwardsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "exit7.sh"), []byte("exit 7\n"), 0600))

	_, _, code := runGitp(t, dir, "sh", "exit7.sh")
	require.Equal(t, 7, code)
}

func TestBinaryMissingProgram(t *testing.T) {
	_, stderr, code := runGitp(t, t.TempDir(), "gitp-no-such-program", "arg")

	require.Equal(t, 1, code)
	require.Contains(t, stderr, "Error: error executing gitp-no-such-program")
}

func TestBinaryEmptyCommand(t *testing.T) {
	stdout, _, code := runGitp(t, t.TempDir(), " ")

	require.Equal(t, 0, code)
	require.Empty(t, stdout)
}
