// Package errors provides sentinel errors and custom error types for gitp.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrBranchDetection indicates that the current branch could not be determined
	ErrBranchDetection = errors.New("could not determine current git branch")

	// ErrSpawn indicates that a delegated process could not be launched
	ErrSpawn = errors.New("failed to launch process")
)

// BranchDetectionError represents a failed current-branch lookup
type BranchDetectionError struct {
	Stderr string
	Err    error
}

func (e *BranchDetectionError) Error() string {
	msg := ErrBranchDetection.Error()
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	} else if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *BranchDetectionError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrBranchDetection
func (e *BranchDetectionError) Is(target error) bool {
	return target == ErrBranchDetection
}

// NewBranchDetectionError creates a new BranchDetectionError
func NewBranchDetectionError(stderr string, err error) *BranchDetectionError {
	return &BranchDetectionError{Stderr: stderr, Err: err}
}

// SpawnError represents a process that could not be started
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("error executing %s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrSpawn
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawn
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(program string, err error) *SpawnError {
	return &SpawnError{Program: program, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExitError carries the exit status the process should terminate with.
// It is returned from the root command so main can call os.Exit once.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates a new ExitError
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}
