// Package git runs the external processes gitp delegates to.
//
// It provides:
//   - CommandRunner, for git queries whose output is captured
//   - ProcessExecutor, for delegated commands that share the terminal
//
// This package should be the only place where processes are started.
package git
