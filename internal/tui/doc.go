// Package tui provides terminal output for gitp.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Terminal detection (using go-isatty)
package tui
