// Package actions provides the logic behind a gitp invocation.
//
// Dispatch routes normalized command text either to the branch-aware Push
// or straight to the named program. Both return the exit code the process
// should terminate with. Internal failures (branch lookup, spawn) are
// returned as errors for the CLI layer to report.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog, Config and the process plumbing
//   - Actions are stateless; nothing outlives a single run
package actions
