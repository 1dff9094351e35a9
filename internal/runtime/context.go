package runtime

import (
	"context"

	"gitp.dev/gitp/internal/config"
	"gitp.dev/gitp/internal/git"
	"gitp.dev/gitp/internal/tui"
)

// BranchResolver reports the branch HEAD points to
type BranchResolver interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// Executor runs a delegated command and returns its exit code
type Executor interface {
	Exec(ctx context.Context, name string, args []string) (int, error)
}

// Context provides access to the logger and process plumbing for one run
type Context struct {
	Config   *config.Config
	Splog    *tui.Splog
	Branches BranchResolver
	Executor Executor
}

// NewContext creates a context that talks to real processes in the
// current directory
func NewContext(cfg *config.Config, splog *tui.Splog) *Context {
	return &Context{
		Config:   cfg,
		Splog:    splog,
		Branches: git.NewCommandRunner(cfg.GitBinary, ""),
		Executor: git.NewProcessExecutor(),
	}
}
