package actions

import (
	"context"
	"errors"
	"strings"

	gitperrors "gitp.dev/gitp/internal/errors"
	"gitp.dev/gitp/internal/git"
	"gitp.dev/gitp/internal/runtime"
	"gitp.dev/gitp/internal/tui/style"
)

// Push pushes the current branch to the configured remote with upstream
// tracking. A branch lookup failure is returned before anything is pushed.
// A push that exits non-zero is not an error; its code is returned.
func Push(ctx context.Context, rctx *runtime.Context, extra []string) (int, error) {
	branch, err := rctx.Branches.CurrentBranch(ctx)
	if err != nil {
		return 1, err
	}
	if branch == "HEAD" {
		rctx.Splog.Warn("HEAD is detached; pushing HEAD")
	}

	rctx.Splog.Info("Current branch: %s", style.ColorBranchName(branch))

	remote := rctx.Config.Remote
	args := append([]string{"push"}, git.UpstreamPushArgs(remote, branch, extra)...)
	rctx.Splog.Info("Executing: %s", style.ColorCommand(rctx.Config.GitBinary+" "+strings.Join(args, " ")))

	code, err := rctx.Executor.Exec(ctx, rctx.Config.GitBinary, args)
	if err != nil {
		var spawnErr *gitperrors.SpawnError
		if errors.As(err, &spawnErr) {
			return 1, gitperrors.NewSpawnError(rctx.Config.GitBinary+" push", spawnErr.Err)
		}
		return 1, err
	}
	if code != 0 {
		rctx.Splog.Debug("git push exited with status %d", code)
		return code, nil
	}

	rctx.Splog.Info(style.ColorGreen("Successfully pushed to %s/%s"), remote, branch)
	return 0, nil
}
