// Package cli implements the cobra root command for gitp.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gitp.dev/gitp/internal/actions"
	"gitp.dev/gitp/internal/config"
	gitperrors "gitp.dev/gitp/internal/errors"
	"gitp.dev/gitp/internal/git"
	"gitp.dev/gitp/internal/runtime"
	"gitp.dev/gitp/internal/tui"
	"gitp.dev/gitp/internal/typo"
)

// contextFactory builds the runtime for one invocation of cmd
type contextFactory func(cmd *cobra.Command) (*runtime.Context, error)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(version, commit, date, newRuntimeContext)
}

func newRootCmd(version, commit, date string, newContext contextFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitp <command>",
		Short: "Run a git command, fixing common typos and pushing with upstream tracking",
		// Every argument, flags included, belongs to the wrapped command.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage(cmd.OutOrStdout(), version, commit, date)
				return nil
			}

			rctx, err := newContext(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = rctx.Splog.Close() }()

			input := strings.Join(args, " ")
			text := typo.Normalize(input)
			if text != input {
				rctx.Splog.Debug("Corrected %q to %q", input, text)
			}

			var opts actions.DispatchOptions
			if f, ok := cmd.ErrOrStderr().(*os.File); ok && tui.IsTerminal(f) {
				opts.Banner = f
			}

			code, err := actions.Dispatch(cmd.Context(), rctx, text, opts)
			if err != nil {
				rctx.Splog.Error("%s", err)
				return gitperrors.NewExitError(1)
			}
			if code != 0 {
				return gitperrors.NewExitError(code)
			}
			return nil
		},
	}

	return rootCmd
}

// Execute runs rootCmd with args as the command text. Cobra claims its
// hidden completion request commands before RunE is reached, so those
// arguments are handed to RunE directly.
func Execute(rootCmd *cobra.Command, args []string) error {
	if len(args) > 0 && isCompletionRequest(args[0]) {
		if rootCmd.Context() == nil {
			rootCmd.SetContext(context.Background())
		}
		return rootCmd.RunE(rootCmd, args)
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// newRuntimeContext wires real processes to the command's streams. Outside
// tests those are the process's own stdin, stdout and stderr.
func newRuntimeContext(cmd *cobra.Command) (*runtime.Context, error) {
	cfg := config.Load()
	splog, err := tui.NewSplogWithConfig(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}

	rctx := runtime.NewContext(cfg, splog)
	rctx.Executor = &git.ProcessExecutor{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	return rctx, nil
}

func printUsage(w io.Writer, version, commit, date string) {
	_, _ = fmt.Fprintf(w, `Usage: gitp <command>

Fixes common typos at the start of <command> and runs it.
"git push" runs as "git push -u origin <current-branch>".

Example:
  gitp ush               -> executes: git push -u origin <current-branch>
  gitp git psuh --tags   -> executes: git push -u origin <current-branch> --tags
  gitp gti status        -> executes: git status

gitp %s (commit: %s, built: %s)
`, version, commit, date)
}
