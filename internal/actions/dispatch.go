package actions

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gitp.dev/gitp/internal/runtime"
	"gitp.dev/gitp/internal/tui/style"
)

// Tokenize splits command text on runs of whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// IsPushInvocation reports whether the first two tokens are the push verb pair.
func IsPushInvocation(tokens []string, verb [2]string) bool {
	return len(tokens) >= 2 && tokens[0] == verb[0] && tokens[1] == verb[1]
}

// DispatchOptions contains options for Dispatch
type DispatchOptions struct {
	// Banner, when set, receives a dim "Running: ..." line before a
	// non-push command is executed.
	Banner io.Writer
}

// Dispatch executes normalized command text and returns the exit code to
// terminate with. Empty text is a no-op that returns 0.
func Dispatch(ctx context.Context, rctx *runtime.Context, text string, opts DispatchOptions) (int, error) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		rctx.Splog.Debug("Nothing to execute")
		return 0, nil
	}

	if IsPushInvocation(tokens, rctx.Config.PushVerb) {
		return Push(ctx, rctx, tokens[2:])
	}

	command := strings.Join(tokens, " ")
	if opts.Banner != nil {
		_, _ = fmt.Fprintf(opts.Banner, "%s\n\n", style.ColorDim(fmt.Sprintf("Running: %q", command)))
	}
	rctx.Splog.Debug("Running %q", command)

	return rctx.Executor.Exec(ctx, tokens[0], tokens[1:])
}
