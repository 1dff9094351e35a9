package git

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	gitperrors "gitp.dev/gitp/internal/errors"
)

// CurrentBranch returns the abbreviated name of HEAD, equivalent to
// `git rev-parse --abbrev-ref HEAD`. A detached HEAD yields "HEAD".
// Every failure matches gitperrors.ErrBranchDetection.
func (r *CommandRunner) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.RunRaw(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		var cmdErr *gitperrors.GitCommandError
		if errors.As(err, &cmdErr) {
			return "", gitperrors.NewBranchDetectionError(cmdErr.Stderr, cmdErr.Err)
		}
		return "", gitperrors.NewBranchDetectionError("", err)
	}
	return ParseBranchName(out)
}

// ParseBranchName decodes rev-parse output into a branch name,
// dropping the trailing newline and any other trailing whitespace.
func ParseBranchName(out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", gitperrors.NewBranchDetectionError("", errors.New("branch name is not valid UTF-8"))
	}
	branch := strings.TrimRightFunc(string(out), unicode.IsSpace)
	if branch == "" {
		return "", gitperrors.NewBranchDetectionError("", errors.New("empty branch name"))
	}
	return branch, nil
}
