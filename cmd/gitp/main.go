package main

import (
	"errors"
	"fmt"
	"os"

	"gitp.dev/gitp/internal/cli"
	gitperrors "gitp.dev/gitp/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := cli.Execute(rootCmd, os.Args[1:]); err != nil {
		var exitErr *gitperrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
