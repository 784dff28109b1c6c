package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/output"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// ExitError carries a nonzero exit status to the process exit
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// printResult passes git's output through and turns a nonzero exit status
// into an ExitError
func printResult(cmd *cobra.Command, ctx *runtime.Context, result git.Result) error {
	ctx.Splog.Page(result.Stdout)
	if result.Stderr != "" {
		stderr := result.Stderr
		if !strings.HasSuffix(stderr, "\n") {
			stderr += "\n"
		}
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), stderr)
	}
	if !result.Success() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// ExitCode reports err on stderr and returns the status the process exits with.
// An ExitError is not reported, its output has already been printed.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, _ = fmt.Fprintln(stderr, output.ColorRed("Error: "+err.Error()))
	return 1
}
