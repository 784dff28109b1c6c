// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	return fn(ctx)
}

// PathArg returns the path argument of a command, "." when none was given
func PathArg(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "."
	}
	return args[0]
}
