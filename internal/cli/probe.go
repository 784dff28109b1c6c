package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/output"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// newProbeCmd creates the probe command
func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe [path]",
		Short: "Check whether a path lies inside a git repository",
		Long: `Check whether a path lies inside a git repository. For a file the check
runs in its parent directory. Exits with status 1 when the path is outside.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				path := common.PathArg(args)
				if ctx.Client.IsInsideRepository(cmd.Context(), path) {
					ctx.Splog.Info(output.ColorGreen(fmt.Sprintf("%s is inside a repository", path)))
					return nil
				}
				ctx.Splog.Info(output.ColorYellow(fmt.Sprintf("%s is not inside a repository", path)))
				return &ExitError{Code: 1}
			})
		},
	}
}
