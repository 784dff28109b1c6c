package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/output"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gitcmd and git versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				ctx.Splog.Info("gitcmd %s %s", version, output.ColorDim(fmt.Sprintf("(commit %s, built %s)", commit, date)))

				gitVersion, err := ctx.Client.Version(cmd.Context())
				if err != nil {
					return err
				}
				if gitVersion.LessThan(git.MinimumVersion) {
					ctx.Splog.Info("git %s", output.ColorRed(fmt.Sprintf("%s (%s or later required)", gitVersion, git.MinimumVersion)))
					return &ExitError{Code: 1}
				}
				ctx.Splog.Info("git %s", output.ColorGreen(gitVersion.String()))
				return nil
			})
		},
	}
}
