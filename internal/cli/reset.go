package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	var (
		mode   string
		target string
	)

	modes := strings.Join(lo.Map(git.ResetModes, func(m git.ResetMode, _ int) string {
		return string(m)
	}), ", ")

	cmd := &cobra.Command{
		Use:   "reset [path]",
		Short: "Reset the current branch head to a commit",
		Long: fmt.Sprintf(`Reset the current branch head of the repository containing path to a
commit, HEAD by default.

--mode selects what is reset besides the head: one of %s.`, modes),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Client.Reset(cmd.Context(), common.PathArg(args), git.ResetOptions{
					Mode:   git.ResetMode(mode),
					Target: target,
				})
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, result)
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(git.ResetMixed), "Reset mode")
	cmd.Flags().StringVar(&target, "target", git.DefaultResetTarget, "Commit to reset to")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(modes, ", "), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
