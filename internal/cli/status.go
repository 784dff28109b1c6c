package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/runtime"
)

type dirOperation func(*git.Client, context.Context, string) (git.Result, error)

// newDirCmd creates a command running op in the directory given as argument
func newDirCmd(use, short string, op dirOperation) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [path]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				result, err := op(ctx.Client, cmd.Context(), common.PathArg(args))
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, result)
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return newDirCmd("status", "Show the working tree status", (*git.Client).Status)
}

func newBranchCmd() *cobra.Command {
	cmd := newDirCmd("branch", "List local branches", (*git.Client).Branches)
	cmd.Aliases = []string{"branches"}
	return cmd
}

func newCurrentBranchCmd() *cobra.Command {
	return newDirCmd("current-branch", "Print the checked out branch", (*git.Client).CurrentBranch)
}
