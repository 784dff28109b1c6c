package cli

import (
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var opts git.CheckoutOptions

	cmd := &cobra.Command{
		Use:     "checkout [path]",
		Aliases: []string{"co"},
		Short:   "Switch branches or restore a file",
		Long: `Switch branches or restore a file.

Without --branch the working tree entry at path is restored from the index.
With --branch the repository containing path switches to that branch, and
with --new as well the branch is created first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Client.Checkout(cmd.Context(), common.PathArg(args), opts)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, result)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Branch, "branch", "b", "", "Branch to switch to")
	cmd.Flags().BoolVarP(&opts.New, "new", "n", false, "Create the branch before switching to it")
	_ = cmd.RegisterFlagCompletionFunc("branch", completeBranches)

	return cmd
}
