package cli

import (
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>",
		Short: "Stage a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Client.Add(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, result)
			})
		},
	}
}

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit <path>",
		Short: "Commit the changes of a file or directory",
		Long: `Commit the changes of a file or directory with the given message. Only
changes under path are committed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Client.Commit(cmd.Context(), args[0], message)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, result)
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
