package cli

import (
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// newRemoteURLCmd creates the remote-url command
func newRemoteURLCmd() *cobra.Command {
	var (
		name   string
		public bool
	)

	cmd := &cobra.Command{
		Use:   "remote-url [path]",
		Short: "Print the URL of a remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				url, err := ctx.Client.RemoteURL(cmd.Context(), common.PathArg(args), name)
				if err != nil {
					return err
				}
				if public {
					if url, err = git.PublicURL(url); err != nil {
						return err
					}
				}
				ctx.Splog.Page(url + "\n")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", git.DefaultRemote, "Remote name")
	cmd.Flags().BoolVar(&public, "public", false, "Strip credentials from the URL")

	return cmd
}

// newPublicURLCmd creates the public-url command
func newPublicURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public-url <url>",
		Short: "Print a remote URL without its embedded credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				url, err := git.PublicURL(args[0])
				if err != nil {
					return err
				}
				ctx.Splog.Page(url + "\n")
				return nil
			})
		},
	}
}
