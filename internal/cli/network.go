package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/runtime"
)

type remoteOperation func(*git.Client, context.Context, string, string, git.Credentials) (git.Result, error)

// newRemoteCmd creates pull or push. Credentials are only sent when given;
// the remote they are embedded into defaults to the URL of origin.
func newRemoteCmd(use, short, long string, op remoteOperation) *cobra.Command {
	var (
		remote string
		flags  common.CredentialFlags
	)

	cmd := &cobra.Command{
		Use:   use + " [path]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				path := common.PathArg(args)
				target := remote
				if target == "" && (flags.Username != "" || flags.Password != "" || flags.PasswordStdin) {
					url, err := ctx.Client.RemoteURL(cmd.Context(), path, git.DefaultRemote)
					if err != nil {
						return err
					}
					target = url
				}

				creds, err := credentials(cmd, flags, target)
				if err != nil {
					return err
				}

				result, err := op(ctx.Client, cmd.Context(), path, target, creds)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, result)
			})
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote URL to authenticate against (default: the URL of origin)")
	common.AddCredentialFlags(cmd, &flags)

	return cmd
}

func newPullCmd() *cobra.Command {
	return newRemoteCmd("pull", "Fetch from and integrate with the remote",
		`Fetch from and integrate with the remote. Without credentials the branch's
upstream is pulled and git never prompts for a password.`,
		(*git.Client).Pull)
}

func newPushCmd() *cobra.Command {
	return newRemoteCmd("push", "Push the current branch",
		`Push the current branch. Without credentials the branch is pushed to origin
and set to track it. With credentials it is pushed to the remote URL.`,
		(*git.Client).Push)
}

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var (
		opts  git.CloneOptions
		flags common.CredentialFlags
	)

	cmd := &cobra.Command{
		Use:   "clone <remote> [path]",
		Short: "Clone a repository into a directory",
		Long: `Clone a repository from within the directory path, the current directory by
default, which must lie inside a repository. The clone is created in the
directory named by --to, or in one named after the repository.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				remote := args[0]
				creds, err := credentials(cmd, flags, remote)
				if err != nil {
					return err
				}
				opts.Credentials = creds

				result, err := ctx.Client.Clone(cmd.Context(), common.PathArg(args[1:]), remote, opts)
				if err != nil {
					return err
				}
				return printResult(cmd, ctx, result)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Destination, "to", "", "Directory to clone into")
	common.AddCredentialFlags(cmd, &flags)

	return cmd
}

// credentials completes the credential flags from standard input or a
// terminal prompt
func credentials(cmd *cobra.Command, flags common.CredentialFlags, remote string) (git.Credentials, error) {
	if err := flags.ReadStdin(cmd.InOrStdin()); err != nil {
		return git.Credentials{}, err
	}
	return flags.Credentials(common.TerminalPrompter(), remote)
}
