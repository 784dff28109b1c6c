package cli

import (
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/config"
	"gitcmd.dev/gitcmd/internal/output"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// Execute runs rootCmd and then closes its log file. cobra skips
// PersistentPostRunE when a command fails, so the close runs here as well;
// it is a no-op once the log has been closed.
func Execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if rootCmd.PersistentPostRunE != nil {
		if closeErr := rootCmd.PersistentPostRunE(rootCmd, nil); err == nil {
			err = closeErr
		}
	}
	return err
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		language     string
		gitBinary    string
		debug        bool
		quiet        bool
		checkVersion bool
		splog        *output.Splog
	)

	rootCmd := &cobra.Command{
		Use:   "gitcmd",
		Short: "Run everyday git operations against a path",
		Long: `gitcmd runs everyday git operations (add, commit, checkout, status,
branch, reset, pull, push, clone) against a file or directory path.

Every operation first checks that the path lies inside a repository. git's
own output and exit status are passed through unchanged, except that
passwords given with --password never appear in it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if language != "" {
				cfg.Language = language
			}
			if gitBinary != "" {
				cfg.GitBinary = gitBinary
			}
			if debug {
				cfg.Debug = true
			}

			splog, err = output.NewSplogWithConfig(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			splog.SetQuiet(quiet)

			rc := runtime.NewContext(cfg, splog)
			if checkVersion {
				if err := rc.Client.CheckVersion(cmd.Context()); err != nil {
					return err
				}
			}
			cmd.SetContext(runtime.WithContext(cmd.Context(), rc))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if splog == nil {
				return nil
			}
			defer func() { splog = nil }()
			return splog.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&language, "language", "", "Language git messages are printed in, e.g. en_US.UTF-8")
	rootCmd.PersistentFlags().StringVar(&gitBinary, "git", "", "git binary to run")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print every git invocation")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not print git's standard output")
	rootCmd.PersistentFlags().BoolVar(&checkVersion, "check-version", false, "Fail unless git is recent enough")

	rootCmd.AddCommand(newProbeCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newCurrentBranchCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newRemoteURLCmd())
	rootCmd.AddCommand(newPublicURLCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
