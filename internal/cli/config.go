package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/config"
	"gitcmd.dev/gitcmd/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var lines []string
	for _, key := range config.Keys {
		lines = append(lines, fmt.Sprintf("  %-16s %s", key.Name, key.Usage))
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set user configuration",
		Long: fmt.Sprintf(`Get and set values of the user configuration file, %s.

Keys:
%s

Examples:
  gitcmd config get language
  gitcmd config set language fr_FR.UTF-8
  gitcmd config set log-file ~/.gitcmd/logs/gitcmd.log`, config.UserConfigPath(), strings.Join(lines, "\n")),
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.KeyNames(), cobra.ShellCompDirectiveNoFileComp
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             "Print the effective value of a setting",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				key, err := config.LookupKey(args[0])
				if err != nil {
					return err
				}
				ctx.Splog.Page(key.Get(ctx.Config) + "\n")
				return nil
			})
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Store a setting in the user configuration file",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				key, err := config.LookupKey(args[0])
				if err != nil {
					return err
				}

				stored, err := config.LoadFile()
				if err != nil {
					return err
				}
				if err := key.Set(&stored, args[1]); err != nil {
					return err
				}
				if err := config.Save(stored); err != nil {
					return fmt.Errorf("failed to save configuration: %w", err)
				}

				ctx.Splog.Info("Set %s to: %s", key.Name, key.Get(stored.Apply(ctx.Config)))
				return nil
			})
		},
	}
}
