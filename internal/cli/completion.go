package cli

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"gitcmd.dev/gitcmd/internal/cli/common"
	"gitcmd.dev/gitcmd/internal/config"
	"gitcmd.dev/gitcmd/internal/git"
)

// completeBranches is a helper for RegisterFlagCompletionFunc that returns
// all branch names of the repository containing the command's path argument.
func completeBranches(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	result, err := git.NewClient(cfg, nil).Branches(cmd.Context(), common.PathArg(args))
	if err != nil || !result.Success() {
		return nil, cobra.ShellCompDirectiveError
	}
	return parseBranchList(result.Stdout), cobra.ShellCompDirectiveNoFileComp
}

// parseBranchList extracts the names from 'git branch' output
func parseBranchList(list string) []string {
	lines := strings.Split(list, "\n")
	names := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		name := strings.TrimSpace(strings.TrimPrefix(line, "*"))
		// detached HEAD is listed as "(HEAD detached at ...)"
		return name, name != "" && !strings.HasPrefix(name, "(")
	})
	return names
}
