package git

import (
	"context"
	"strings"
)

// CurrentBranchFailurePrefix starts stderr when Push could not find out
// which branch to push
const CurrentBranchFailurePrefix = "Couldn't retrieve current branch name\n"

// Push publishes the current branch. Without credentials it runs
// 'push -u origin <branch>' so the branch tracks origin. With credentials
// the branch is pushed to remote rewritten to carry them, without setting
// upstream tracking, which would store the password in the repository config.
func (c *Client) Push(ctx context.Context, path, remote string, creds Credentials) (Result, error) {
	authURL, err := AuthenticatedURL(remote, creds)
	if err != nil {
		return Result{}, err
	}

	dir, err := c.requireRepositoryDir(ctx, path)
	if err != nil {
		return Result{}, err
	}

	branch := c.currentBranch(ctx, dir)
	if !branch.Success() {
		branch.Stderr = CurrentBranchFailurePrefix + branch.Stderr
		return branch, nil
	}
	name := strings.TrimSpace(branch.Stdout)

	if creds.IsZero() {
		return c.runNetwork(ctx, dir, creds, "push", "-u", "origin", name), nil
	}
	return c.runNetwork(ctx, dir, creds, "push", authURL, name), nil
}
