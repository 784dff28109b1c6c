package git

import (
	"context"
)

// Status shows the working tree status of the repository containing the
// directory path
func (c *Client) Status(ctx context.Context, path string) (Result, error) {
	dir, err := c.requireRepositoryDir(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return c.run(ctx, dir, "status"), nil
}

// Branches lists the local branches, the current one marked with '*'
func (c *Client) Branches(ctx context.Context, path string) (Result, error) {
	dir, err := c.requireRepositoryDir(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return c.run(ctx, dir, "branch"), nil
}

// CurrentBranch prints the name of the checked out branch followed by a newline
func (c *Client) CurrentBranch(ctx context.Context, path string) (Result, error) {
	dir, err := c.requireRepositoryDir(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return c.currentBranch(ctx, dir), nil
}

func (c *Client) currentBranch(ctx context.Context, dir string) Result {
	return c.run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
}
