package git

import (
	"context"
)

// Add stages the file at path. For a directory, the index is updated to
// match the directory as a whole.
func (c *Client) Add(ctx context.Context, path string) (Result, error) {
	abs, dir, err := c.requireRepository(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return c.run(ctx, dir, "add", "--", abs), nil
}

// Commit records the changes under path with the given log message
func (c *Client) Commit(ctx context.Context, path, message string) (Result, error) {
	abs, dir, err := c.requireRepository(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return c.run(ctx, dir, "commit", "-m", message, "--", abs), nil
}
