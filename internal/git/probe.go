package git

import (
	"context"
)

// IsInsideRepository reports whether path lies inside a git repository.
// For a file path the check runs in its parent directory. A path whose
// directory does not exist is reported as outside.
func (c *Client) IsInsideRepository(ctx context.Context, path string) bool {
	abs, err := absPath(path)
	if err != nil {
		return false
	}
	return c.probe(ctx, effectiveDir(abs))
}

func (c *Client) probe(ctx context.Context, dir string) bool {
	return c.run(ctx, dir, "rev-parse").Success()
}
