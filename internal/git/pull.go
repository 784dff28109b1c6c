package git

import (
	"context"
)

// Pull fetches from and integrates with another repository. Without
// credentials the configured upstream is used; with credentials git pulls
// from remote rewritten to carry them.
func (c *Client) Pull(ctx context.Context, path, remote string, creds Credentials) (Result, error) {
	args, err := pullArgs(remote, creds)
	if err != nil {
		return Result{}, err
	}

	dir, err := c.requireRepositoryDir(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return c.runNetwork(ctx, dir, creds, args...), nil
}

func pullArgs(remote string, creds Credentials) ([]string, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if creds.IsZero() {
		return []string{"pull"}, nil
	}
	authURL, err := AuthenticatedURL(remote, creds)
	if err != nil {
		return nil, err
	}
	return []string{"pull", authURL}, nil
}
