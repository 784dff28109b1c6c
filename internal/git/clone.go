package git

import (
	"context"
	"fmt"

	gitcmderrors "gitcmd.dev/gitcmd/internal/errors"
)

// CloneOptions configures Clone
type CloneOptions struct {
	// Destination is the directory to clone into, relative to the clone's
	// working directory. Empty means the repository's name.
	Destination string
	Credentials Credentials
}

// Clone clones remote from within the directory path, which must be a
// directory inside a repository like the path of every other operation.
func (c *Client) Clone(ctx context.Context, path, remote string, opts CloneOptions) (Result, error) {
	if remote == "" {
		return Result{}, fmt.Errorf("%w: remote URL must not be empty", gitcmderrors.ErrInvalidArgument)
	}
	source, err := AuthenticatedURL(remote, opts.Credentials)
	if err != nil {
		return Result{}, err
	}

	dir, err := c.requireRepositoryDir(ctx, path)
	if err != nil {
		return Result{}, err
	}

	args := []string{"clone", "--", source}
	if opts.Destination != "" {
		args = append(args, opts.Destination)
	}
	return c.runNetwork(ctx, dir, opts.Credentials, args...), nil
}
