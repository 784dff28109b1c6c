package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote name used when none is given
const DefaultRemote = "origin"

// RemoteURL returns the first URL configured for the named remote of the
// repository containing path
func (c *Client) RemoteURL(ctx context.Context, path, name string) (string, error) {
	if name == "" {
		name = DefaultRemote
	}
	_, dir, err := c.requireRepository(ctx, path)
	if err != nil {
		return "", err
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	remote, err := repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}
