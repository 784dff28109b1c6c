package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitcmderrors "gitcmd.dev/gitcmd/internal/errors"
)

// effectiveDir returns path when it is a directory, its parent otherwise
func effectiveDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func absPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path must not be empty", gitcmderrors.ErrInvalidArgument)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}

// requireRepository resolves the working directory for path and checks that it
// lies inside a repository. It returns the absolute path and the directory.
func (c *Client) requireRepository(ctx context.Context, path string) (string, string, error) {
	abs, err := absPath(path)
	if err != nil {
		return "", "", err
	}
	dir := effectiveDir(abs)
	if !c.probe(ctx, dir) {
		return "", "", gitcmderrors.NewNotInRepositoryError(path)
	}
	return abs, dir, nil
}

// requireRepositoryDir is requireRepository for operations that run in path
// itself, which must then be a directory.
func (c *Client) requireRepositoryDir(ctx context.Context, path string) (string, error) {
	abs, _, err := c.requireRepository(ctx, path)
	if err != nil {
		return "", err
	}
	if err := requireDir(path, abs); err != nil {
		return "", err
	}
	return abs, nil
}

func requireDir(path, abs string) error {
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return gitcmderrors.NewNotADirectoryError(path)
	}
	return nil
}

// checkOperand rejects values git would parse as options
func checkOperand(name, value string) error {
	if strings.HasPrefix(value, "-") {
		return fmt.Errorf("%w: %s %q must not start with '-'", gitcmderrors.ErrInvalidArgument, name, value)
	}
	return nil
}
