package git

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	gitcmderrors "gitcmd.dev/gitcmd/internal/errors"
)

// MinimumVersion is the oldest git known to support every operation
var MinimumVersion = semver.MustParse("2.7.0")

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Version returns the version of the git binary
func (c *Client) Version(ctx context.Context) (*semver.Version, error) {
	args := []string{"--version"}
	result := c.exec.Execute(ctx, Invocation{Args: args})
	if !result.Success() {
		return nil, gitcmderrors.NewGitCommandError("git", args, result.Stdout, result.Stderr,
			fmt.Errorf("exit status %d", result.ExitCode))
	}
	return parseVersion(result.Stdout)
}

// CheckVersion fails with ErrUnsupportedGitVersion when git is older than MinimumVersion
func (c *Client) CheckVersion(ctx context.Context) error {
	version, err := c.Version(ctx)
	if err != nil {
		return err
	}
	if version.LessThan(MinimumVersion) {
		return &gitcmderrors.UnsupportedGitVersionError{
			Found:   version.String(),
			Minimum: MinimumVersion.String(),
		}
	}
	return nil
}

// parseVersion reads output such as "git version 2.39.3 (Apple Git-146)"
// or "git version 2.45.1.windows.1"
func parseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindStringSubmatch(output)
	if match == nil {
		return nil, fmt.Errorf("cannot parse git version from %q", output)
	}
	patch := match[3]
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(fmt.Sprintf("%s.%s.%s", match[1], match[2], patch))
}
