package git

import (
	"context"

	"github.com/samber/lo"

	gitcmderrors "gitcmd.dev/gitcmd/internal/errors"
)

// ResetMode selects how much of the index and working tree a reset touches
type ResetMode string

const (
	// ResetSoft only moves HEAD
	ResetSoft ResetMode = "soft"
	// ResetMixed moves HEAD and resets the index
	ResetMixed ResetMode = "mixed"
	// ResetHard moves HEAD and resets the index and working tree
	ResetHard ResetMode = "hard"
	// ResetMerge resets like hard but keeps unstaged changes, aborting on conflict
	ResetMerge ResetMode = "merge"
	// ResetKeep resets like hard but aborts if local changes would be lost
	ResetKeep ResetMode = "keep"
)

// DefaultResetTarget is the commit reset to when none is given
const DefaultResetTarget = "HEAD"

// ResetModes lists every accepted mode
var ResetModes = []ResetMode{ResetSoft, ResetMixed, ResetHard, ResetMerge, ResetKeep}

// ParseResetMode validates mode. The empty string means ResetMixed.
func ParseResetMode(mode string) (ResetMode, error) {
	if mode == "" {
		return ResetMixed, nil
	}
	if !lo.Contains(ResetModes, ResetMode(mode)) {
		return "", gitcmderrors.NewInvalidResetModeError(mode)
	}
	return ResetMode(mode), nil
}

// ResetOptions configures Reset. The zero value is a mixed reset to HEAD.
type ResetOptions struct {
	Mode   ResetMode
	Target string
}

// Reset moves the current branch head to opts.Target, updating the index and
// working tree according to opts.Mode
func (c *Client) Reset(ctx context.Context, path string, opts ResetOptions) (Result, error) {
	mode, err := ParseResetMode(string(opts.Mode))
	if err != nil {
		return Result{}, err
	}
	target := opts.Target
	if target == "" {
		target = DefaultResetTarget
	}
	if err := checkOperand("commit", target); err != nil {
		return Result{}, err
	}

	_, dir, err := c.requireRepository(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return c.run(ctx, dir, "reset", "--"+string(mode), target), nil
}
