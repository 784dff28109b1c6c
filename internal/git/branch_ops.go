package git

import (
	"context"
	"fmt"

	gitcmderrors "gitcmd.dev/gitcmd/internal/errors"
)

// CheckoutOptions selects what Checkout does.
//
//   - Branch empty: restore the working tree entry at path
//   - Branch set, New false: switch to the existing branch
//   - Branch set, New true: create the branch and switch to it
type CheckoutOptions struct {
	Branch string
	New    bool
}

// Checkout switches branches or restores working tree files.
// Exactly one git process is launched.
func (c *Client) Checkout(ctx context.Context, path string, opts CheckoutOptions) (Result, error) {
	if opts.Branch == "" && opts.New {
		return Result{}, fmt.Errorf("%w: a branch name is required to create a branch", gitcmderrors.ErrInvalidArgument)
	}
	if err := checkOperand("branch", opts.Branch); err != nil {
		return Result{}, err
	}

	abs, dir, err := c.requireRepository(ctx, path)
	if err != nil {
		return Result{}, err
	}

	switch {
	case opts.Branch == "":
		return c.run(ctx, dir, "checkout", "--", abs), nil
	case opts.New:
		return c.run(ctx, dir, "checkout", "-b", opts.Branch), nil
	default:
		return c.run(ctx, dir, "checkout", opts.Branch), nil
	}
}
