package runtime

import (
	"context"
	"errors"

	"gitcmd.dev/gitcmd/internal/config"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/internal/output"
)

// Context provides access to the git client and output for commands
type Context struct {
	Config config.Config
	Client *git.Client
	Splog  *output.Splog
}

// NewContext creates a context whose client logs through splog
func NewContext(cfg config.Config, splog *output.Splog) *Context {
	return &Context{
		Config: cfg,
		Client: git.NewClient(cfg, splog.Logger()),
		Splog:  splog,
	}
}

type contextKey struct{}

// WithContext returns a copy of parent carrying rc
func WithContext(parent context.Context, rc *Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, contextKey{}, rc)
}

// GetContext returns the runtime context stored in ctx
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, errors.New("no runtime context")
	}
	rc, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || rc == nil {
		return nil, errors.New("no runtime context")
	}
	return rc, nil
}
