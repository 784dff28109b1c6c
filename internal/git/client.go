package git

import (
	"context"
	"log/slog"

	"gitcmd.dev/gitcmd/internal/config"
)

// Client exposes the git operations. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	cfg    config.Config
	exec   Executor
	logger *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithExecutor replaces the os/exec backed executor
func WithExecutor(e Executor) Option {
	return func(c *Client) {
		c.exec = e
	}
}

// NewClient creates a client launching cfg.GitBinary with cfg.Language
func NewClient(cfg config.Config, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	if c.exec == nil {
		c.exec = NewCommandRunner(cfg.GitBinary, cfg.Language, logger)
	}
	return c
}

// Language returns the language git messages are requested in
func (c *Client) Language() string {
	return c.cfg.Language
}

// WithLanguage returns a copy of the client requesting git messages in lang.
// The receiver is left untouched.
func (c *Client) WithLanguage(lang string) *Client {
	clone := *c
	clone.cfg.Language = lang
	if runner, ok := c.exec.(*CommandRunner); ok {
		clone.exec = NewCommandRunner(runner.binary, lang, runner.logger)
	}
	return &clone
}

func (c *Client) run(ctx context.Context, dir string, args ...string) Result {
	return c.exec.Execute(ctx, Invocation{Dir: dir, Args: args})
}
