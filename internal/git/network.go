package git

import (
	"context"
)

// runNetwork launches a pull, push or clone. Without credentials git is told
// never to prompt, so the call cannot block waiting on a terminal.
func (c *Client) runNetwork(ctx context.Context, dir string, creds Credentials, args ...string) Result {
	inv := Invocation{Dir: dir, Args: args, Secret: creds.Password}
	if creds.IsZero() {
		inv.Env = map[string]string{"GIT_TERMINAL_PROMPT": "0"}
	}
	return sanitizeNetworkResult(c.exec.Execute(ctx, inv), creds.Password)
}
