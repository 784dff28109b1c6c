package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	// ExitCodeNotFound is reported when the git binary cannot be found
	ExitCodeNotFound = 127
	// ExitCodeCannotRun is reported when git could not be started for any other reason
	ExitCodeCannotRun = 126
)

// Result is the outcome of one git invocation
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether git exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Invocation describes one launch of the git binary
type Invocation struct {
	// Dir is the working directory of the child process
	Dir string
	// Args follow the binary name, e.g. {"status"}
	Args []string
	// Env is added to the inherited environment, replacing existing keys
	Env map[string]string
	// Secret is masked wherever the invocation is logged
	Secret string
}

// Executor launches git and waits for it to exit
type Executor interface {
	Execute(ctx context.Context, inv Invocation) Result
}

// CommandRunner is the Executor backed by os/exec
type CommandRunner struct {
	binary   string
	language string
	logger   *slog.Logger
}

// NewCommandRunner creates a CommandRunner. Every child process gets
// LANGUAGE=language so git messages come out in that language.
func NewCommandRunner(binary, language string, logger *slog.Logger) *CommandRunner {
	if binary == "" {
		binary = "git"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CommandRunner{binary: binary, language: language, logger: logger}
}

// Execute runs the invocation to completion. Launch failures are folded into
// the Result as a nonzero exit code with the reason on stderr.
func (r *CommandRunner) Execute(ctx context.Context, inv Invocation) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	env := map[string]string{}
	if r.language != "" {
		env["LANGUAGE"] = r.language
	}
	for k, v := range inv.Env {
		env[k] = v
	}

	cmd := exec.CommandContext(ctx, r.binary, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = mergeEnv(os.Environ(), env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := Result{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound):
			result.ExitCode = ExitCodeNotFound
			fmt.Fprintln(&stderr, err)
		default:
			result.ExitCode = ExitCodeCannotRun
			fmt.Fprintln(&stderr, err)
		}
	}
	result.Stdout = decode(stdout.Bytes())
	result.Stderr = decode(stderr.Bytes())

	r.logger.Debug(
		fmt.Sprintf("%s %s", r.binary, strings.Join(maskArgs(inv.Args, inv.Secret), " ")),
		"dir", inv.Dir,
		"exit", result.ExitCode,
	)

	return result
}

// mergeEnv returns base with every key of overrides replaced or appended
func mergeEnv(base []string, overrides map[string]string) []string {
	env := lo.Filter(base, func(kv string, _ int) bool {
		key, _, _ := strings.Cut(kv, "=")
		_, replaced := overrides[key]
		return !replaced
	})

	keys := lo.Keys(overrides)
	slices.Sort(keys)
	for _, key := range keys {
		env = append(env, key+"="+overrides[key])
	}
	return env
}

func decode(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

func maskArgs(args []string, secret string) []string {
	if secret == "" {
		return args
	}
	return lo.Map(args, func(arg string, _ int) string {
		return Redact(arg, secret)
	})
}
