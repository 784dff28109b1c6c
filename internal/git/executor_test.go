package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitcmd.dev/gitcmd/internal/config"
)

// fakeExecutor answers the repository probe and records every other invocation
type fakeExecutor struct {
	inRepo  bool
	probes  int
	calls   []Invocation
	results map[string]Result
}

func (f *fakeExecutor) Execute(_ context.Context, inv Invocation) Result {
	if len(inv.Args) == 1 && inv.Args[0] == "rev-parse" {
		f.probes++
		if f.inRepo {
			return Result{}
		}
		return Result{ExitCode: 128, Stderr: "fatal: not a git repository"}
	}
	f.calls = append(f.calls, inv)
	if result, ok := f.results[strings.Join(inv.Args, " ")]; ok {
		return result
	}
	return Result{}
}

func newFakeClient(t *testing.T, inRepo bool) (*Client, *fakeExecutor) {
	t.Helper()
	fake := &fakeExecutor{inRepo: inRepo, results: map[string]Result{}}
	cfg := config.Default()
	cfg.Language = "en_US.UTF-8"
	return NewClient(cfg, nil, WithExecutor(fake)), fake
}

// workspace returns a directory containing one empty file, file.txt
func workspace(t *testing.T) (string, string) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0600))
	return dir, file
}
