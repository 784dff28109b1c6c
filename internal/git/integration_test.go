package git_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gitcmd.dev/gitcmd/internal/config"
	gitcmderrors "gitcmd.dev/gitcmd/internal/errors"
	"gitcmd.dev/gitcmd/internal/git"
	"gitcmd.dev/gitcmd/testhelpers"
)

func newClient() *git.Client {
	cfg := config.Default()
	cfg.Language = "en_US.UTF-8"
	return git.NewClient(cfg, nil)
}

func TestClone(t *testing.T) {
	ctx := context.Background()

	t.Run("clone into the default directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		defer testhelpers.ExpectWorkingDirUnchanged(t)()

		result, err := newClient().Clone(ctx, scene.CloneDir, scene.HostDir, git.CloneOptions{})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)
		testhelpers.ExpectDir(t, filepath.Join(scene.CloneDir, "host"))
		require.FileExists(t, filepath.Join(scene.CloneDir, "host", testhelpers.SeedFile))
	})

	t.Run("clone into a named directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		result, err := newClient().Clone(ctx, scene.CloneDir, scene.HostDir, git.CloneOptions{Destination: "copy"})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)
		require.FileExists(t, filepath.Join(scene.CloneDir, "copy", testhelpers.SeedFile))
		require.NoDirExists(t, filepath.Join(scene.CloneDir, "host"))
	})

	t.Run("clone outside a repository launches nothing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		client := newClient()
		require.False(t, client.IsInsideRepository(ctx, scene.Dir))

		_, err := client.Clone(ctx, scene.Dir, scene.HostDir, git.CloneOptions{})
		require.ErrorIs(t, err, gitcmderrors.ErrNotInRepository)

		var notInRepo *gitcmderrors.NotInRepositoryError
		require.ErrorAs(t, err, &notInRepo)
		require.Equal(t, scene.Dir, notInRepo.Path)
		require.NoDirExists(t, filepath.Join(scene.Dir, "host"))
	})

	t.Run("clone with half a credential launches nothing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		_, err := newClient().Clone(ctx, scene.CloneDir, scene.HostDir, git.CloneOptions{
			Credentials: git.Credentials{Username: "alice"},
		})
		require.ErrorIs(t, err, gitcmderrors.ErrMissingCredential)
		require.NoDirExists(t, filepath.Join(scene.CloneDir, "host"))
	})

	t.Run("local status ignores clones", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		client := newClient()

		_, err := client.Clone(ctx, scene.CloneDir, scene.HostDir, git.CloneOptions{})
		require.NoError(t, err)

		status, err := client.Status(ctx, scene.Local.Dir)
		require.NoError(t, err)
		require.Contains(t, status.Stdout, "nothing to commit")
	})
}

func TestAddAndCommit(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, nil)
	client := newClient()
	defer testhelpers.ExpectWorkingDirUnchanged(t)()

	file := scene.Local.Path(testhelpers.SeedFile)
	require.NoError(t, scene.Local.WriteFile(testhelpers.SeedFile, "changed\n"))

	result, err := client.Add(ctx, file)
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode, result.Stderr)

	status, err := client.Status(ctx, scene.Local.Dir)
	require.NoError(t, err)
	require.Contains(t, status.Stdout, "Changes to be committed:")

	result, err = client.Commit(ctx, file, "test")
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode, result.Stderr)
	require.Contains(t, result.Stdout, "1 file changed")

	status, err = client.Status(ctx, scene.Local.Dir)
	require.NoError(t, err)
	require.Contains(t, status.Stdout, "Your branch is ahead of 'origin/main' by 1 commit.")

	subject := testhelpers.Must(scene.Local.RunGitCommandAndGetOutput("log", "-1", "--format=%s"))
	require.Equal(t, "test", subject)
}

func TestCommitMessageIsNotInterpreted(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, nil)
	client := newClient()

	file := scene.Local.Path("notes.txt")
	require.NoError(t, scene.Local.WriteFile("notes.txt", "notes\n"))
	_, err := client.Add(ctx, file)
	require.NoError(t, err)

	message := `it's "quoted" $HOME; echo no`
	result, err := client.Commit(ctx, file, message)
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode, result.Stderr)

	subject := testhelpers.Must(scene.Local.RunGitCommandAndGetOutput("log", "-1", "--format=%s"))
	require.Equal(t, message, subject)
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, nil)
	client := newClient()

	result, err := client.Status(ctx, scene.Local.Dir)
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode)
	require.Contains(t, result.Stdout, "nothing to commit")

	require.NoError(t, scene.Local.WriteFile("untracked.txt", "new\n"))
	result, err = client.Status(ctx, scene.Local.Dir)
	require.NoError(t, err)
	require.Contains(t, result.Stdout, "Untracked files:")
	require.Contains(t, result.Stdout, "untracked.txt")
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("nonexistent branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		result, err := newClient().Checkout(ctx, scene.Local.Dir, git.CheckoutOptions{Branch: "test_branch"})
		require.NoError(t, err)
		require.NotEqual(t, 0, result.ExitCode)
		require.Contains(t, result.Stderr, "did not match any")
	})

	t.Run("create and switch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		client := newClient()

		result, err := client.Checkout(ctx, scene.Local.Dir, git.CheckoutOptions{Branch: "test_branch", New: true})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)
		require.Equal(t, "Switched to a new branch 'test_branch'\n", result.Stderr)

		branches, err := client.Branches(ctx, scene.Local.Dir)
		require.NoError(t, err)
		require.Equal(t, "  main\n* test_branch\n", branches.Stdout)

		result, err = client.Checkout(ctx, scene.Local.Dir, git.CheckoutOptions{Branch: "main"})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)
		require.Equal(t, "main", testhelpers.Must(scene.Local.CurrentBranchName()))
	})

	t.Run("restore a file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Local.WriteFile(testhelpers.SeedFile, "scratch\n"))

		result, err := newClient().Checkout(ctx, scene.Local.Path(testhelpers.SeedFile), git.CheckoutOptions{})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)

		content, err := os.ReadFile(scene.Local.Path(testhelpers.SeedFile))
		require.NoError(t, err)
		require.Empty(t, content)
	})
}

func TestBranches(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, nil)
	client := newClient()

	result, err := client.Branches(ctx, scene.Local.Dir)
	require.NoError(t, err)
	require.Equal(t, "* main\n", result.Stdout)

	result, err = client.CurrentBranch(ctx, scene.Local.Dir)
	require.NoError(t, err)
	require.Equal(t, "main\n", result.Stdout)
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("mixed reset unstages", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		client := newClient()
		file := scene.Local.Path(testhelpers.SeedFile)

		require.NoError(t, scene.Local.WriteFile(testhelpers.SeedFile, "staged\n"))
		_, err := client.Add(ctx, file)
		require.NoError(t, err)

		result, err := client.Reset(ctx, scene.Local.Dir, git.ResetOptions{})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)
		require.Contains(t, result.Stdout, "Unstaged changes after reset:\nM\tfile.txt\n")
	})

	t.Run("hard reset to an earlier commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		first := testhelpers.Must(scene.Local.GetRevision("HEAD"))
		require.NoError(t, scene.Local.CreateChangeAndCommit("second.txt", "two\n", "second"))

		result, err := newClient().Reset(ctx, scene.Local.Dir, git.ResetOptions{Mode: git.ResetHard, Target: first})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)
		require.Contains(t, result.Stdout, "HEAD is now at")
		require.Equal(t, first, testhelpers.Must(scene.Local.GetRevision("HEAD")))
		require.NoFileExists(t, scene.Local.Path("second.txt"))
	})

	t.Run("unknown mode", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		_, err := newClient().Reset(ctx, scene.Local.Dir, git.ResetOptions{Mode: "error"})
		require.ErrorIs(t, err, gitcmderrors.ErrInvalidResetMode)
	})
}

func TestPull(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, nil)
	client := newClient()

	_, err := client.Clone(ctx, scene.CloneDir, scene.HostDir, git.CloneOptions{Destination: "other"})
	require.NoError(t, err)
	other := &testhelpers.GitRepo{Dir: filepath.Join(scene.CloneDir, "other")}
	require.NoError(t, other.CreateChangeAndCommit("upstream.txt", "upstream\n", "upstream change"))
	require.NoError(t, other.RunGitCommand("push"))

	result, err := client.Pull(ctx, scene.Local.Dir, scene.HostDir, git.Credentials{})
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode, result.Stderr)
	require.Contains(t, result.Stdout, "Fast-forward")
	require.Equal(t, testhelpers.Must(other.GetRevision("HEAD")), testhelpers.Must(scene.Local.GetRevision("HEAD")))

	result, err = client.Pull(ctx, scene.Local.Dir, scene.HostDir, git.Credentials{})
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode, result.Stderr)
	require.Contains(t, result.Stdout, "Already up to date.")
}

func TestPush(t *testing.T) {
	ctx := context.Background()

	t.Run("push the current branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		host := &testhelpers.GitRepo{Dir: scene.HostDir}
		require.NoError(t, scene.Local.CreateChangeAndCommit("pushed.txt", "pushed\n", "pushed"))

		result, err := newClient().Push(ctx, scene.Local.Dir, scene.HostDir, git.Credentials{})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)
		require.Equal(t, testhelpers.Must(scene.Local.GetRevision("HEAD")), testhelpers.Must(host.GetRevision(testhelpers.DefaultBranch)))
	})

	t.Run("push a new branch sets upstream", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		client := newClient()

		_, err := client.Checkout(ctx, scene.Local.Dir, git.CheckoutOptions{Branch: "feature", New: true})
		require.NoError(t, err)

		result, err := client.Push(ctx, scene.Local.Dir, scene.HostDir, git.Credentials{})
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode, result.Stderr)

		upstream := testhelpers.Must(scene.Local.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "feature@{upstream}"))
		require.Equal(t, "origin/feature", upstream)
	})

	t.Run("username without password launches nothing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		host := &testhelpers.GitRepo{Dir: scene.HostDir}
		before := testhelpers.Must(host.GetRevision(testhelpers.DefaultBranch))
		require.NoError(t, scene.Local.CreateChangeAndCommit("pushed.txt", "pushed\n", "pushed"))

		_, err := newClient().Push(ctx, scene.Local.Dir, scene.HostDir, git.Credentials{Username: "alice"})
		require.ErrorIs(t, err, gitcmderrors.ErrMissingCredential)
		require.Equal(t, before, testhelpers.Must(host.GetRevision(testhelpers.DefaultBranch)))
	})

	t.Run("repository without commits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		empty, err := testhelpers.NewGitRepo(filepath.Join(scene.Dir, "empty"))
		require.NoError(t, err)

		result, err := newClient().Push(ctx, empty.Dir, scene.HostDir, git.Credentials{})
		require.NoError(t, err)
		require.NotEqual(t, 0, result.ExitCode)
		require.True(t, strings.HasPrefix(result.Stderr, git.CurrentBranchFailurePrefix))
	})
}

func TestOutsideRepository(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, nil)
	client := newClient()

	require.True(t, client.IsInsideRepository(ctx, scene.Local.Dir))
	require.True(t, client.IsInsideRepository(ctx, scene.Local.Path(testhelpers.SeedFile)))
	require.False(t, client.IsInsideRepository(ctx, scene.Dir))
	require.False(t, client.IsInsideRepository(ctx, filepath.Join(scene.Dir, "missing", "file.txt")))

	_, err := client.Status(ctx, scene.Dir)
	require.ErrorIs(t, err, gitcmderrors.ErrNotInRepository)
	require.EqualError(t, err, "'"+scene.Dir+"' is not inside a repository")
}

func TestRemoteURL(t *testing.T) {
	ctx := context.Background()
	scene := testhelpers.NewScene(t, nil)

	remote, err := newClient().RemoteURL(ctx, scene.Local.Path(testhelpers.SeedFile), "")
	require.NoError(t, err)
	require.Equal(t, scene.HostDir, remote)

	_, err = newClient().RemoteURL(ctx, scene.Local.Dir, "upstream")
	require.Error(t, err)
}

func TestConcurrentOperations(t *testing.T) {
	ctx := context.Background()
	first := testhelpers.NewScene(t, nil)
	second := testhelpers.NewScene(t, nil)
	client := newClient()
	defer testhelpers.ExpectWorkingDirUnchanged(t)()

	var wg sync.WaitGroup
	results := make([]git.Result, 8)
	errs := make([]error, 8)
	for i := range results {
		dir := first.Local.Dir
		if i%2 == 1 {
			dir = second.Local.Dir
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = client.CurrentBranch(ctx, dir)
		}()
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, "main\n", results[i].Stdout)
	}
}

func TestInstalledGitVersion(t *testing.T) {
	testhelpers.RequireGit(t)

	version, err := newClient().Version(context.Background())
	require.NoError(t, err)
	require.False(t, version.LessThan(git.MinimumVersion))
	require.NoError(t, newClient().CheckVersion(context.Background()))
}
