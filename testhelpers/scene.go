package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene is a temporary workspace holding a bare repository at
// remote/host.git and a "local" repository whose origin is that host. The
// local repository has file.txt committed on main and pushed, with main
// tracking origin/main.
// The workspace directory itself is not a repository. Clones are made from
// CloneDir, an excluded directory inside the local repository, so cloning
// the host there creates CloneDir/host.
type Scene struct {
	Dir      string
	HostDir  string
	CloneDir string
	Local    *GitRepo
}

// CloneDirName is the directory of the local repository that clones go to
const CloneDirName = "clones"

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// SeedFile is the file committed in the local repository of every scene
const SeedFile = "file.txt"

// RequireGit skips the test when no git binary is available
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// IsolateGit makes git ignore global and system configuration, gives
// commits a fixed identity and stops repository discovery at the temp dir,
// for the test and every process it starts.
func IsolateGit(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	t.Setenv("GIT_CEILING_DIRECTORIES", tempRoot())
}

func tempRoot() string {
	root := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		return resolved
	}
	return root
}

// TempDir creates a directory under the system temp dir that is removed
// when the test ends, unless DEBUG is set.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "gitcmd-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// Resolve symlinks so paths compare equal to what git reports
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(dir)
		}
	})
	return dir
}

// NewScene creates a new test scene.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	RequireGit(t)
	IsolateGit(t)

	dir := TempDir(t)
	scene := &Scene{
		Dir:     dir,
		HostDir: filepath.Join(dir, "remote", "host.git"),
	}

	if err := InitBareRepo(scene.HostDir); err != nil {
		t.Fatalf("Failed to create host repo: %v", err)
	}

	local, err := NewGitRepo(filepath.Join(dir, "local"))
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}
	scene.Local = local

	if err := local.RunGitCommand("remote", "add", "origin", scene.HostDir); err != nil {
		t.Fatalf("Failed to add remote: %v", err)
	}
	if err := local.CreateChangeAndCommit(SeedFile, "", "test"); err != nil {
		t.Fatalf("Failed to commit seed file: %v", err)
	}
	if err := local.PushBranch("origin", DefaultBranch); err != nil {
		t.Fatalf("Failed to push seed commit: %v", err)
	}

	scene.CloneDir = local.Path(CloneDirName)
	if err := os.MkdirAll(scene.CloneDir, 0750); err != nil {
		t.Fatalf("Failed to create clone dir: %v", err)
	}
	if err := local.WriteFile(filepath.Join(".git", "info", "exclude"), "/"+CloneDirName+"/\n"); err != nil {
		t.Fatalf("Failed to exclude clone dir: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}
