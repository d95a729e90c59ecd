package testhelpers

import (
	"os"
	"testing"

	"github.com/Endi1/stack/internal/git"
)

// Scene represents a test scene with a temporary directory and Git repository
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git
// repository, points the git package at it, and registers cleanup.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "stack-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	git.SetWorkingDir(tmpDir)

	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	if err := git.InitDefaultRepo(); err != nil {
		os.Chdir(oldDir)
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to open repo: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
		git.SetWorkingDir("")
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// Refresh re-opens the repository after external changes to HEAD or refs
func (s *Scene) Refresh(t *testing.T) {
	t.Helper()
	if err := git.InitDefaultRepo(); err != nil {
		t.Fatalf("Failed to re-open repo: %v", err)
	}
}
