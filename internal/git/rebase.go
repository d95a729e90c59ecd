package git

import (
	"context"
	"os"
	"path/filepath"
)

// Rebase rebases the currently checked out branch onto the given branch.
// Conflict resolution is left to the user via git's own rebase machinery;
// the command error carries git's diagnostics.
func Rebase(ctx context.Context, onto string) error {
	_, err := RunGitCommandWithContext(ctx, "rebase", onto)
	return err
}

// IsRebaseInProgress checks if a rebase is currently in progress
func IsRebaseInProgress(ctx context.Context) bool {
	gitDir, err := RunGitCommandWithContext(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return false
	}

	// rev-parse reports the path relative to the repository, not our cwd
	if !filepath.IsAbs(gitDir) && defaultRunner.workingDir != "" {
		gitDir = filepath.Join(defaultRunner.workingDir, gitDir)
	}

	if _, err := os.Stat(filepath.Join(gitDir, "rebase-merge")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-apply")); err == nil {
		return true
	}
	return false
}
