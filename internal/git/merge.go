package git

import (
	"context"
	"fmt"
)

// SquashMerge squash-merges a branch into the currently checked out branch.
// The result is left staged; a separate commit records it.
func SquashMerge(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "merge", "--squash", branchName)
	if err != nil {
		return fmt.Errorf("failed to squash-merge %s: %w", branchName, err)
	}
	return nil
}

// Commit records the staged changes with the given message
func Commit(ctx context.Context, message string) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-m", message)
	return err
}

// IsAncestor reports whether ancestor is reachable from descendant.
// merge-base --is-ancestor exits 1 for "no"; any other failure is an error.
func IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	_, err := RunGitCommandWithContext(ctx, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	if ExitCode(err) == 1 {
		return false, nil
	}
	return false, err
}

// IsMergedIntoRemoteTrunk reports whether a branch's tip is already contained
// in the remote trunk ref, meaning it has landed.
func IsMergedIntoRemoteTrunk(ctx context.Context, branchName, remote, trunk string) (bool, error) {
	return IsAncestor(ctx, branchName, remote+"/"+trunk)
}
