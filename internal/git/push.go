package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to the remote. forceWithLease protects against
// clobbering remote work after a restack rewrote history.
func PushBranch(ctx context.Context, remote, branchName string, forceWithLease bool) error {
	args := []string{"push", remote, branchName}
	if forceWithLease {
		args = append(args, "--force-with-lease")
	}
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to push %s: %w", branchName, err)
	}
	return nil
}

// DeleteRemoteBranch removes a branch on the remote
func DeleteRemoteBranch(ctx context.Context, remote, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "push", remote, "--delete", branchName)
	return err
}

// PullBranch pulls the named branch from the remote into the working tree
func PullBranch(ctx context.Context, remote, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "pull", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to pull %s from %s: %w", branchName, remote, err)
	}
	return nil
}
