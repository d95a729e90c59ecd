package git

import (
	"context"
	"fmt"
)

// CheckoutBranch moves the working tree to the named branch
func CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", branchName)
	return err
}

// CheckoutBranchInteractive checks out a branch with git's own output going
// straight to the terminal, so the user sees the usual checkout summary.
func CheckoutBranchInteractive(branchName string) error {
	return RunGitCommandInteractive("checkout", branchName)
}

// CreateAndCheckoutBranch creates a new branch off the current one and checks it out
func CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", "-b", branchName)
	return err
}

// DeleteBranch force-deletes a local branch
func DeleteBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "branch", "-D", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// AmendNoEdit amends the last commit keeping its message, with git's output
// connected to the terminal.
func AmendNoEdit() error {
	return RunGitCommandInteractive("commit", "--amend", "--no-edit")
}
