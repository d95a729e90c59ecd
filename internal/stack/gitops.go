package stack

import (
	"context"

	"github.com/Endi1/stack/internal/git"
)

// GitOps is the contract the core needs from the version control system.
// It allows the propagator, planner, and renderer to be tested against a
// mock instead of a real repository.
type GitOps interface {
	CheckoutBranch(ctx context.Context, branch string) error
	Rebase(ctx context.Context, onto string) error
	BranchExists(branch string) (bool, error)
	IsMergedIntoRemoteTrunk(ctx context.Context, branch, remote, trunk string) (bool, error)
	PullBranch(ctx context.Context, remote, branch string) error
	SquashMerge(ctx context.Context, branch string) error
	CommitMessage(branch string) (string, error)
	CommitSummary(branch string) (string, error)
	Commit(ctx context.Context, message string) error
	DeleteBranch(ctx context.Context, branch string) error
	DeleteRemoteBranch(ctx context.Context, remote, branch string) error
	PushBranch(ctx context.Context, remote, branch string, forceWithLease bool) error
}

// realGitOps implements GitOps by calling the git package functions
type realGitOps struct{}

// NewGitOps returns the standard implementation backed by the git package
func NewGitOps() GitOps {
	return &realGitOps{}
}

func (r *realGitOps) CheckoutBranch(ctx context.Context, branch string) error {
	return git.CheckoutBranch(ctx, branch)
}

func (r *realGitOps) Rebase(ctx context.Context, onto string) error {
	return git.Rebase(ctx, onto)
}

func (r *realGitOps) BranchExists(branch string) (bool, error) {
	return git.BranchExists(branch)
}

func (r *realGitOps) IsMergedIntoRemoteTrunk(ctx context.Context, branch, remote, trunk string) (bool, error) {
	return git.IsMergedIntoRemoteTrunk(ctx, branch, remote, trunk)
}

func (r *realGitOps) PullBranch(ctx context.Context, remote, branch string) error {
	return git.PullBranch(ctx, remote, branch)
}

func (r *realGitOps) SquashMerge(ctx context.Context, branch string) error {
	return git.SquashMerge(ctx, branch)
}

func (r *realGitOps) CommitMessage(branch string) (string, error) {
	return git.GetCommitMessage(branch)
}

func (r *realGitOps) CommitSummary(branch string) (string, error) {
	return git.GetCommitSummary(branch)
}

func (r *realGitOps) Commit(ctx context.Context, message string) error {
	return git.Commit(ctx, message)
}

func (r *realGitOps) DeleteBranch(ctx context.Context, branch string) error {
	return git.DeleteBranch(ctx, branch)
}

func (r *realGitOps) DeleteRemoteBranch(ctx context.Context, remote, branch string) error {
	return git.DeleteRemoteBranch(ctx, remote, branch)
}

func (r *realGitOps) PushBranch(ctx context.Context, remote, branch string, forceWithLease bool) error {
	return git.PushBranch(ctx, remote, branch, forceWithLease)
}
