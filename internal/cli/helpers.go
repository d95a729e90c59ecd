package cli

import (
	"context"
	"fmt"

	"github.com/Endi1/stack/internal/config"
	"github.com/Endi1/stack/internal/git"
	"github.com/Endi1/stack/internal/stack"
	"github.com/Endi1/stack/internal/tui"
)

// cmdContext carries everything a command needs: repository location,
// trunk/remote configuration, the link store, and the git executor.
type cmdContext struct {
	RepoRoot string
	Trunk    string
	Remote   string
	Store    stack.LinkStore
	Git      stack.GitOps
	Splog    *tui.Splog
}

// newCmdContext initializes the repository and loads configuration.
// Every command starts here.
func newCmdContext() (*cmdContext, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	trunk, err := config.GetTrunk(repoRoot)
	if err != nil {
		return nil, err
	}
	remote, err := config.GetRemote(repoRoot)
	if err != nil {
		return nil, err
	}

	return &cmdContext{
		RepoRoot: repoRoot,
		Trunk:    trunk,
		Remote:   remote,
		Store:    stack.NewGitConfigStore(),
		Git:      stack.NewGitOps(),
		Splog:    tui.NewSplog(),
	}, nil
}

// restackCurrent propagates rebases through the descendants of the current
// branch and returns to it. Shared by restack and amend.
func restackCurrent(ctx context.Context, cc *cmdContext) error {
	if git.IsRebaseInProgress(ctx) {
		return fmt.Errorf("a rebase is in progress; resolve it before restacking")
	}

	current, err := git.GetCurrentBranch()
	if err != nil {
		return err
	}

	graph, err := stack.LoadGraph(ctx, cc.Store)
	if err != nil {
		return err
	}

	cc.Splog.Info("Restacking children of %s...", current)

	propagator := stack.NewPropagator(graph, cc.Git, cc.Splog)
	if err := propagator.Propagate(ctx, current); err != nil {
		return err
	}

	cc.Splog.Info("Done. Returning to %s", current)
	return cc.Git.CheckoutBranch(ctx, current)
}
