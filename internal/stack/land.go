package stack

import (
	"context"
	"fmt"

	stackerrors "github.com/Endi1/stack/internal/errors"
	"github.com/Endi1/stack/internal/tui"
)

// Planner computes and executes the order in which a stack lands into trunk
type Planner struct {
	graph  *Graph
	store  LinkStore
	git    GitOps
	splog  *tui.Splog
	trunk  string
	remote string
}

// NewPlanner creates a Planner for the given trunk and remote
func NewPlanner(graph *Graph, store LinkStore, gitOps GitOps, splog *tui.Splog, trunk, remote string) *Planner {
	return &Planner{
		graph:  graph,
		store:  store,
		git:    gitOps,
		splog:  splog,
		trunk:  trunk,
		remote: remote,
	}
}

// Plan walks the parent chain upward from current and returns the branches
// to land, ordered nearest-to-trunk first. A branch is included only if it
// still exists and its tip is not already contained in the remote trunk; a
// merged middle ancestor is walked past, not a stopping point, so older
// ancestors beyond it are still discovered. Trunk itself is never part of
// a plan.
func (p *Planner) Plan(ctx context.Context, current string) ([]string, error) {
	visited := map[string]bool{}
	raw := []string{}

	branch := current
	for {
		if visited[branch] {
			return nil, stackerrors.NewCorruptStackError(keys(visited))
		}
		visited[branch] = true

		exists, err := p.git.BranchExists(branch)
		if err != nil {
			return nil, err
		}
		if exists {
			merged, err := p.git.IsMergedIntoRemoteTrunk(ctx, branch, p.remote, p.trunk)
			if err != nil {
				return nil, err
			}
			if !merged {
				raw = append(raw, branch)
			}
		}

		parent, ok := p.graph.Parent(branch)
		if !ok || parent == p.trunk {
			break
		}
		branch = parent
	}

	// Collected nearest-to-current first; land wants nearest-to-trunk first.
	plan := make([]string, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		plan = append(plan, raw[i])
	}
	return plan, nil
}

// Land executes a plan: sync trunk, squash-merge each branch in order with
// its latest commit message, clean up the branch, and push trunk at the end.
//
// A merge or commit failure aborts the remaining plan; branches already
// landed stay landed. Cleanup failures (remote deletion, link unset) never
// fail the land; they are returned as warnings so the operator still sees
// them.
func (p *Planner) Land(ctx context.Context, plan []string) ([]string, error) {
	if len(plan) == 0 {
		return nil, stackerrors.ErrNothingToLand
	}

	if err := p.git.CheckoutBranch(ctx, p.trunk); err != nil {
		return nil, fmt.Errorf("failed to checkout %s: %w", p.trunk, err)
	}
	if err := p.git.PullBranch(ctx, p.remote, p.trunk); err != nil {
		return nil, err
	}

	warnings := []string{}

	for _, branch := range plan {
		p.splog.Info("Landing %s into %s", branch, p.trunk)

		message, err := p.git.CommitMessage(branch)
		if err != nil {
			return warnings, fmt.Errorf("failed to read commit message of %s: %w", branch, err)
		}
		if err := p.git.SquashMerge(ctx, branch); err != nil {
			return warnings, err
		}
		if err := p.git.Commit(ctx, message); err != nil {
			return warnings, fmt.Errorf("failed to commit squashed %s: %w", branch, err)
		}

		if err := p.git.DeleteBranch(ctx, branch); err != nil {
			return warnings, err
		}
		if err := p.git.DeleteRemoteBranch(ctx, p.remote, branch); err != nil {
			warnings = append(warnings, fmt.Sprintf("could not delete %s on %s: %v", branch, p.remote, err))
		}
		if err := p.store.UnsetParent(ctx, branch); err != nil {
			warnings = append(warnings, fmt.Sprintf("could not remove parent link of %s: %v", branch, err))
		}
	}

	if err := p.git.PushBranch(ctx, p.remote, p.trunk, false); err != nil {
		return warnings, err
	}

	return warnings, nil
}
