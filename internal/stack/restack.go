package stack

import (
	"context"
	"fmt"

	"github.com/Endi1/stack/internal/tui"
)

// Propagator rebases the descendants of a branch in dependency order
type Propagator struct {
	graph *Graph
	git   GitOps
	splog *tui.Splog
}

// NewPropagator creates a Propagator over the given graph
func NewPropagator(graph *Graph, gitOps GitOps, splog *tui.Splog) *Propagator {
	return &Propagator{
		graph: graph,
		git:   gitOps,
		splog: splog,
	}
}

// restackFrame tracks one level of the depth-first walk
type restackFrame struct {
	parent   string
	children []string
	next     int
}

// Propagate walks the graph from start in pre-order, checking out and
// rebasing each child onto its parent. A branch's whole subtree is rebased
// before its next sibling begins. The walk uses an explicit frame stack so
// deep stacks cannot exhaust the call stack.
//
// The first failing checkout or rebase aborts the propagation immediately,
// leaving the repository on whatever branch failed. Nothing already rebased
// is rolled back; the user resolves the conflict with git directly.
func (p *Propagator) Propagate(ctx context.Context, start string) error {
	frames := []restackFrame{{
		parent:   start,
		children: p.graph.ChildrenOf(start),
	}}

	for len(frames) > 0 {
		frame := &frames[len(frames)-1]
		if frame.next >= len(frame.children) {
			frames = frames[:len(frames)-1]
			continue
		}

		child := frame.children[frame.next]
		frame.next++

		p.splog.Info("Rebasing %s onto %s", child, frame.parent)

		if err := p.git.CheckoutBranch(ctx, child); err != nil {
			return fmt.Errorf("failed to checkout %s: %w", child, err)
		}
		if err := p.git.Rebase(ctx, frame.parent); err != nil {
			return fmt.Errorf("failed to rebase %s onto %s: %w", child, frame.parent, err)
		}

		frames = append(frames, restackFrame{
			parent:   child,
			children: p.graph.ChildrenOf(child),
		})
	}

	return nil
}
