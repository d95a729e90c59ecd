package stack

import (
	"context"

	stackerrors "github.com/Endi1/stack/internal/errors"
)

// Graph is the in-memory parent -> ordered children index derived from the
// persisted parent links. It is rebuilt fresh on every command invocation
// and never persisted.
type Graph struct {
	children map[string][]string
	parents  map[string]string
}

// BuildGraph inverts the parent links into a children index. Children keep
// the order the links were enumerated in. A cycle in the links fails fast
// with a CorruptStackError instead of looping during restack or land.
func BuildGraph(links []ParentLink) (*Graph, error) {
	g := &Graph{
		children: make(map[string][]string),
		parents:  make(map[string]string),
	}

	for _, link := range links {
		g.children[link.Parent] = append(g.children[link.Parent], link.Child)
		g.parents[link.Child] = link.Parent
	}

	if err := g.checkCycles(); err != nil {
		return nil, err
	}

	return g, nil
}

// LoadGraph reads all links from the store and builds the graph
func LoadGraph(ctx context.Context, store LinkStore) (*Graph, error) {
	links, err := store.Links(ctx)
	if err != nil {
		return nil, err
	}
	return BuildGraph(links)
}

// ChildrenOf returns the children of a branch in recorded order, or an
// empty slice when the branch has none.
func (g *Graph) ChildrenOf(branch string) []string {
	children, ok := g.children[branch]
	if !ok {
		return []string{}
	}
	return children
}

// Parent returns the recorded parent of a branch, with ok=false for roots
func (g *Graph) Parent(branch string) (string, bool) {
	parent, ok := g.parents[branch]
	return parent, ok
}

// RootOf walks parent links upward from a branch until one has no link.
// Note that this does not stop at the trunk: the root is simply the
// topmost branch with a link chain below it.
func (g *Graph) RootOf(branch string) (string, error) {
	visited := map[string]bool{}
	current := branch
	for {
		if visited[current] {
			return "", stackerrors.NewCorruptStackError(keys(visited))
		}
		visited[current] = true

		parent, ok := g.parents[current]
		if !ok {
			return current, nil
		}
		current = parent
	}
}

// checkCycles walks the parent chain from every linked branch with a
// visited set. Branches proven to reach a root are memoized so the whole
// check stays linear.
func (g *Graph) checkCycles() error {
	safe := make(map[string]bool, len(g.parents))

	for child := range g.parents {
		path := []string{}
		onPath := map[string]bool{}

		current := child
		for {
			if safe[current] {
				break
			}
			if onPath[current] {
				return stackerrors.NewCorruptStackError(path)
			}
			onPath[current] = true
			path = append(path, current)

			parent, ok := g.parents[current]
			if !ok {
				break
			}
			current = parent
		}

		for _, name := range path {
			safe[name] = true
		}
	}

	return nil
}

func keys(m map[string]bool) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
