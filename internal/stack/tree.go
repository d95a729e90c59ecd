package stack

import (
	"strings"

	"github.com/Endi1/stack/internal/tui"
)

const (
	connectorMid  = "├── "
	connectorEnd  = "└── "
	guideContinue = "│   "
	guideBlank    = "    "
)

// Renderer draws a stack as a tree, one branch per line, annotated with the
// current branch and each branch's one-line commit summary.
type Renderer struct {
	graph *Graph
	git   GitOps
}

// NewRenderer creates a Renderer over the given graph
func NewRenderer(graph *Graph, gitOps GitOps) *Renderer {
	return &Renderer{graph: graph, git: gitOps}
}

// treeNode is one pending line of the iterative render
type treeNode struct {
	name        string
	connector   string // prefix plus this node's connector glyph
	childPrefix string // prefix threaded to this node's children
}

// Render walks upward from current to the stack root (the topmost branch
// with no parent link, which may or may not be the trunk) and renders the
// whole tree below it. Children appear in the graph's recorded order. A
// missing commit summary renders as an empty annotation rather than failing.
func (r *Renderer) Render(current string) (string, error) {
	root, err := r.graph.RootOf(current)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	// Depth-first with an explicit stack; children are pushed in reverse so
	// they pop in recorded order.
	nodes := []treeNode{{name: root}}
	for len(nodes) > 0 {
		node := nodes[len(nodes)-1]
		nodes = nodes[:len(nodes)-1]

		sb.WriteString(r.renderLine(node, current))
		sb.WriteByte('\n')

		children := r.graph.ChildrenOf(node.name)
		for i := len(children) - 1; i >= 0; i-- {
			child := treeNode{name: children[i]}
			if i == len(children)-1 {
				child.connector = node.childPrefix + connectorEnd
				child.childPrefix = node.childPrefix + guideBlank
			} else {
				child.connector = node.childPrefix + connectorMid
				child.childPrefix = node.childPrefix + guideContinue
			}
			nodes = append(nodes, child)
		}
	}

	return sb.String(), nil
}

func (r *Renderer) renderLine(node treeNode, current string) string {
	name := node.name
	if node.name == current {
		name = tui.ColorCurrentBranch(name) + " *"
	}

	line := node.connector + name

	summary, err := r.git.CommitSummary(node.name)
	if err != nil {
		summary = ""
	}
	if summary != "" {
		line += "  " + tui.ColorDim(summary)
	}

	return line
}
