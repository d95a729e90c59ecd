package stack_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Endi1/stack/internal/stack"
)

// disableColors forces a plain-text render regardless of the test terminal
func disableColors(t *testing.T) {
	t.Helper()
	t.Setenv("TERM", "dumb")
	t.Setenv("COLORTERM", "")
	t.Setenv("NO_COLOR", "1")
}

func TestRender(t *testing.T) {
	t.Run("two-level stack with connectors", func(t *testing.T) {
		disableColors(t)

		// r has children x then y; x has child z
		graph, err := stack.BuildGraph([]stack.ParentLink{
			{Child: "x", Parent: "r"},
			{Child: "y", Parent: "r"},
			{Child: "z", Parent: "x"},
		})
		require.NoError(t, err)

		ops := newMockGitOps()
		ops.summaries["r"] = "root commit"
		ops.summaries["x"] = "x commit"
		ops.summaries["y"] = "y commit"
		ops.summaries["z"] = "z commit"

		renderer := stack.NewRenderer(graph, ops)
		output, err := renderer.Render("y")
		require.NoError(t, err)

		require.Equal(t, strings.Join([]string{
			"r  root commit",
			"├── x  x commit",
			"│   └── z  z commit",
			"└── y *  y commit",
			"",
		}, "\n"), output)
	})

	t.Run("renders from the stack root when invoked from a leaf", func(t *testing.T) {
		disableColors(t)

		graph, err := stack.BuildGraph([]stack.ParentLink{
			{Child: "mid", Parent: "root"},
			{Child: "leaf", Parent: "mid"},
		})
		require.NoError(t, err)

		renderer := stack.NewRenderer(graph, newMockGitOps())
		output, err := renderer.Render("leaf")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
		require.Equal(t, []string{
			"root",
			"└── mid",
			"    └── leaf *",
		}, lines)
	})

	t.Run("missing commit summary degrades to a bare line", func(t *testing.T) {
		disableColors(t)

		graph, err := stack.BuildGraph([]stack.ParentLink{{Child: "child", Parent: "base"}})
		require.NoError(t, err)

		// mock returns an error for every summary that was not seeded
		renderer := stack.NewRenderer(graph, newMockGitOps())
		output, err := renderer.Render("base")
		require.NoError(t, err)

		require.Equal(t, "base *\n└── child\n", output)
	})

	t.Run("deep chains render without recursion", func(t *testing.T) {
		disableColors(t)

		links := make([]stack.ParentLink, 0, 5000)
		parent := "b0"
		for i := 1; i < 5000; i++ {
			child := "b" + strconv.Itoa(i)
			links = append(links, stack.ParentLink{Child: child, Parent: parent})
			parent = child
		}

		graph, err := stack.BuildGraph(links)
		require.NoError(t, err)

		renderer := stack.NewRenderer(graph, newMockGitOps())
		output, err := renderer.Render("b0")
		require.NoError(t, err)
		require.Equal(t, 5000, strings.Count(output, "\n"))
	})
}
