package stack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Endi1/stack/internal/stack"
	"github.com/Endi1/stack/internal/tui"
	"github.com/Endi1/stack/testhelpers"
)

func TestPropagate(t *testing.T) {
	splog := tui.NewSplog()

	t.Run("branch with no children performs no operations", func(t *testing.T) {
		graph, err := stack.BuildGraph(nil)
		require.NoError(t, err)

		ops := newMockGitOps()
		propagator := stack.NewPropagator(graph, ops, splog)

		require.NoError(t, propagator.Propagate(context.Background(), "lonely"))
		require.Empty(t, ops.calls)
	})

	t.Run("linear chain rebases in order", func(t *testing.T) {
		graph, err := stack.BuildGraph([]stack.ParentLink{
			{Child: "b", Parent: "a"},
			{Child: "c", Parent: "b"},
			{Child: "d", Parent: "c"},
		})
		require.NoError(t, err)

		ops := newMockGitOps()
		propagator := stack.NewPropagator(graph, ops, splog)

		require.NoError(t, propagator.Propagate(context.Background(), "a"))
		require.Equal(t, []string{
			"checkout b", "rebase a",
			"checkout c", "rebase b",
			"checkout d", "rebase c",
		}, ops.calls)
	})

	t.Run("completes a subtree before the next sibling", func(t *testing.T) {
		// a has children b then c; b has its own child b1
		graph, err := stack.BuildGraph([]stack.ParentLink{
			{Child: "b", Parent: "a"},
			{Child: "c", Parent: "a"},
			{Child: "b1", Parent: "b"},
			{Child: "c1", Parent: "c"},
		})
		require.NoError(t, err)

		ops := newMockGitOps()
		propagator := stack.NewPropagator(graph, ops, splog)

		require.NoError(t, propagator.Propagate(context.Background(), "a"))
		require.Equal(t, []string{
			"checkout b", "rebase a",
			"checkout b1", "rebase b",
			"checkout c", "rebase a",
			"checkout c1", "rebase c",
		}, ops.calls)
	})

	t.Run("first rebase failure aborts the propagation", func(t *testing.T) {
		graph, err := stack.BuildGraph([]stack.ParentLink{
			{Child: "b", Parent: "a"},
			{Child: "c", Parent: "b"},
			{Child: "d", Parent: "c"},
		})
		require.NoError(t, err)

		ops := newMockGitOps()
		ops.failRebaseOnto = "b"
		propagator := stack.NewPropagator(graph, ops, splog)

		err = propagator.Propagate(context.Background(), "a")
		require.Error(t, err)
		require.Contains(t, err.Error(), "rebase c onto b")

		// d was never touched
		require.Equal(t, []string{
			"checkout b", "rebase a",
			"checkout c", "rebase b (failed)",
		}, ops.calls)
	})
}

func TestPropagateAgainstRealRepo(t *testing.T) {
	t.Run("descendants pick up new ancestor commits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// main -> a -> b
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("a"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("a change", "a"))
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("b"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("b change", "b"))

		// new commit on a that b does not have yet
		require.NoError(t, scene.Repo.CheckoutBranch("a"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("a followup", "a2"))

		graph, err := stack.BuildGraph([]stack.ParentLink{
			{Child: "a", Parent: "main"},
			{Child: "b", Parent: "a"},
		})
		require.NoError(t, err)

		propagator := stack.NewPropagator(graph, stack.NewGitOps(), tui.NewSplog())
		require.NoError(t, propagator.Propagate(context.Background(), "a"))

		aSHA, err := scene.Repo.GetBranchSHA("a")
		require.NoError(t, err)
		contained, err := scene.Repo.IsAncestor(aSHA, "b")
		require.NoError(t, err)
		require.True(t, contained, "b should contain a's new commit after restack")
	})

	t.Run("restacking twice is a no-op the second time", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("a"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("a change", "a"))
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("b"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("b change", "b"))
		require.NoError(t, scene.Repo.CheckoutBranch("a"))

		graph, err := stack.BuildGraph([]stack.ParentLink{
			{Child: "a", Parent: "main"},
			{Child: "b", Parent: "a"},
		})
		require.NoError(t, err)

		propagator := stack.NewPropagator(graph, stack.NewGitOps(), tui.NewSplog())
		require.NoError(t, propagator.Propagate(context.Background(), "a"))

		shaAfterFirst, err := scene.Repo.GetBranchSHA("b")
		require.NoError(t, err)

		require.NoError(t, propagator.Propagate(context.Background(), "a"))

		shaAfterSecond, err := scene.Repo.GetBranchSHA("b")
		require.NoError(t, err)
		require.Equal(t, shaAfterFirst, shaAfterSecond)
	})
}
