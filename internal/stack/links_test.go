package stack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Endi1/stack/internal/stack"
	"github.com/Endi1/stack/testhelpers"
)

func TestParseLinks(t *testing.T) {
	t.Run("parses valid lines in order", func(t *testing.T) {
		lines := []string{
			"branch.feature-1.stack-parent main",
			"branch.feature-2.stack-parent feature-1",
		}

		links := stack.ParseLinks(lines)

		require.Equal(t, []stack.ParentLink{
			{Child: "feature-1", Parent: "main"},
			{Child: "feature-2", Parent: "feature-1"},
		}, links)
	})

	t.Run("skips malformed lines silently", func(t *testing.T) {
		lines := []string{
			"branch.good.stack-parent main",
			"branch.no-value.stack-parent",               // one field
			"branch.too.stack-parent many fields here",   // more than two fields
			"core.editor vim",                            // wrong namespace
			"branch.wrong-suffix.description some-value", // wrong suffix
			"",
		}

		links := stack.ParseLinks(lines)

		require.Equal(t, []stack.ParentLink{{Child: "good", Parent: "main"}}, links)
	})

	t.Run("branch names containing dots keep their full name", func(t *testing.T) {
		links := stack.ParseLinks([]string{"branch.feat.v2.stack-parent main"})

		require.Equal(t, []stack.ParentLink{{Child: "feat.v2", Parent: "main"}}, links)
	})

	t.Run("empty input yields empty links", func(t *testing.T) {
		require.Empty(t, stack.ParseLinks(nil))
		require.Empty(t, stack.ParseLinks([]string{}))
	})
}

func TestGitConfigStore(t *testing.T) {
	t.Run("set, get, and unset a parent link", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		ctx := context.Background()
		store := stack.NewGitConfigStore()

		require.NoError(t, store.SetParent(ctx, "feature", "main"))

		parent, ok, err := store.Parent(ctx, "feature")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "main", parent)

		require.NoError(t, store.UnsetParent(ctx, "feature"))

		_, ok, err = store.Parent(ctx, "feature")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("unsetting a missing link is not an error", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		store := stack.NewGitConfigStore()
		require.NoError(t, store.UnsetParent(context.Background(), "never-linked"))
	})

	t.Run("no links yields an empty enumeration, not an error", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		links, err := stack.NewGitConfigStore().Links(context.Background())
		require.NoError(t, err)
		require.Empty(t, links)
	})

	t.Run("enumerates all recorded links", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		ctx := context.Background()
		store := stack.NewGitConfigStore()
		require.NoError(t, store.SetParent(ctx, "a", "main"))
		require.NoError(t, store.SetParent(ctx, "b", "a"))

		links, err := store.Links(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []stack.ParentLink{
			{Child: "a", Parent: "main"},
			{Child: "b", Parent: "a"},
		}, links)
	})
}
