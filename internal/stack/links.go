// Package stack implements the stacked-branch dependency model: persisted
// parent links, the derived dependency graph, rebase propagation, land
// planning, and tree rendering.
package stack

import (
	"context"
	"fmt"
	"strings"

	"github.com/Endi1/stack/internal/git"
)

const (
	linkNamespace  = "branch"
	linkSuffix     = "stack-parent"
	linkKeyPattern = `branch\..*\.stack-parent`
)

// ParentLink is the persisted declaration that a branch is based on another
type ParentLink struct {
	Child  string
	Parent string
}

// LinkStore reads and writes parent links, one per stacked branch
type LinkStore interface {
	// Parent returns the recorded parent of a branch, with ok=false when
	// the branch has no link (root or untracked).
	Parent(ctx context.Context, child string) (string, bool, error)

	// SetParent records child -> parent
	SetParent(ctx context.Context, child, parent string) error

	// UnsetParent removes a link; removing a missing link is not an error
	UnsetParent(ctx context.Context, child string) error

	// Links enumerates all recorded parent links
	Links(ctx context.Context) ([]ParentLink, error)
}

// gitConfigStore persists links in local git config under
// branch.<child>.stack-parent.
type gitConfigStore struct{}

// NewGitConfigStore returns the git-config-backed link store
func NewGitConfigStore() LinkStore {
	return &gitConfigStore{}
}

func linkKey(child string) string {
	return fmt.Sprintf("%s.%s.%s", linkNamespace, child, linkSuffix)
}

func (s *gitConfigStore) Parent(ctx context.Context, child string) (string, bool, error) {
	return git.ConfigGet(ctx, linkKey(child))
}

func (s *gitConfigStore) SetParent(ctx context.Context, child, parent string) error {
	return git.ConfigSet(ctx, linkKey(child), parent)
}

func (s *gitConfigStore) UnsetParent(ctx context.Context, child string) error {
	return git.ConfigUnset(ctx, linkKey(child))
}

func (s *gitConfigStore) Links(ctx context.Context) ([]ParentLink, error) {
	lines, err := git.ConfigGetRegexp(ctx, linkKeyPattern)
	if err != nil {
		return nil, err
	}
	return ParseLinks(lines), nil
}

// ParseLinks decodes "key value" lines from a config query into parent links.
// A line must split into exactly two whitespace-separated fields and the key
// must match branch.<child>.stack-parent; anything else is skipped.
func ParseLinks(lines []string) []ParentLink {
	links := []ParentLink{}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}

		key, parent := fields[0], fields[1]
		rest, ok := strings.CutPrefix(key, linkNamespace+".")
		if !ok {
			continue
		}
		child, ok := strings.CutSuffix(rest, "."+linkSuffix)
		if !ok || child == "" {
			continue
		}

		links = append(links, ParentLink{Child: child, Parent: parent})
	}
	return links
}
