package stack_test

import (
	"context"
	"fmt"

	"github.com/Endi1/stack/internal/stack"
)

// mockGitOps records every call and simulates branch state for core tests
// that should not touch a real repository.
type mockGitOps struct {
	calls []string

	missingBranches  map[string]bool
	mergedBranches   map[string]bool
	commitMessages   map[string]string
	summaries        map[string]string
	failRebaseOnto   string
	failMergeOf      string
	failRemoteDelete bool
}

func newMockGitOps() *mockGitOps {
	return &mockGitOps{
		missingBranches: map[string]bool{},
		mergedBranches:  map[string]bool{},
		commitMessages:  map[string]string{},
		summaries:       map[string]string{},
	}
}

func (m *mockGitOps) record(format string, args ...interface{}) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func (m *mockGitOps) CheckoutBranch(_ context.Context, branch string) error {
	m.record("checkout %s", branch)
	return nil
}

func (m *mockGitOps) Rebase(_ context.Context, onto string) error {
	if m.failRebaseOnto == onto {
		m.record("rebase %s (failed)", onto)
		return fmt.Errorf("rebase failed onto %s", onto)
	}
	m.record("rebase %s", onto)
	return nil
}

func (m *mockGitOps) BranchExists(branch string) (bool, error) {
	return !m.missingBranches[branch], nil
}

func (m *mockGitOps) IsMergedIntoRemoteTrunk(_ context.Context, branch, _, _ string) (bool, error) {
	return m.mergedBranches[branch], nil
}

func (m *mockGitOps) PullBranch(_ context.Context, remote, branch string) error {
	m.record("pull %s %s", remote, branch)
	return nil
}

func (m *mockGitOps) SquashMerge(_ context.Context, branch string) error {
	if m.failMergeOf == branch {
		m.record("merge --squash %s (failed)", branch)
		return fmt.Errorf("merge failed for %s", branch)
	}
	m.record("merge --squash %s", branch)
	return nil
}

func (m *mockGitOps) CommitMessage(branch string) (string, error) {
	if msg, ok := m.commitMessages[branch]; ok {
		return msg, nil
	}
	return "commit on " + branch, nil
}

func (m *mockGitOps) CommitSummary(branch string) (string, error) {
	if summary, ok := m.summaries[branch]; ok {
		return summary, nil
	}
	return "", fmt.Errorf("no summary for %s", branch)
}

func (m *mockGitOps) Commit(_ context.Context, message string) error {
	m.record("commit %q", message)
	return nil
}

func (m *mockGitOps) DeleteBranch(_ context.Context, branch string) error {
	m.record("branch -D %s", branch)
	return nil
}

func (m *mockGitOps) DeleteRemoteBranch(_ context.Context, remote, branch string) error {
	if m.failRemoteDelete {
		m.record("push %s --delete %s (failed)", remote, branch)
		return fmt.Errorf("remote delete failed for %s", branch)
	}
	m.record("push %s --delete %s", remote, branch)
	return nil
}

func (m *mockGitOps) PushBranch(_ context.Context, remote, branch string, forceWithLease bool) error {
	if forceWithLease {
		m.record("push %s %s --force-with-lease", remote, branch)
	} else {
		m.record("push %s %s", remote, branch)
	}
	return nil
}

// memLinkStore is an in-memory LinkStore for planner tests
type memLinkStore struct {
	parents    map[string]string
	unsetCalls []string
	failUnset  bool
}

func newMemLinkStore(parents map[string]string) *memLinkStore {
	return &memLinkStore{parents: parents}
}

func (s *memLinkStore) Parent(_ context.Context, child string) (string, bool, error) {
	parent, ok := s.parents[child]
	return parent, ok, nil
}

func (s *memLinkStore) SetParent(_ context.Context, child, parent string) error {
	s.parents[child] = parent
	return nil
}

func (s *memLinkStore) UnsetParent(_ context.Context, child string) error {
	s.unsetCalls = append(s.unsetCalls, child)
	if s.failUnset {
		return fmt.Errorf("unset failed for %s", child)
	}
	delete(s.parents, child)
	return nil
}

func (s *memLinkStore) Links(_ context.Context) ([]stack.ParentLink, error) {
	links := make([]stack.ParentLink, 0, len(s.parents))
	for child, parent := range s.parents {
		links = append(links, stack.ParentLink{Child: child, Parent: parent})
	}
	return links, nil
}
