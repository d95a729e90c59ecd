package git

import (
	"fmt"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	stackerrors "github.com/Endi1/stack/internal/errors"
)

// Repository wraps a go-git repository for read-only queries.
type Repository struct {
	*gogit.Repository
	path string
}

var defaultRepo *Repository

// GetRepoRoot returns the root directory of the Git repository
func GetRepoRoot() (string, error) {
	wd := defaultRunner.workingDir
	if wd == "" {
		var err error
		wd, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// InitDefaultRepo initializes the default repository from the current directory
func InitDefaultRepo() error {
	repoRoot, err := GetRepoRoot()
	if err != nil {
		return err
	}

	repo, err := gogit.PlainOpenWithOptions(repoRoot, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	defaultRepo = &Repository{Repository: repo, path: repoRoot}
	return nil
}

// GetDefaultRepo returns the default repository (must call InitDefaultRepo first)
func GetDefaultRepo() (*Repository, error) {
	if defaultRepo == nil {
		return nil, fmt.Errorf("repository not initialized, call InitDefaultRepo first")
	}
	return defaultRepo, nil
}

// GetCurrentBranch returns the current branch name
func GetCurrentBranch() (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", stackerrors.ErrNotOnBranch
	}
	return head.Name().Short(), nil
}

// GetAllBranchNames returns all local branch names in the repository
func GetAllBranchNames() ([]string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// BranchExists reports whether a local branch with the given name exists
func BranchExists(branchName string) (bool, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return false, err
	}

	_, err = repo.Reference(plumbing.NewBranchReferenceName(branchName), true)
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve branch %s: %w", branchName, err)
	}
	return true, nil
}

// GetCommitSummary returns the first line of the latest commit message on a branch
func GetCommitSummary(branchName string) (string, error) {
	message, err := GetCommitMessage(branchName)
	if err != nil {
		return "", err
	}
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return message[:idx], nil
	}
	return message, nil
}

// GetCommitMessage returns the full latest commit message on a branch
func GetCommitMessage(branchName string) (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	ref, err := repo.Reference(plumbing.NewBranchReferenceName(branchName), true)
	if err != nil {
		return "", stackerrors.NewBranchNotFoundError(branchName)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to get commit for %s: %w", branchName, err)
	}

	return strings.TrimSpace(commit.Message), nil
}
