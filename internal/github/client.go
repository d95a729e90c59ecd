// Package github provides the pull-request hosting client used by submit.
package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/Endi1/stack/internal/git"
)

// PullRequestInfo contains information about a pull request.
// This is a simplified struct to avoid coupling callers to go-github.
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
	State   string
	Base    string
	Head    string
}

// CreatePROptions are the fields for creating a pull request
type CreatePROptions struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// Client is an interface for pull-request hosting interactions
type Client interface {
	// GetPullRequestByBranch returns the open PR whose head is the branch,
	// or nil when none exists.
	GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error)

	// UpdatePullRequestBase retargets an existing pull request
	UpdatePullRequestBase(ctx context.Context, prNumber int, base string) error
}

// RealClient implements Client using the GitHub API
type RealClient struct {
	client *gogithub.Client
	owner  string
	repo   string
}

// NewRealClient creates a client authenticated from GITHUB_TOKEN or the
// gh CLI, targeting the repository behind the given remote.
func NewRealClient(ctx context.Context, remote string) (*RealClient, error) {
	token, err := getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	owner, repo, err := getRepoInfo(ctx, remote)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &RealClient{
		client: gogithub.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

func (c *RealClient) GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &gogithub.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "open",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}
	if len(prs) == 0 {
		return nil, nil
	}
	return toPullRequestInfo(prs[0]), nil
}

func (c *RealClient) CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error) {
	pr := &gogithub.NewPullRequest{
		Title: gogithub.String(opts.Title),
		Head:  gogithub.String(opts.Head),
		Base:  gogithub.String(opts.Base),
	}
	if opts.Body != "" {
		pr.Body = gogithub.String(opts.Body)
	}

	createdPR, _, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	return toPullRequestInfo(createdPR), nil
}

func (c *RealClient) UpdatePullRequestBase(ctx context.Context, prNumber int, base string) error {
	update := &gogithub.PullRequest{
		Base: &gogithub.PullRequestBranch{
			Ref: gogithub.String(base),
		},
	}

	_, _, err := c.client.PullRequests.Edit(ctx, c.owner, c.repo, prNumber, update)
	if err != nil {
		return fmt.Errorf("failed to update pull request #%d: %w", prNumber, err)
	}
	return nil
}

func toPullRequestInfo(pr *gogithub.PullRequest) *PullRequestInfo {
	info := &PullRequestInfo{}
	if pr.Number != nil {
		info.Number = *pr.Number
	}
	if pr.HTMLURL != nil {
		info.HTMLURL = *pr.HTMLURL
	}
	if pr.Title != nil {
		info.Title = *pr.Title
	}
	if pr.State != nil {
		info.State = *pr.State
	}
	if pr.Base != nil && pr.Base.Ref != nil {
		info.Base = *pr.Base.Ref
	}
	if pr.Head != nil && pr.Head.Ref != nil {
		info.Head = *pr.Head.Ref
	}
	return info
}

func getToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	// Fall back to the gh CLI's stored credentials
	output, err := git.RunGHCommandWithContext(ctx, "auth", "token")
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(output)
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}

// getRepoInfo parses owner and repository name out of the remote URL.
// Handles https://github.com/owner/repo.git and git@github.com:owner/repo.git.
func getRepoInfo(ctx context.Context, remote string) (string, string, error) {
	url, _, err := git.ConfigGet(ctx, fmt.Sprintf("remote.%s.url", remote))
	if err != nil {
		return "", "", err
	}
	if url == "" {
		return "", "", fmt.Errorf("remote %s has no url configured", remote)
	}

	return ParseRepoURL(url)
}

// ParseRepoURL extracts owner and repo from a git remote URL
func ParseRepoURL(url string) (string, string, error) {
	trimmed := strings.TrimSuffix(url, ".git")

	if idx := strings.Index(trimmed, "github.com:"); idx >= 0 {
		trimmed = trimmed[idx+len("github.com:"):]
	} else if idx := strings.Index(trimmed, "github.com/"); idx >= 0 {
		trimmed = trimmed[idx+len("github.com/"):]
	} else {
		return "", "", fmt.Errorf("unsupported remote url: %s", url)
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("unsupported remote url: %s", url)
	}
	return parts[0], parts[1], nil
}
