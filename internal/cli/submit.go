package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Endi1/stack/internal/git"
	"github.com/Endi1/stack/internal/github"
	"github.com/Endi1/stack/internal/tui"
)

// newSubmitCmd creates the submit command
func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Push the current branch and create or update its pull request",
		Long: `Push the current branch, then create a pull request against its recorded
parent (trunk when no parent is recorded), or retarget the existing one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCmdContext()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			current, err := git.GetCurrentBranch()
			if err != nil {
				return err
			}

			parent, ok, err := cc.Store.Parent(ctx, current)
			if err != nil {
				return err
			}
			if !ok {
				parent = cc.Trunk
			}

			cc.Splog.Info("Pushing %s...", current)
			if err := cc.Git.PushBranch(ctx, cc.Remote, current, true); err != nil {
				return err
			}

			client, err := github.NewRealClient(ctx, cc.Remote)
			if err != nil {
				return err
			}

			pr, err := client.GetPullRequestByBranch(ctx, current)
			if err != nil {
				return err
			}

			if pr != nil {
				if err := client.UpdatePullRequestBase(ctx, pr.Number, parent); err != nil {
					return err
				}
				cc.Splog.Info("Updated PR #%d base to %s", pr.Number, parent)
				return nil
			}

			cc.Splog.Info("Creating PR against %s...", parent)

			title, body, err := promptPRDetails(current)
			if err != nil {
				return err
			}

			created, err := client.CreatePullRequest(ctx, github.CreatePROptions{
				Title: title,
				Body:  body,
				Head:  current,
				Base:  parent,
			})
			if err != nil {
				return err
			}

			cc.Splog.Info("Created PR #%d: %s", created.Number, created.HTMLURL)
			return nil
		},
	}

	return cmd
}

// promptPRDetails asks for a title and description. When the process is not
// attached to a terminal the branch's commit summary becomes the title and
// the body stays empty.
func promptPRDetails(branchName string) (string, string, error) {
	defaultTitle, err := git.GetCommitSummary(branchName)
	if err != nil {
		defaultTitle = branchName
	}

	title, err := tui.PromptText("PR Title", defaultTitle)
	if errors.Is(err, tui.ErrInteractiveDisabled) {
		return defaultTitle, "", nil
	}
	if err != nil {
		return "", "", err
	}
	if title == "" {
		title = defaultTitle
	}

	body, err := tui.PromptMultiline("PR Description")
	if err != nil {
		return "", "", err
	}

	return title, body, nil
}
