package cli

import (
	"github.com/spf13/cobra"

	"github.com/Endi1/stack/internal/git"
	"github.com/Endi1/stack/internal/stack"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"l"},
		Short:   "Show the current stack as a tree",
		Long: `Show the stack containing the current branch as a tree, rooted at its
topmost ancestor, with the current branch marked and each branch's
latest commit summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCmdContext()
			if err != nil {
				return err
			}

			current, err := git.GetCurrentBranch()
			if err != nil {
				return err
			}

			graph, err := stack.LoadGraph(cmd.Context(), cc.Store)
			if err != nil {
				return err
			}

			renderer := stack.NewRenderer(graph, cc.Git)
			output, err := renderer.Render(current)
			if err != nil {
				return err
			}

			cc.Splog.Page(output)
			return nil
		},
	}

	return cmd
}
