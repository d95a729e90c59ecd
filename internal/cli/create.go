package cli

import (
	"github.com/spf13/cobra"

	"github.com/Endi1/stack/internal/git"
)

// newCreateCmd creates the create command
func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"new"},
		Short:   "Create a new branch stacked on top of the current branch",
		Long: `Create a new branch off the current branch and record the current
branch as its stack parent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCmdContext()
			if err != nil {
				return err
			}

			name := args[0]
			parent, err := git.GetCurrentBranch()
			if err != nil {
				return err
			}

			cc.Splog.Info("Creating branch %s tracking parent %s", name, parent)

			ctx := cmd.Context()
			if err := git.CreateAndCheckoutBranch(ctx, name); err != nil {
				return err
			}
			return cc.Store.SetParent(ctx, name, parent)
		},
	}

	return cmd
}
