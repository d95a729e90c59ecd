package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	stackerrors "github.com/Endi1/stack/internal/errors"
	"github.com/Endi1/stack/internal/git"
	"github.com/Endi1/stack/internal/stack"
	"github.com/Endi1/stack/internal/tui"
)

// newLandCmd creates the land command
func newLandCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "land",
		Short: "Merge the current stack into trunk in dependency order",
		Long: `Squash-merge every unmerged branch between trunk and the current branch
into trunk, nearest-to-trunk first, deleting landed branches and their
parent links, then push trunk.`,
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
			if current == cc.Trunk {
				return stackerrors.ErrTrunkOperation
			}

			graph, err := stack.LoadGraph(ctx, cc.Store)
			if err != nil {
				return err
			}

			planner := stack.NewPlanner(graph, cc.Store, cc.Git, cc.Splog, cc.Trunk, cc.Remote)

			plan, err := planner.Plan(ctx, current)
			if err != nil {
				return err
			}
			if len(plan) == 0 {
				return stackerrors.ErrNothingToLand
			}

			cc.Splog.Info("Landing into %s: %s", cc.Trunk, strings.Join(plan, ", "))

			if !force {
				confirmed, err := tui.PromptConfirm("Proceed?")
				if err != nil && !errors.Is(err, tui.ErrInteractiveDisabled) {
					return err
				}
				if err == nil && !confirmed {
					cc.Splog.Info("Aborted.")
					return nil
				}
			}

			warnings, err := planner.Land(ctx, plan)
			for _, warning := range warnings {
				cc.Splog.Warn("%s", tui.ColorYellow(warning))
			}
			if err != nil {
				return err
			}

			cc.Splog.Info("Landed %d branch(es) into %s", len(plan), cc.Trunk)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Land without asking for confirmation")

	return cmd
}
