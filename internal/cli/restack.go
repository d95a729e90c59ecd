package cli

import (
	"github.com/spf13/cobra"
)

// newRestackCmd creates the restack command
func newRestackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restack",
		Short: "Rebase all descendants of the current branch onto their parents",
		Long: `Rebase every descendant of the current branch onto its recorded parent,
depth first, so the whole stack reflects the current branch's history.
If a rebase conflicts, resolve it with git directly; branches already
rebased are left in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCmdContext()
			if err != nil {
				return err
			}
			return restackCurrent(cmd.Context(), cc)
		},
	}

	return cmd
}
