package cli

import (
	"github.com/spf13/cobra"

	"github.com/Endi1/stack/internal/git"
)

// newAmendCmd creates the amend command
func newAmendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amend",
		Short: "Amend the last commit and restack descendants",
		Long: `Amend the last commit on the current branch without editing its message,
then restack all descendants so they incorporate the amended commit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCmdContext()
			if err != nil {
				return err
			}

			cc.Splog.Info("Amending...")
			if err := git.AmendNoEdit(); err != nil {
				return err
			}

			return restackCurrent(cmd.Context(), cc)
		},
	}

	return cmd
}
