package cli

import (
	"github.com/spf13/cobra"

	"github.com/Endi1/stack/internal/git"
	"github.com/Endi1/stack/internal/tui"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkout [name]",
		Aliases: []string{"switch", "co"},
		Short:   "Switch to another branch",
		Long: `Switch the working tree to the named branch, or pick one interactively
when no name is given. Git's own output is passed through so checkout
diagnostics appear exactly as git prints them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newCmdContext(); err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				branches, err := git.GetAllBranchNames()
				if err != nil {
					return err
				}
				name, err = tui.PromptSelect("Checkout branch:", branches)
				if err != nil {
					return err
				}
			}

			return git.CheckoutBranchInteractive(name)
		},
	}

	return cmd
}
