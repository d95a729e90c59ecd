// Package cli wires the stack commands into a cobra command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stack",
		Short:   "Stack manages stacks of dependent git branches",
		Long: `Stack manages stacks of dependent git branches.

Each stacked branch records its parent in git config. Restack rebases
descendants after an ancestor changes, land merges the stack into trunk
in dependency order, and log draws the stack as a tree.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newRestackCmd())
	rootCmd.AddCommand(newAmendCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newLandCmd())

	return rootCmd
}
