// Package pipeline implements the board subcommands: show, list and reset
package pipeline

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect and manage pipeline boards",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}
