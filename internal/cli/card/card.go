// Package card implements the card subcommands: show and move
package card

import (
	"github.com/spf13/cobra"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Inspect and move lead cards",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
