package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/cli/styles"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// boardView prints as styled columns and encodes as the snapshot shape
type boardView models.Board

func (b boardView) String() string {
	return styles.RenderBoard(models.Board(b))
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every column and its cards",
		Long: `Print the open board in pipeline order.

Examples:
  leadboard board show
  leadboard --board partners board show --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (card IDs only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	b := cliInstance.App.LeadService.GetBoard()

	if quietMode && !jsonOutput {
		for _, id := range b.CardIDs() {
			fmt.Println(id)
		}
		return nil
	}

	return formatter.Success(boardView(b))
}
