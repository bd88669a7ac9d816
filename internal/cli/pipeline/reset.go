package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadboard/internal/cli"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with the sample leads",
		Long: `Discard the stored board and reseed it with the sample leads.

Examples:
  leadboard board reset --force
`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation (required)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	force, _ := cmd.Flags().GetBool("force")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if !force {
		err := errors.New("reset discards every move on this board")
		if fmtErr := formatter.ErrorWithSuggestion("CONFIRMATION_REQUIRED", err.Error(),
			"Re-run with --force to reset"); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitUsage, err)
	}

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

	if err := cliInstance.App.LeadService.ResetBoard(); err != nil {
		if fmtErr := formatter.Error("RESET_ERROR", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}

	if quietMode {
		return nil
	}

	return formatter.Success(resetResult{
		Board: cliInstance.App.BoardKey(),
		Cards: cliInstance.App.LeadService.GetBoard().Len(),
	})
}

type resetResult struct {
	Board string `json:"board"`
	Cards int    `json:"cards"`
}

func (r resetResult) String() string {
	return fmt.Sprintf("Board '%s' reset to sample data (%d cards)", r.Board, r.Cards)
}
