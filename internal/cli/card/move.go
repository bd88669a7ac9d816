package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/services/lead"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <card-id> <next|prev|column>",
		Short: "Move a card to another column",
		Long: `Move a card to another column by direction or column name.

Examples:
  # Move to next column
  leadboard card move 3 next

  # Move to previous column
  leadboard card move 3 prev

  # Move to specific column by name (case-insensitive)
  leadboard card move 3 won
  leadboard card move 3 Qualified --index 0

  # JSON output for agents
  leadboard card move 3 next --json

  # Quiet mode for bash capture
  leadboard card move 3 next --quiet
`,
		RunE: runMove,
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().Int("index", 0, "Position in the destination column (default: append)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	cardID, rawTarget := args[0], args[1]

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
	fail := func(code int, errCode string, err error, suggestion string) error {
		if fmtErr := formatter.ErrorWithSuggestion(errCode, err.Error(), suggestion); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(code, err)
	}

	var index *int
	if cmd.Flags().Changed("index") {
		v, _ := cmd.Flags().GetInt("index")
		index = &v
	}

	target, err := cli.ParseMoveTarget(rawTarget)
	if err != nil {
		return fail(cli.ExitNotFound, "COLUMN_NOT_FOUND",
			fmt.Errorf("column '%s' not found", rawTarget),
			"Available columns: "+cli.FormatAvailableColumns())
	}
	if index != nil && target.Kind != cli.TargetColumn {
		return fail(cli.ExitUsage, "INVALID_FLAGS",
			errors.New("--index can only be used with a column name"), "")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	svc := cliInstance.App.LeadService

	var result *lead.MoveResult
	switch target.Kind {
	case cli.TargetNext:
		result, err = svc.MoveCardToNextColumn(cardID)
	case cli.TargetPrev:
		result, err = svc.MoveCardToPrevColumn(cardID)
	default:
		result, err = svc.MoveCard(lead.MoveCardRequest{CardID: cardID, To: target.Column, Index: index})
	}

	if err != nil {
		switch {
		case errors.Is(err, models.ErrCardNotFound):
			return fail(cli.ExitNotFound, "CARD_NOT_FOUND", fmt.Errorf("card %s not found", cardID), "")
		case errors.Is(err, models.ErrAlreadyLastColumn):
			return fail(cli.ExitValidation, "NO_NEXT_COLUMN", err, "")
		case errors.Is(err, models.ErrAlreadyFirstColumn):
			return fail(cli.ExitValidation, "NO_PREV_COLUMN", err, "")
		case errors.Is(err, lead.ErrInvalidPosition):
			return fail(cli.ExitValidation, "INVALID_POSITION", err, "")
		case board.IsPersistError(err) && result != nil:
			return fail(cli.ExitError, "PERSIST_FAILED",
				fmt.Errorf("card %s moved to '%s' but the board could not be saved: %w", cardID, result.To, err),
				"Check that the data directory is writable")
		default:
			return fail(cli.ExitError, "MOVE_ERROR", err, "")
		}
	}

	// Output success
	if quietMode {
		fmt.Println(cardID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":     true,
			"card_id":     result.CardID,
			"from_column": result.From,
			"to_column":   result.To,
			"index":       result.Index,
			"moved":       result.Moved,
		})
	}

	// Human-readable output
	if !result.Moved {
		fmt.Printf("Card %s is already in '%s'\n", cardID, result.To.Title())
	} else {
		fmt.Printf("Card %s moved to '%s'\n", cardID, result.To.Title())
	}
	return nil
}
