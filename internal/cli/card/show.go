package card

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/cli/styles"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// View is a card with its location, as printed by show
type View struct {
	Card   models.Card     `json:"card"`
	Column models.ColumnID `json:"column"`
	Index  int             `json:"index"`
}

// GetID lets quiet mode print just the card id
func (v View) GetID() string {
	return v.Card.ID
}

func (v View) String() string {
	return styles.RenderCardDetail(v.Card, v.Column)
}

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card and the column holding it",
		Long: `Show every field of a card plus its column and position.

Examples:
  leadboard card show 3
  leadboard card show 3 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

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

	loc, err := cliInstance.App.LeadService.GetCard(args[0])
	if err != nil {
		code := cli.ExitError
		if errors.Is(err, models.ErrCardNotFound) {
			code = cli.ExitNotFound
			err = fmt.Errorf("card %s not found: %w", args[0], models.ErrCardNotFound)
		}
		if fmtErr := formatter.Error("CARD_NOT_FOUND", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(code, err)
	}

	return formatter.Success(View{Card: loc.Card, Column: loc.Column, Index: loc.Index})
}
