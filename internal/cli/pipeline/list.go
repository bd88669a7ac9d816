package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/cli"
)

type boardList []app.BoardInfo

func (l boardList) String() string {
	var b strings.Builder
	for _, info := range l {
		marker := "  "
		if info.Current {
			marker = "* "
		}
		b.WriteString(marker + info.Name)
		if info.Revision > 0 {
			fmt.Fprintf(&b, " (rev %d)", info.Revision)
		}
		if !info.UpdatedAt.IsZero() {
			b.WriteString(" updated " + info.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		if info.UpdatedBy != "" {
			b.WriteString(" by " + info.UpdatedBy)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the boards stored in the data directory",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	boards, err := cliInstance.App.ListBoards(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("LIST_ERROR", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}

	if quietMode && !jsonOutput {
		for _, info := range boards {
			fmt.Println(info.Name)
		}
		return nil
	}

	return formatter.Success(boardList(boards))
}
