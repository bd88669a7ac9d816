package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/cli/card"
	"github.com/thenoetrevino/leadboard/internal/cli/pipeline"
	"github.com/thenoetrevino/leadboard/internal/cli/styles"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/launcher"
)

var (
	boardName string
	storage   string
	dataDir   string
)

// NewRootCmd builds the leadboard command tree.
// Running it without a subcommand opens the interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leadboard",
		Short: "Leadboard - a terminal lead pipeline board",
		Long: `Leadboard is a terminal Kanban board for a sales lead pipeline.
Drag cards with the mouse or grab them with the keyboard to move leads
between New, Contacted, Qualified, Won and Lost.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cli.ConfigFromContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().StringVar(&boardName, "board", "", "Board to open (default from config)")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", "", "Storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.leadboard)")

	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(pipeline.BoardCmd())

	return rootCmd
}

// loadConfig resolves the config once and applies the root flag overrides
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.Exit(cli.ExitDataErr, err)
	}

	if boardName != "" {
		cfg.Board.Name = boardName
	}
	if storage != "" {
		cfg.Board.Storage = storage
	}
	if dataDir != "" {
		cfg.Board.DataDir = dataDir
	}
	cfg.Normalize()

	styles.Init(cfg.ColorScheme)
	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil {
		var cmdErr *cli.CommandError
		if !errors.As(err, &cmdErr) {
			// Usage errors from cobra have not been printed yet
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return cli.ExitCode(err)
}
