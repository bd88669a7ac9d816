package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LogFileName is the file created inside the log directory
const LogFileName = "leadboard.log"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init points slog and the std log package at <dir>/leadboard.log.
// The TUI owns stdout, so nothing is ever logged to the terminal.
// LEADBOARD_LOG_LEVEL (debug, info, warn, error) sets the level; debug by default.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	Logger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
	slog.SetDefault(Logger)

	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LEADBOARD_LOG_LEVEL")) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
