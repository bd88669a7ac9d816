package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTemp(t *testing.T) string {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(dir))
	return filepath.Join(dir, LogFileName)
}

func TestInitWritesToLogFile(t *testing.T) {
	path := initTemp(t)

	Logger.Debug("card moved", "card_id", "3")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "card_id=3")
}

func TestInit_LevelFromEnv(t *testing.T) {
	t.Setenv("LEADBOARD_LOG_LEVEL", "warn")
	path := initTemp(t)

	Logger.Info("board loaded")
	Logger.Warn("board change dropped", "board", "pipeline")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "board loaded")
	assert.Contains(t, string(data), "board=pipeline")
}
