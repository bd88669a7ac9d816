package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends for the board snapshot
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// DefaultBoardName is the board key used when none is configured
const DefaultBoardName = "pipeline"

// Config represents the application configuration
type Config struct {
	Board       BoardConfig `yaml:"board"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// BoardConfig selects which board is opened and where it is stored
type BoardConfig struct {
	Name    string `yaml:"name"`
	Storage string `yaml:"storage"`  // sqlite, file or memory
	DataDir string `yaml:"data_dir"` // defaults to ~/.leadboard
}

// Default returns a config with every value filled from defaults
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from LEADBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("LEADBOARD_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Debug("theme file not readable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadDotEnv loads KEY=VALUE pairs from .env files without overriding
// variables already present in the environment
func loadDotEnv(paths ...string) {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to load env file", "path", path, "error", err)
		}
	}
}

// applyEnvOverrides lets LEADBOARD_* variables override the file config
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LEADBOARD_BOARD"); v != "" {
		c.Board.Name = v
	}
	if v := os.Getenv("LEADBOARD_STORAGE"); v != "" {
		c.Board.Storage = v
	}
	if v := os.Getenv("LEADBOARD_DATA_DIR"); v != "" {
		c.Board.DataDir = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	loadDotEnv(".env")
	if dataDir, err := DefaultDataDir(); err == nil {
		loadDotEnv(filepath.Join(dataDir, ".env"))
	}

	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			config = &Config{}
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(config)
	config.applyEnvOverrides()
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "leadboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "leadboard", "config.yaml"), nil
}

// DefaultDataDir returns ~/.leadboard
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".leadboard"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Board.Name == "" {
		c.Board.Name = DefaultBoardName
	}
	switch c.Board.Storage {
	case StorageSQLite, StorageFile, StorageMemory:
	default:
		if c.Board.Storage != "" {
			slog.Warn("unknown storage backend, using sqlite", "storage", c.Board.Storage)
		}
		c.Board.Storage = StorageSQLite
	}
	if c.Board.DataDir == "" {
		if dir, err := DefaultDataDir(); err == nil {
			c.Board.DataDir = dir
		} else {
			c.Board.DataDir = ".leadboard"
		}
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// Normalize re-applies defaults after fields were overridden in code
func (c *Config) Normalize() {
	c.applyDefaults()
}

// SocketPath returns the sync daemon socket inside the data directory
func (c *Config) SocketPath() string {
	return filepath.Join(c.Board.DataDir, "leadboard.sock")
}

// DatabasePath returns the SQLite database file inside the data directory
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Board.DataDir, "leadboard.db")
}

// SnapshotPath returns the JSON snapshot file used by the file backend
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Board.DataDir, "boards", c.Board.Name+".json")
}

// LogDir returns the log directory inside the data directory
func (c *Config) LogDir() string {
	return filepath.Join(c.Board.DataDir, "logs")
}
