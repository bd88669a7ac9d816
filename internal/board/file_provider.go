package board

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileProvider stores the snapshot as a JSON file on disk
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider for the given file path.
// The parent directory is created on first write.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path returns the snapshot file location
func (p *FileProvider) Path() string {
	return p.path
}

// Read implements Provider
func (p *FileProvider) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return data, true, nil
}

// Write implements Provider.
// The file is replaced atomically via a temp file in the same directory.
func (p *FileProvider) Write(data []byte) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, p.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Delete implements Deleter
func (p *FileProvider) Delete() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove snapshot file: %w", err)
	}
	return nil
}
