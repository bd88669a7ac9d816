package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/database"
)

// BoardInfo describes one stored board
type BoardInfo struct {
	Name      string    `json:"name"`
	Revision  int64     `json:"revision,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Current   bool      `json:"current"`
}

// ListBoards returns every board the configured backend holds, sorted by name
func (a *App) ListBoards(ctx context.Context) ([]BoardInfo, error) {
	var boards []BoardInfo

	switch {
	case a.db != nil:
		snaps, err := database.NewSnapshotRepository(a.db).ListBoards(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range snaps {
			boards = append(boards, BoardInfo{
				Name:      s.BoardKey,
				Revision:  s.Revision,
				UpdatedAt: s.UpdatedAt,
				UpdatedBy: s.UpdatedBy,
			})
		}

	case a.Config.Board.Storage == config.StorageFile:
		dir := filepath.Dir(a.Config.SnapshotPath())
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read board directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
				continue
			}
			info := BoardInfo{Name: strings.TrimSuffix(e.Name(), ".json")}
			if fi, err := e.Info(); err == nil {
				info.UpdatedAt = fi.ModTime()
			}
			boards = append(boards, info)
		}

	default:
		boards = append(boards, BoardInfo{Name: a.BoardKey()})
	}

	for i := range boards {
		boards[i].Current = boards[i].Name == a.BoardKey()
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].Name < boards[j].Name })
	return boards, nil
}
