package database

import "errors"

// ErrSnapshotNotFound is returned when no snapshot is stored for a board key
var ErrSnapshotNotFound = errors.New("snapshot not found")
