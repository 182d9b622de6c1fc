// Package sqlitestorage archives generation runs in a SQLite file.
// It wraps the GORM backend; the only SQLite-specific concern is opening the file.
package sqlitestorage

import (
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/subspaceue/solarconfig/internal/database"
	gormstorage "github.com/subspaceue/solarconfig/internal/storage/gorm"
)

// Config holds configuration for the SQLite storage backend.
type Config struct {
	Path string // empty means in-memory
}

// Backend wraps the GORM backend for SQLite-specific behavior.
type Backend struct {
	*gormstorage.Backend
	manager *database.Manager
}

// New opens the SQLite database and creates the backend.
func New(cfg Config, log *slog.Logger, dbLog zerolog.Logger) (*Backend, error) {
	manager := database.NewManager(dbLog, cfg.Path)
	if err := manager.ConnectSQLite(); err != nil {
		return nil, fmt.Errorf("failed to open SQLite DB: %w", err)
	}

	return &Backend{
		Backend: gormstorage.New(gormstorage.Dependencies{DB: manager.DB, Logger: log}),
		manager: manager,
	}, nil
}

// Path returns the database file path.
func (b *Backend) Path() string {
	return b.manager.SqliteFilePath
}

// Close closes the embedded GORM backend and the connection.
func (b *Backend) Close() error {
	if err := b.Backend.Close(); err != nil {
		return err
	}
	return b.manager.Close()
}
