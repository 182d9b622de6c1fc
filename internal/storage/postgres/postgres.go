// Package postgres archives generation runs in PostgreSQL, falling back to a local
// SQLite file when the server cannot be reached.
package postgres

import (
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/internal/database"
	gormstorage "github.com/subspaceue/solarconfig/internal/storage/gorm"
)

// Backend wraps the GORM backend with a Postgres connection.
type Backend struct {
	*gormstorage.Backend
	manager *database.Manager
}

// New connects to Postgres and creates the backend.
// fallbackPath is the SQLite file used when Postgres is unavailable.
func New(cfg config.DBConfig, fallbackPath string, log *slog.Logger, dbLog zerolog.Logger) (*Backend, error) {
	manager := database.NewManager(dbLog, fallbackPath)
	if err := manager.Connect(cfg); err != nil {
		return nil, err
	}
	if manager.ShouldSaveLocal {
		log.Warn("Postgres unavailable, archiving to SQLite", "path", fallbackPath)
	}

	return &Backend{
		Backend: gormstorage.New(gormstorage.Dependencies{DB: manager.DB, Logger: log}),
		manager: manager,
	}, nil
}

// IsLocal reports whether the backend fell back to SQLite.
func (b *Backend) IsLocal() bool {
	return b.manager.ShouldSaveLocal
}

// Close closes the embedded GORM backend and the connection.
func (b *Backend) Close() error {
	if err := b.Backend.Close(); err != nil {
		return err
	}
	return b.manager.Close()
}
