package main

import (
	"fmt"

	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/internal/storage"
	"github.com/subspaceue/solarconfig/internal/storage/memory"
	pgstorage "github.com/subspaceue/solarconfig/internal/storage/postgres"
	sqlitestorage "github.com/subspaceue/solarconfig/internal/storage/sqlite"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// archiveBackend is a storage backend that can read back what it archived.
type archiveBackend interface {
	storage.Backend
	LatestDocument() (core.ConfigDocument, error)
}

// createStorageBackends returns the JSON exporter, which always runs, and the
// archive selected by storage.type.
func (a *app) createStorageBackends(storageCfg config.StorageConfig) (storage.Backend, []storage.Backend, error) {
	exporter := memory.New(storageCfg.Memory)
	a.logger.Info("Memory storage backend initialized")

	switch storageCfg.Type {
	case "", "memory":
		return exporter, nil, nil
	case "sqlite", "postgres":
		archive, err := a.openArchive(storageCfg)
		if err != nil {
			return nil, nil, err
		}
		return exporter, []storage.Backend{archive}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", storageCfg.Type)
	}
}

// openArchive opens the database archive selected by storage.type.
func (a *app) openArchive(storageCfg config.StorageConfig) (archiveBackend, error) {
	switch storageCfg.Type {
	case "postgres":
		backend, err := pgstorage.New(config.GetDBConfig(), storageCfg.SQLite.Path, a.logger, a.zlog)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres backend: %w", err)
		}
		a.logger.Info("Postgres storage backend initialized", "local", backend.IsLocal())
		return backend, nil

	case "sqlite":
		backend, err := sqlitestorage.New(sqlitestorage.Config{Path: storageCfg.SQLite.Path}, a.logger, a.zlog)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite backend: %w", err)
		}
		a.logger.Info("SQLite storage backend initialized", "path", storageCfg.SQLite.Path)
		return backend, nil

	default:
		return nil, fmt.Errorf("storage type %q keeps no archive", storageCfg.Type)
	}
}
