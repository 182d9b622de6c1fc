// Package gormstorage implements the storage.Backend interface on top of any GORM dialect.
// The sqlite and postgres packages wrap it and only differ in how the connection is opened.
package gormstorage

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/subspaceue/solarconfig/internal/database"
	"github.com/subspaceue/solarconfig/internal/model"
	"github.com/subspaceue/solarconfig/internal/model/convert"
	"github.com/subspaceue/solarconfig/pkg/core"
	"gorm.io/gorm"
)

// ErrNotInitialized is returned when the backend is used before Init or after Close.
var ErrNotInitialized = errors.New("gorm backend not initialized")

// Dependencies holds all dependencies for the GORM storage backend.
type Dependencies struct {
	DB     *gorm.DB
	Logger *slog.Logger
}

// Backend archives generation runs in a relational database.
type Backend struct {
	deps    Dependencies
	mu      sync.Mutex
	dbReady bool
	lastID  uint
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Backend{deps: deps}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.deps.DB == nil {
		return ErrNotInitialized
	}
	if err := database.Migrate(b.deps.DB); err != nil {
		return err
	}
	b.dbReady = true
	b.deps.Logger.Debug("GORM backend ready", "dialect", b.deps.DB.Dialector.Name())
	return nil
}

// Close marks the backend unusable. The connection is owned by the caller.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dbReady = false
	return nil
}

// SaveRun stores the run and all of its planet records in one transaction.
func (b *Backend) SaveRun(run *core.GenerationRun) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.dbReady {
		return ErrNotInitialized
	}

	rec, err := convert.CoreToGenerationRun(*run)
	if err != nil {
		return err
	}

	err = b.deps.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save generation run: %w", err)
	}

	b.lastID = rec.ID
	b.deps.Logger.Info("Archived generation run",
		"id", rec.ID,
		"planets", rec.PlanetCount,
		"dialect", b.deps.DB.Dialector.Name())
	return nil
}

// LastRunID returns the primary key of the last run saved by this backend.
func (b *Backend) LastRunID() uint {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastID
}

// LoadRun returns a stored run with its planets in catalog order.
func (b *Backend) LoadRun(id uint) (model.GenerationRun, error) {
	var run model.GenerationRun
	err := b.deps.DB.
		Preload("Planets", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&run, id).Error
	if err != nil {
		return run, fmt.Errorf("failed to load generation run %d: %w", id, err)
	}
	return run, nil
}

// LatestDocument rebuilds the config document of the most recent run.
func (b *Backend) LatestDocument() (core.ConfigDocument, error) {
	var latest model.GenerationRun
	if err := b.deps.DB.Order("id DESC").First(&latest).Error; err != nil {
		return core.ConfigDocument{}, fmt.Errorf("failed to find latest generation run: %w", err)
	}
	run, err := b.LoadRun(latest.ID)
	if err != nil {
		return core.ConfigDocument{}, err
	}
	return convert.GenerationRunToDocument(run)
}

// CountRuns returns how many runs are archived.
func (b *Backend) CountRuns() (int64, error) {
	var n int64
	err := b.deps.DB.Model(&model.GenerationRun{}).Count(&n).Error
	return n, err
}
