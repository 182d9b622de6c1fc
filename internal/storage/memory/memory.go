// internal/storage/memory/memory.go
package memory

import (
	"strings"
	"sync"

	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// Backend keeps the last generation run in memory and exports it to JSON
type Backend struct {
	cfg config.MemoryConfig

	lastRun        *core.GenerationRun
	lastExportPath string
	mu             sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// SaveRun exports the run's config document to the configured path.
func (b *Backend) SaveRun(run *core.GenerationRun) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := b.outputPath()
	if err := WriteDocument(run.Document, path); err != nil {
		return err
	}

	b.lastRun = run
	b.lastExportPath = path
	return nil
}

// ExportedFilePath returns the path of the last successful export.
func (b *Backend) ExportedFilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}

// LastRun returns the last saved run, or nil.
func (b *Backend) LastRun() *core.GenerationRun {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastRun
}

func (b *Backend) outputPath() string {
	path := b.cfg.OutputPath
	if path == "" {
		path = DefaultFileName
	}
	if b.cfg.CompressOutput && !strings.HasSuffix(path, ".gz") {
		path += ".gz"
	}
	return path
}
