// internal/storage/storage.go
package storage

import "github.com/subspaceue/solarconfig/pkg/core"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// SaveRun persists one generation run.
	SaveRun(run *core.GenerationRun) error
}

// Exported is an optional interface for backends that produce a file.
type Exported interface {
	ExportedFilePath() string
}
