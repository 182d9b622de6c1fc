package sqlitestorage

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subspaceue/solarconfig/internal/catalog"
	"github.com/subspaceue/solarconfig/internal/database"
	"github.com/subspaceue/solarconfig/internal/scale"
	"github.com/subspaceue/solarconfig/internal/storage"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// Compile-time interface check
var _ storage.Backend = (*Backend)(nil)

func TestSaveRun_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	b, err := New(Config{Path: path}, slog.Default(), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, b.Init())
	assert.Equal(t, path, b.Path())

	f := core.DefaultScaleFactors()
	planets := catalog.Planets()
	run := &core.GenerationRun{
		Document: core.ConfigDocument{
			Version:      "1.0",
			DateCreated:  "2026-01-08",
			ScaleFactors: f,
			Constants:    core.DefaultConstants(),
			Planets:      planets,
		},
		Derived: scale.ComputeAll(planets, f),
		Cameras: scale.CameraDistances(planets, f.PlanetSizeScale),
	}
	require.NoError(t, b.SaveRun(run))
	require.NoError(t, b.Close())

	db, err := database.GetSqliteDB(path)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int64
	require.NoError(t, db.Table("planet_records").Count(&count).Error)
	assert.Equal(t, int64(8), count)
}

func TestNew_InMemory(t *testing.T) {
	b, err := New(Config{}, slog.Default(), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, b.Init())
	assert.Equal(t, "", b.Path())
	require.NoError(t, b.Close())
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(Config{Path: filepath.Join(t.TempDir(), "missing", "dir", "runs.db")}, slog.Default(), zerolog.Nop())
	assert.Error(t, err)
}
