package database

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/internal/model"
)

func TestGetSqliteDB_InMemory(t *testing.T) {
	db, err := GetSqliteDB("")
	require.NoError(t, err)
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&model.GenerationRun{}))
	assert.True(t, db.Migrator().HasTable(&model.PlanetRecord{}))
}

func TestGetSqliteDB_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	db, err := GetSqliteDB(path)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))
	assert.FileExists(t, path)
}

func TestManager_ConnectSQLiteAndSetup(t *testing.T) {
	m := NewManager(zerolog.Nop(), filepath.Join(t.TempDir(), "runs.db"))

	require.NoError(t, m.ConnectSQLite())
	assert.True(t, m.IsValid)
	assert.True(t, m.ShouldSaveLocal)

	require.NoError(t, m.Setup())
	assert.True(t, m.DB.Migrator().HasTable("generation_runs"))

	require.NoError(t, m.Close())
	assert.False(t, m.IsValid)
	require.NoError(t, m.Close())
}

func TestManager_ConnectFallsBackToSQLite(t *testing.T) {
	m := NewManager(zerolog.Nop(), "")

	// nothing listens on port 1
	err := m.Connect(config.DBConfig{
		Host:     "127.0.0.1",
		Port:     "1",
		Username: "postgres",
		Password: "postgres",
		Database: "solar",
	})
	require.NoError(t, err)
	defer m.Close()

	assert.True(t, m.IsValid)
	assert.True(t, m.ShouldSaveLocal)
	assert.Equal(t, "sqlite", m.DB.Dialector.Name())
}

func TestManager_SetupWithoutConnect(t *testing.T) {
	m := NewManager(zerolog.Nop(), "")
	assert.Error(t, m.Setup())
}
