package influx

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subspaceue/solarconfig/internal/catalog"
	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/internal/scale"
	"github.com/subspaceue/solarconfig/pkg/core"
)

var testTime = time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC)

func testRun() *core.GenerationRun {
	f := core.DefaultScaleFactors()
	planets := catalog.Planets()
	return &core.GenerationRun{
		Document: core.ConfigDocument{Version: "1.0", ScaleFactors: f, Planets: planets},
		Derived:  scale.ComputeAll(planets, f),
		Cameras:  scale.CameraDistances(planets, f.PlanetSizeScale),
	}
}

func unreachable() config.InfluxConfig {
	return config.InfluxConfig{
		Enabled:  true,
		Protocol: "http",
		Host:     "127.0.0.1",
		Port:     "1",
		Org:      "subspace",
		Bucket:   "solar_config",
	}
}

func readBackup(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestRunPoints(t *testing.T) {
	points := RunPoints(testRun(), testTime)
	require.Len(t, points, 8)

	earth := points[2]
	assert.Equal(t, Measurement, earth.Name())

	tags := map[string]string{}
	for _, tag := range earth.TagList() {
		tags[tag.Key] = tag.Value
	}
	assert.Equal(t, "Earth", tags["planet"])
	assert.Equal(t, "1.0", tags["version"])

	fields := map[string]any{}
	for _, f := range earth.FieldList() {
		fields[f.Key] = f.Value
	}
	assert.InEpsilon(t, 149597887.1568, fields["distance_uu"], 1e-9)
	assert.Contains(t, fields, "camera_max_uu")
	assert.Equal(t, testTime, earth.Time())
}

func TestRunPoints_NoDerived(t *testing.T) {
	run := testRun()
	run.Derived = nil
	assert.Empty(t, RunPoints(run, testTime))
}

func TestConnect_Disabled(t *testing.T) {
	m := NewManager(zerolog.Nop(), "")
	err := m.Connect(context.Background(), config.InfluxConfig{})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestConnect_UnreachableUsesBackup(t *testing.T) {
	backup := filepath.Join(t.TempDir(), "influx_backup.lp.gz")
	m := NewManager(zerolog.Nop(), backup)

	require.NoError(t, m.Connect(context.Background(), unreachable()))
	assert.False(t, m.IsValid)
	require.NotNil(t, m.BackupWriter)

	require.NoError(t, m.RecordRun(testRun(), testTime))
	require.NoError(t, m.Close())

	lines := strings.Split(strings.TrimSpace(readBackup(t, backup)), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "planet_scale,planet=Mercury,version=1.0 "))
	assert.True(t, strings.HasSuffix(lines[0], " 1767873600000000000"))
}

func TestConnect_UnreachableWithoutBackupPath(t *testing.T) {
	m := NewManager(zerolog.Nop(), "")
	err := m.Connect(context.Background(), unreachable())
	require.Error(t, err)
	require.NoError(t, m.Close())
}

func TestWritePoint_NotInitialized(t *testing.T) {
	m := NewManager(zerolog.Nop(), "")
	err := m.WritePoint(RunPoints(testRun(), testTime)[0])
	assert.Error(t, err)
}
