package generator

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subspaceue/solarconfig/internal/catalog"
	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/internal/otel"
	"github.com/subspaceue/solarconfig/internal/report"
	"github.com/subspaceue/solarconfig/internal/storage"
	"github.com/subspaceue/solarconfig/internal/storage/memory"
	"github.com/subspaceue/solarconfig/pkg/core"
)

var fixedNow = time.Date(2026, 1, 8, 9, 30, 0, 0, time.UTC)

type fakeBackend struct {
	saved []*core.GenerationRun
	err   error
}

func (f *fakeBackend) Init() error  { return nil }
func (f *fakeBackend) Close() error { return nil }
func (f *fakeBackend) SaveRun(run *core.GenerationRun) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, run)
	return nil
}

type fakeRecorder struct {
	runs int
	ts   time.Time
	err  error
}

func (f *fakeRecorder) RecordRun(run *core.GenerationRun, ts time.Time) error {
	f.runs++
	f.ts = ts
	return f.err
}

func newDeps(t *testing.T, out *bytes.Buffer) (Dependencies, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solar_system_config.json")
	return Dependencies{
		Out:       out,
		Logger:    slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Planets:   catalog.Planets(),
		Factors:   core.DefaultScaleFactors(),
		Constants: core.DefaultConstants(),
		Exporter:  memory.New(config.MemoryConfig{OutputPath: path}),
		Now:       func() time.Time { return fixedNow },
	}, path
}

func TestRun_PrintsSectionsInOrder(t *testing.T) {
	var out bytes.Buffer
	deps, path := newDeps(t, &out)

	_, err := New(deps).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	sections := []string{
		Title,
		"SOLAR SYSTEM SCALE CALCULATIONS",
		"Mercury:\n  Real Distance:",
		"CSV FORMAT FOR BLUEPRINT IMPORT",
		"PlanetName,SemiMajorAxisUU",
		"RECOMMENDED CAMERA DISTANCES",
		"  Min View Distance:",
		"✓ Exported configuration to " + path,
		"Generation Complete!",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		require.GreaterOrEqual(t, idx, 0, "missing %q", s)
		assert.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}

	assert.True(t, strings.HasPrefix(text, "\n"+report.Rule()+"\n"+Title+"\n"))
	assert.True(t, strings.HasSuffix(text, "Generation Complete!\n"+report.Rule()+"\n\n"))
}

func TestRun_ExportsDocument(t *testing.T) {
	var out bytes.Buffer
	deps, path := newDeps(t, &out)

	run, err := New(deps).Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, run)

	doc, err := memory.ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "2026-01-08", doc.DateCreated)
	assert.Equal(t, catalog.Planets(), doc.Planets)
	assert.Equal(t, core.DefaultScaleFactors(), doc.ScaleFactors)
	assert.Equal(t, core.DefaultConstants(), doc.Constants)

	assert.Len(t, run.Derived, 8)
	assert.Len(t, run.Cameras, 8)
}

func TestRun_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	deps, _ := newDeps(t, &first)
	_, err := New(deps).Run(context.Background())
	require.NoError(t, err)

	deps.Out = &second
	_, err = New(deps).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestRun_ConfiguredDate(t *testing.T) {
	var out bytes.Buffer
	deps, _ := newDeps(t, &out)
	deps.Output = config.OutputConfig{Version: "2.0", DateCreated: "2025-12-03"}

	run, err := New(deps).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0", run.Document.Version)
	assert.Equal(t, "2025-12-03", run.Document.DateCreated)
}

func TestRun_ExportFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	var out bytes.Buffer
	deps, _ := newDeps(t, &out)
	deps.Exporter = memory.New(config.MemoryConfig{OutputPath: filepath.Join(blocker, "out.json")})
	archive := &fakeBackend{}
	deps.Archives = []storage.Backend{archive}

	run, err := New(deps).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, run)
	assert.Empty(t, archive.saved)
	assert.NotContains(t, out.String(), "Generation Complete!")
}

func TestRun_ArchiveFailureIsNotFatal(t *testing.T) {
	var out bytes.Buffer
	deps, _ := newDeps(t, &out)
	broken := &fakeBackend{err: errors.New("disk full")}
	healthy := &fakeBackend{}
	deps.Archives = []storage.Backend{broken, healthy}

	run, err := New(deps).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, healthy.saved, 1)
	assert.Same(t, run, healthy.saved[0])
	assert.Contains(t, out.String(), "Generation Complete!")
}

func TestRun_RecordsInflux(t *testing.T) {
	var out bytes.Buffer
	deps, _ := newDeps(t, &out)
	rec := &fakeRecorder{err: errors.New("unreachable")}
	deps.Influx = rec

	_, err := New(deps).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.runs)
	assert.Equal(t, fixedNow, rec.ts)
}

func TestRun_WithMetrics(t *testing.T) {
	var out bytes.Buffer
	deps, _ := newDeps(t, &out)
	metrics, err := otel.New(otel.Config{})
	require.NoError(t, err)
	deps.Metrics = metrics

	_, err = New(deps).Run(context.Background())
	require.NoError(t, err)
}

func TestRun_NoExporter(t *testing.T) {
	var out bytes.Buffer
	deps, _ := newDeps(t, &out)
	deps.Exporter = nil

	_, err := New(deps).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoExporter)
	assert.Empty(t, out.String())
}

func TestRun_InvalidFactors(t *testing.T) {
	var out bytes.Buffer
	deps, _ := newDeps(t, &out)
	deps.Factors.DefaultTimeMultiplier = 0

	_, err := New(deps).Run(context.Background())
	assert.ErrorIs(t, err, core.ErrInvalidScale)
}

func TestRun_CanceledBeforeExport(t *testing.T) {
	var out bytes.Buffer
	deps, path := newDeps(t, &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(deps).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRun_WriteFailure(t *testing.T) {
	var out bytes.Buffer
	deps, path := newDeps(t, &out)
	deps.Out = failingWriter{}

	_, err := New(deps).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
	assert.NoFileExists(t, path)
}

func TestRun_DocumentMatchesExportBuilder(t *testing.T) {
	var out bytes.Buffer
	deps, _ := newDeps(t, &out)

	run, err := New(deps).Run(context.Background())
	require.NoError(t, err)

	want := memory.BuildDocument("1.0", "2026-01-08", deps.Planets, deps.Factors, deps.Constants)
	assert.Equal(t, want, run.Document)

	run.Document.Planets[0].Name = "Vulcan"
	assert.Equal(t, "Mercury", deps.Planets[0].Name)
}
