// Package generator runs one scale-config generation: compute, print the reports,
// then export and archive the run.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/internal/otel"
	"github.com/subspaceue/solarconfig/internal/report"
	"github.com/subspaceue/solarconfig/internal/scale"
	"github.com/subspaceue/solarconfig/internal/storage"
	"github.com/subspaceue/solarconfig/internal/storage/memory"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// Title is the banner printed at the start of every run.
const Title = "SOL TESTING GROUNDS - CONFIGURATION GENERATOR"

// ErrNoExporter is returned when Run is called without an export backend.
var ErrNoExporter = errors.New("no export backend configured")

// RunRecorder receives a finished run for time-series storage.
type RunRecorder interface {
	RecordRun(run *core.GenerationRun, ts time.Time) error
}

// Dependencies holds everything a Generator needs.
type Dependencies struct {
	Out       io.Writer
	Logger    *slog.Logger
	Planets   []core.Planet
	Factors   core.ScaleFactors
	Constants core.Constants
	Output    config.OutputConfig

	// Exporter writes the JSON document; its failure fails the run.
	Exporter storage.Backend
	// Archives are best-effort extra backends (sqlite, postgres).
	Archives []storage.Backend

	Influx  RunRecorder
	Metrics *otel.Provider
	Now     func() time.Time
}

// Generator prints the reports and persists one generation run.
type Generator struct {
	deps Dependencies
}

// New creates a Generator, filling in defaults for optional dependencies.
func New(deps Dependencies) *Generator {
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Output.Version == "" {
		deps.Output.Version = "1.0"
	}
	return &Generator{deps: deps}
}

// Run computes the derived values, prints every report section and persists the run.
func (g *Generator) Run(ctx context.Context) (run *core.GenerationRun, err error) {
	start := g.deps.Now()
	if g.deps.Metrics != nil {
		defer func() {
			g.deps.Metrics.RecordRun(ctx, g.deps.Now().Sub(start), err)
		}()
	}

	if g.deps.Exporter == nil {
		return nil, ErrNoExporter
	}
	if err := g.deps.Factors.Validate(); err != nil {
		return nil, err
	}

	run = g.compute(start)
	if g.deps.Metrics != nil {
		g.deps.Metrics.RecordPlanets(ctx, len(run.Derived))
	}
	g.deps.Logger.Debug("Computed derived values",
		"planets", len(run.Derived),
		"distanceScale", g.deps.Factors.DistanceScale,
		"planetSizeScale", g.deps.Factors.PlanetSizeScale,
		"timeMultiplier", g.deps.Factors.DefaultTimeMultiplier)

	w := &errWriter{w: g.deps.Out}
	w.print(report.Banner(Title))
	w.print(report.FormatScaleHeader(g.deps.Factors))
	w.print(report.FormatReport(run.Derived))

	csv, err := report.FormatCSV(run.Document.Planets, g.deps.Factors)
	if err != nil {
		return nil, fmt.Errorf("failed to format CSV: %w", err)
	}
	w.print(report.Banner("CSV FORMAT FOR BLUEPRINT IMPORT") + "\n")
	w.print(csv)

	w.print(report.Banner("RECOMMENDED CAMERA DISTANCES") + "\n")
	w.print(report.FormatCameraDistances(run.Cameras))
	if w.err != nil {
		return nil, fmt.Errorf("failed to write report: %w", w.err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := g.deps.Exporter.SaveRun(run); err != nil {
		g.deps.Logger.Error("Export failed", "error", err)
		return nil, err
	}
	if exported, ok := g.deps.Exporter.(storage.Exported); ok {
		g.deps.Logger.Info("Exported configuration", "path", exported.ExportedFilePath())
		w.print(fmt.Sprintf("\n✓ Exported configuration to %s\n", exported.ExportedFilePath()))
	}

	g.archive(run)
	g.recordInflux(run, start)

	w.print(report.Banner("Generation Complete!") + "\n")
	if w.err != nil {
		return nil, fmt.Errorf("failed to write report: %w", w.err)
	}
	return run, nil
}

func (g *Generator) compute(now time.Time) *core.GenerationRun {
	date := g.deps.Output.DateCreated
	if date == "" {
		date = now.Format(time.DateOnly)
	}

	doc := memory.BuildDocument(g.deps.Output.Version, date, g.deps.Planets, g.deps.Factors, g.deps.Constants)

	return &core.GenerationRun{
		Document: doc,
		Derived:  scale.ComputeAll(doc.Planets, g.deps.Factors),
		Cameras:  scale.CameraDistances(doc.Planets, g.deps.Factors.PlanetSizeScale),
	}
}

// archive saves to every secondary backend, logging failures.
func (g *Generator) archive(run *core.GenerationRun) {
	for _, b := range g.deps.Archives {
		if err := b.SaveRun(run); err != nil {
			g.deps.Logger.Warn("Failed to archive generation run", "backend", fmt.Sprintf("%T", b), "error", err)
		}
	}
}

func (g *Generator) recordInflux(run *core.GenerationRun, ts time.Time) {
	if g.deps.Influx == nil {
		return
	}
	if err := g.deps.Influx.RecordRun(run, ts); err != nil {
		g.deps.Logger.Warn("Failed to write InfluxDB points", "error", err)
	}
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) print(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
