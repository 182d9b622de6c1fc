package otel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// DefaultExportInterval is how often the periodic reader pushes to MetricWriter.
const DefaultExportInterval = 30 * time.Second

// Config holds OTel configuration
type Config struct {
	Enabled        bool
	ServiceName    string
	ExportInterval time.Duration
	MetricWriter   io.Writer        // File to write metrics to
	Reader         sdkmetric.Reader // Extra reader, e.g. a ManualReader
}

// Provider manages the OpenTelemetry meter provider and the generator's instruments
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	config        Config

	planetsComputed metric.Int64Counter
	runsCompleted   metric.Int64Counter
	runDuration     metric.Float64Histogram
}

// New creates a new OTel provider with the given configuration.
// If OTel is disabled, instruments come from a no-op meter.
func New(cfg Config) (*Provider, error) {
	p := &Provider{
		config: cfg,
	}

	var meter metric.Meter = noop.Meter{}
	if cfg.Enabled {
		mp, err := newMeterProvider(cfg)
		if err != nil {
			return nil, err
		}
		p.meterProvider = mp
		meter = mp.Meter(cfg.ServiceName)
	}

	var err error
	p.planetsComputed, err = meter.Int64Counter("solar.planets.computed",
		metric.WithDescription("Planets converted into engine units"))
	if err != nil {
		return nil, fmt.Errorf("failed to create planets counter: %w", err)
	}
	p.runsCompleted, err = meter.Int64Counter("solar.runs.completed",
		metric.WithDescription("Generation runs by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create runs counter: %w", err)
	}
	p.runDuration, err = meter.Float64Histogram("solar.run.duration",
		metric.WithDescription("Wall time of a generation run"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return p, nil
}

func newMeterProvider(cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []sdkmetric.Option{
		sdkmetric.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
		)),
	}

	if cfg.MetricWriter != nil {
		exporter, err := stdoutmetric.New(
			stdoutmetric.WithWriter(cfg.MetricWriter),
			stdoutmetric.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create metric exporter: %w", err)
		}
		interval := cfg.ExportInterval
		if interval <= 0 {
			interval = DefaultExportInterval
		}
		opts = append(opts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)),
		))
	}

	if cfg.Reader != nil {
		opts = append(opts, sdkmetric.WithReader(cfg.Reader))
	}

	if cfg.MetricWriter == nil && cfg.Reader == nil {
		return nil, errors.New("OTel enabled but no metric writer configured")
	}

	return sdkmetric.NewMeterProvider(opts...), nil
}

// Enabled reports whether measurements leave the process.
func (p *Provider) Enabled() bool {
	return p.meterProvider != nil
}

// RecordPlanets adds n computed planets.
func (p *Provider) RecordPlanets(ctx context.Context, n int) {
	p.planetsComputed.Add(ctx, int64(n))
}

// RecordRun records the outcome and duration of one generation run.
func (p *Provider) RecordRun(ctx context.Context, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	p.runsCompleted.Add(ctx, 1, attrs)
	p.runDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// Flush forces pending measurements out to every reader.
func (p *Provider) Flush(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.ForceFlush(ctx); err != nil {
		return fmt.Errorf("metric flush failed: %w", err)
	}
	return nil
}

// Shutdown exports what is pending and stops the meter provider.
// Should be called when the application exits.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("metric shutdown failed: %w", err)
	}
	return nil
}
