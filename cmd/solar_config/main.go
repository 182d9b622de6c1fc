package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/subspaceue/solarconfig/internal/catalog"
	"github.com/subspaceue/solarconfig/internal/config"
	"github.com/subspaceue/solarconfig/internal/generator"
	"github.com/subspaceue/solarconfig/internal/influx"
	"github.com/subspaceue/solarconfig/internal/logging"
	intOtel "github.com/subspaceue/solarconfig/internal/otel"
	"github.com/subspaceue/solarconfig/internal/storage"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// module defs - BuildDate can be set at build time via ldflags
var (
	CurrentVersion string = "0.0.1"
	BuildDate      string = "unknown"

	AppName string = "solar_config"
)

// app carries the process-wide services built from configuration.
type app struct {
	stdout io.Writer
	stderr io.Writer
	start  time.Time

	slogManager *logging.SlogManager
	logger      *slog.Logger
	zlog        zerolog.Logger
	logOut      io.Writer
	closers     []io.Closer
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configDir   string
		showVersion bool
	)
	fs.StringVar(&configDir, "config-dir", ".", "Directory containing "+config.FileName)
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [generate|show|planet NAME]\n", AppName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "%s %s (built %s)\n", AppName, CurrentVersion, BuildDate)
		return 0
	}

	a := &app{stdout: stdout, stderr: stderr, start: time.Now()}
	configErr := config.Load(configDir)
	a.setupLogging()
	defer a.close()

	if configErr != nil {
		a.logger.Warn("Using default configuration", "error", configErr)
	}
	a.logger.Info("Starting up", "version", CurrentVersion, "build", BuildDate, "configDir", configDir)

	command := "generate"
	if fs.NArg() > 0 {
		command = strings.ToLower(fs.Arg(0))
	}

	var err error
	switch command {
	case "generate":
		err = a.generate(ctx)
	case "show":
		err = a.show()
	case "planet":
		if fs.NArg() < 2 {
			fs.Usage()
			return 2
		}
		err = a.planet(fs.Arg(1))
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		fs.Usage()
		return 2
	}

	if err != nil {
		a.logger.Error("Command failed", "command", command, "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging sends logs to a session file under logsDir, falling back to stderr,
// and to Graylog when enabled.
func (a *app) setupLogging() {
	level := config.GetString("logLevel")
	a.slogManager = logging.NewSlogManager()

	var logOut io.Writer = a.stderr
	var fileErr error
	if dir := config.GetString("logsDir"); dir != "" {
		file, err := logging.OpenLogFile(logging.LogFilePath(dir, AppName, a.start))
		if err == nil {
			logOut = file
			a.closers = append(a.closers, file)
		}
		fileErr = err
	}

	var sinks []io.Writer
	var gelfErr error
	if gl := config.GetGraylogConfig(); gl.Enabled {
		w, err := logging.NewGelfWriter(gl.Address)
		if err == nil {
			sinks = append(sinks, w)
			a.closers = append(a.closers, w)
		}
		gelfErr = err
	}

	a.logOut = logOut
	a.slogManager.Setup(logOut, level, sinks...)
	a.logger = a.slogManager.Logger()
	a.zlog = logging.NewZerolog(logOut, level, "storage")

	if fileErr != nil {
		a.logger.Warn("Failed to open log file, logging to stderr", "error", fileErr)
	}
	if gelfErr != nil {
		a.logger.Warn("Graylog sink disabled", "error", gelfErr)
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// generate runs the full report and export.
func (a *app) generate(ctx context.Context) error {
	factors, err := config.GetScaleFactors()
	if err != nil {
		return err
	}

	storageCfg := config.GetStorageConfig()
	exporter, archives, err := a.createStorageBackends(storageCfg)
	if err != nil {
		return err
	}
	var initialized []storage.Backend
	defer func() {
		for _, b := range initialized {
			if err := b.Close(); err != nil {
				a.logger.Warn("Failed to close storage backend", "error", err)
			}
		}
	}()
	for _, b := range append([]storage.Backend{exporter}, archives...) {
		if err := b.Init(); err != nil {
			_ = b.Close()
			return fmt.Errorf("failed to initialize storage backend: %w", err)
		}
		initialized = append(initialized, b)
	}

	otelCfg := config.GetOTelConfig()
	metrics, err := intOtel.New(intOtel.Config{
		Enabled:      otelCfg.Enabled,
		ServiceName:  otelCfg.ServiceName,
		MetricWriter: a.logOut,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := metrics.Shutdown(ctx); err != nil {
			a.logger.Warn("Failed to flush metrics", "error", err)
		}
	}()

	deps := generator.Dependencies{
		Out:       a.stdout,
		Logger:    a.logger,
		Planets:   catalog.Planets(),
		Factors:   factors,
		Constants: core.DefaultConstants(),
		Output:    config.GetOutputConfig(a.start),
		Exporter:  exporter,
		Archives:  archives,
		Metrics:   metrics,
	}

	if ic := config.GetInfluxConfig(); ic.Enabled {
		backupPath := filepath.Join(config.GetString("logsDir"),
			fmt.Sprintf("%s.influx.%s.lp.gz", AppName, a.start.Format("20060102_150405")))
		manager := influx.NewManager(a.zlog, backupPath)
		if err := manager.Connect(ctx, ic); err != nil {
			a.logger.Warn("InfluxDB disabled", "error", err)
		} else {
			deps.Influx = manager
			defer manager.Close()
		}
	}

	_, err = generator.New(deps).Run(ctx)
	return err
}

// show prints the most recently archived document.
func (a *app) show() error {
	archive, err := a.openArchive(config.GetStorageConfig())
	if err != nil {
		return err
	}
	if err := archive.Init(); err != nil {
		return err
	}
	defer archive.Close()

	doc, err := archive.LatestDocument()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// planet prints the derived values of a single catalog entry.
func (a *app) planet(name string) error {
	p, err := catalog.ByName(name)
	if err != nil {
		return err
	}
	factors, err := config.GetScaleFactors()
	if err != nil {
		return err
	}
	return printPlanet(a.stdout, p, factors)
}
