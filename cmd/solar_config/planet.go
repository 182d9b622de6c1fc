package main

import (
	"io"

	"github.com/subspaceue/solarconfig/internal/report"
	"github.com/subspaceue/solarconfig/internal/scale"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// printPlanet writes the report and camera blocks of one planet.
func printPlanet(w io.Writer, p core.Planet, f core.ScaleFactors) error {
	planets := []core.Planet{p}
	out := report.FormatScaleHeader(f) +
		report.FormatReport(scale.ComputeAll(planets, f)) +
		report.FormatCameraDistances(scale.CameraDistances(planets, f.PlanetSizeScale))
	_, err := io.WriteString(w, out)
	return err
}
