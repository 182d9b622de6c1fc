package report

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/subspaceue/solarconfig/internal/scale"
	"github.com/subspaceue/solarconfig/pkg/core"
)

// CSVHeader is the fixed column order of the Blueprint import table.
var CSVHeader = []string{
	"PlanetName",
	"SemiMajorAxisUU",
	"Eccentricity",
	"OrbitalPeriodDays",
	"InclinationDeg",
	"LongAscNodeDeg",
	"ArgPeriapsisDeg",
	"MeanAnomalyDeg",
	"DiameterKm",
	"MassEarthMasses",
	"RotationPeriodDays",
	"HasMoons",
}

// CSVRow renders one planet with the per-column precision of the import table.
func CSVRow(p core.Planet, f core.ScaleFactors) []string {
	return []string{
		p.Name,
		fixed(scale.DistanceUU(p, f.DistanceScale), 2),
		fixed(p.Eccentricity, 8),
		fixed(p.OrbitalPeriodDays, 3),
		fixed(p.InclinationDeg, 5),
		fixed(p.LongitudeAscendingNodeDeg, 5),
		fixed(p.ArgumentPeriapsisDeg, 5),
		fixed(p.MeanAnomalyEpochDeg, 5),
		fixed(p.DiameterKm, 1),
		fixed(p.MassEarthMasses, 3),
		fixed(p.RotationPeriodDays, 3),
		boolToken(p.HasMoons),
	}
}

// FormatCSV renders the header line followed by one row per planet.
func FormatCSV(planets []core.Planet, f core.ScaleFactors) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range planets {
		if err := w.Write(CSVRow(p, f)); err != nil {
			return "", fmt.Errorf("failed to write csv row for %s: %w", p.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return b.String(), nil
}

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func boolToken(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
