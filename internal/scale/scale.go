// Package scale converts real-world planetary elements into engine units.
package scale

import "github.com/subspaceue/solarconfig/pkg/core"

// Camera viewing band, in multiples of the scaled planet radius.
const (
	CameraMinRadii = 3.0
	CameraMaxRadii = 5.0
)

// ComputeDerived converts one planet using the given scale factors.
// No rounding happens here; values are rounded only when displayed.
func ComputeDerived(p core.Planet, f core.ScaleFactors) core.DerivedPlanet {
	distanceKm := p.SemiMajorAxisAU * core.AUToKm
	distanceUU := distanceKm * core.CmPerKm * f.DistanceScale

	radiusKm := p.DiameterKm / 2.0
	radiusUU := RadiusUU(p, f.PlanetSizeScale)

	realSeconds := p.OrbitalPeriodDays * core.SecondsPerDay
	scaledSeconds := realSeconds / f.DefaultTimeMultiplier
	scaledMinutes := scaledSeconds / 60.0
	scaledHours := scaledMinutes / 60.0

	return core.DerivedPlanet{
		Name:               p.Name,
		DistanceAU:         p.SemiMajorAxisAU,
		DistanceKm:         distanceKm,
		DistanceUU:         distanceUU,
		DistanceGameKm:     distanceUU / core.CmPerKm,
		RadiusRealKm:       radiusKm,
		RadiusUU:           radiusUU,
		RadiusGameKm:       radiusUU / core.CmPerKm,
		OrbitRealDays:      p.OrbitalPeriodDays,
		OrbitScaledSeconds: scaledSeconds,
		OrbitScaledMinutes: scaledMinutes,
		OrbitScaledHours:   scaledHours,
	}
}

// ComputeAll converts every planet, preserving order.
func ComputeAll(planets []core.Planet, f core.ScaleFactors) []core.DerivedPlanet {
	out := make([]core.DerivedPlanet, 0, len(planets))
	for _, p := range planets {
		out = append(out, ComputeDerived(p, f))
	}
	return out
}

// DistanceUU returns the scaled semi-major axis in engine units.
func DistanceUU(p core.Planet, distanceScale float64) float64 {
	return p.SemiMajorAxisAU * core.AUToKm * core.CmPerKm * distanceScale
}

// RadiusUU returns the scaled planet radius in engine units.
func RadiusUU(p core.Planet, sizeScale float64) float64 {
	return (p.DiameterKm / 2.0) * core.CmPerKm * sizeScale
}

// CameraDistances returns the recommended viewing band for each planet.
func CameraDistances(planets []core.Planet, sizeScale float64) []core.CameraRange {
	out := make([]core.CameraRange, 0, len(planets))
	for _, p := range planets {
		r := RadiusUU(p, sizeScale)
		out = append(out, core.CameraRange{
			Name:        p.Name,
			RadiusUU:    r,
			MinDistance: r * CameraMinRadii,
			MaxDistance: r * CameraMaxRadii,
		})
	}
	return out
}
