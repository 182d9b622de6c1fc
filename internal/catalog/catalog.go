// Package catalog holds the real-world orbital elements of the eight planets.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/subspaceue/solarconfig/pkg/core"
)

// ErrUnknownPlanet is returned when a name is not in the catalog
var ErrUnknownPlanet = errors.New("unknown planet")

// J2000 elements, Mercury through Neptune.
var planets = [...]core.Planet{
	{
		Name:                      "Mercury",
		SemiMajorAxisAU:           0.38709893,
		Eccentricity:              0.20563069,
		OrbitalPeriodDays:         87.969,
		InclinationDeg:            7.00487,
		LongitudeAscendingNodeDeg: 48.33167,
		ArgumentPeriapsisDeg:      77.45645,
		MeanAnomalyEpochDeg:       252.25084,
		DiameterKm:                4879.4,
		MassEarthMasses:           0.0553,
		RotationPeriodDays:        58.646,
		HasMoons:                  false,
	},
	{
		Name:                      "Venus",
		SemiMajorAxisAU:           0.72333199,
		Eccentricity:              0.00677323,
		OrbitalPeriodDays:         224.701,
		InclinationDeg:            3.39471,
		LongitudeAscendingNodeDeg: 76.68069,
		ArgumentPeriapsisDeg:      131.53298,
		MeanAnomalyEpochDeg:       181.97973,
		DiameterKm:                12103.6,
		MassEarthMasses:           0.815,
		RotationPeriodDays:        243.018,
		HasMoons:                  false,
	},
	{
		Name:                      "Earth",
		SemiMajorAxisAU:           1.00000011,
		Eccentricity:              0.01671022,
		OrbitalPeriodDays:         365.256,
		InclinationDeg:            0.00005,
		LongitudeAscendingNodeDeg: -11.26064,
		ArgumentPeriapsisDeg:      102.94719,
		MeanAnomalyEpochDeg:       100.46435,
		DiameterKm:                12742.0,
		MassEarthMasses:           1.0,
		RotationPeriodDays:        1.0,
		HasMoons:                  true,
	},
	{
		Name:                      "Mars",
		SemiMajorAxisAU:           1.52366231,
		Eccentricity:              0.09341233,
		OrbitalPeriodDays:         686.980,
		InclinationDeg:            1.85061,
		LongitudeAscendingNodeDeg: 49.57854,
		ArgumentPeriapsisDeg:      336.04084,
		MeanAnomalyEpochDeg:       355.45332,
		DiameterKm:                6779.0,
		MassEarthMasses:           0.107,
		RotationPeriodDays:        1.026,
		HasMoons:                  true,
	},
	{
		Name:                      "Jupiter",
		SemiMajorAxisAU:           5.20336301,
		Eccentricity:              0.04839266,
		OrbitalPeriodDays:         4332.589,
		InclinationDeg:            1.30530,
		LongitudeAscendingNodeDeg: 100.55615,
		ArgumentPeriapsisDeg:      14.75385,
		MeanAnomalyEpochDeg:       34.40438,
		DiameterKm:                139820.0,
		MassEarthMasses:           317.8,
		RotationPeriodDays:        0.414,
		HasMoons:                  true,
	},
	{
		Name:                      "Saturn",
		SemiMajorAxisAU:           9.53707032,
		Eccentricity:              0.05415060,
		OrbitalPeriodDays:         10759.22,
		InclinationDeg:            2.48446,
		LongitudeAscendingNodeDeg: 113.71504,
		ArgumentPeriapsisDeg:      92.43194,
		MeanAnomalyEpochDeg:       49.94432,
		DiameterKm:                116460.0,
		MassEarthMasses:           95.2,
		RotationPeriodDays:        0.444,
		HasMoons:                  true,
	},
	{
		Name:                      "Uranus",
		SemiMajorAxisAU:           19.19126393,
		Eccentricity:              0.04716771,
		OrbitalPeriodDays:         30688.5,
		InclinationDeg:            0.76986,
		LongitudeAscendingNodeDeg: 74.22988,
		ArgumentPeriapsisDeg:      170.96424,
		MeanAnomalyEpochDeg:       313.23218,
		DiameterKm:                50724.0,
		MassEarthMasses:           14.5,
		RotationPeriodDays:        0.718,
		HasMoons:                  true,
	},
	{
		Name:                      "Neptune",
		SemiMajorAxisAU:           30.06896348,
		Eccentricity:              0.00858587,
		OrbitalPeriodDays:         60182.0,
		InclinationDeg:            1.76917,
		LongitudeAscendingNodeDeg: 131.72169,
		ArgumentPeriapsisDeg:      44.97135,
		MeanAnomalyEpochDeg:       304.88003,
		DiameterKm:                49244.0,
		MassEarthMasses:           17.1,
		RotationPeriodDays:        0.671,
		HasMoons:                  true,
	},
}

// Planets returns a copy of the catalog in order of distance from the Sun.
func Planets() []core.Planet {
	out := make([]core.Planet, len(planets))
	copy(out, planets[:])
	return out
}

// ByName looks up a planet, ignoring case and surrounding whitespace.
func ByName(name string) (core.Planet, error) {
	want := strings.TrimSpace(name)
	for _, p := range planets {
		if strings.EqualFold(p.Name, want) {
			return p, nil
		}
	}
	return core.Planet{}, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
}
