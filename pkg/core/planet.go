// pkg/core/planet.go
package core

// Planet holds the real-world orbital and physical elements of a body.
// Catalog entries are literal data and are never mutated.
type Planet struct {
	Name                      string  `json:"name"`
	SemiMajorAxisAU           float64 `json:"semi_major_axis_au"`
	Eccentricity              float64 `json:"eccentricity"`
	OrbitalPeriodDays         float64 `json:"orbital_period_days"`
	InclinationDeg            float64 `json:"inclination_deg"`
	LongitudeAscendingNodeDeg float64 `json:"longitude_ascending_node_deg"`
	ArgumentPeriapsisDeg      float64 `json:"argument_periapsis_deg"`
	MeanAnomalyEpochDeg       float64 `json:"mean_anomaly_epoch_deg"`
	DiameterKm                float64 `json:"diameter_km"`
	MassEarthMasses           float64 `json:"mass_earth_masses"`
	RotationPeriodDays        float64 `json:"rotation_period_days"`
	HasMoons                  bool    `json:"has_moons"`
}

// DerivedPlanet is a planet converted into engine units.
// UU is the engine unit (centimeters).
type DerivedPlanet struct {
	Name               string  `json:"name"`
	DistanceAU         float64 `json:"distance_au"`
	DistanceKm         float64 `json:"distance_km"`
	DistanceUU         float64 `json:"distance_uu"`
	DistanceGameKm     float64 `json:"distance_game_km"`
	RadiusRealKm       float64 `json:"radius_real_km"`
	RadiusUU           float64 `json:"radius_uu"`
	RadiusGameKm       float64 `json:"radius_game_km"`
	OrbitRealDays      float64 `json:"orbit_real_days"`
	OrbitScaledSeconds float64 `json:"orbit_scaled_seconds"`
	OrbitScaledMinutes float64 `json:"orbit_scaled_minutes"`
	OrbitScaledHours   float64 `json:"orbit_scaled_hours"`
}

// CameraRange is the recommended viewing distance band around a planet.
type CameraRange struct {
	Name        string
	RadiusUU    float64
	MinDistance float64
	MaxDistance float64
}
