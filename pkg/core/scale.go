// pkg/core/scale.go
package core

import (
	"errors"
	"fmt"
	"math"
)

// Unit conversion constants.
const (
	AUToKm        = 149597870.7
	CmPerKm       = 100000.0
	SunDiameterKm = 1392700.0
	SecondsPerDay = 86400.0
)

// Default scale factors.
const (
	DefaultDistanceScale   = 0.00001
	DefaultPlanetSizeScale = 50.0
	DefaultTimeMultiplier  = 10000.0
)

// ErrInvalidScale is returned when a scale factor is zero, negative or not finite.
var ErrInvalidScale = errors.New("invalid scale factor")

// ScaleFactors convert real-world quantities into their in-engine representation.
type ScaleFactors struct {
	DistanceScale         float64 `json:"distance_scale"`
	PlanetSizeScale       float64 `json:"planet_size_scale"`
	DefaultTimeMultiplier float64 `json:"default_time_multiplier"`
}

// DefaultScaleFactors returns the 1:100,000 distance, 50x size, 10000x time setup.
func DefaultScaleFactors() ScaleFactors {
	return ScaleFactors{
		DistanceScale:         DefaultDistanceScale,
		PlanetSizeScale:       DefaultPlanetSizeScale,
		DefaultTimeMultiplier: DefaultTimeMultiplier,
	}
}

// Validate checks that every factor is a positive finite number.
func (s ScaleFactors) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"distance_scale", s.DistanceScale},
		{"planet_size_scale", s.PlanetSizeScale},
		{"default_time_multiplier", s.DefaultTimeMultiplier},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidScale, c.name, c.value)
		}
	}
	return nil
}

// Constants are the conversion constants written alongside an export.
type Constants struct {
	AUToKm        float64 `json:"au_to_km"`
	CmPerKm       float64 `json:"cm_per_km"`
	SunDiameterKm float64 `json:"sun_diameter_km"`
}

// DefaultConstants returns the constants used by every calculation.
func DefaultConstants() Constants {
	return Constants{
		AUToKm:        AUToKm,
		CmPerKm:       CmPerKm,
		SunDiameterKm: SunDiameterKm,
	}
}

// ConfigDocument is the root of the exported solar system configuration.
type ConfigDocument struct {
	Version      string       `json:"version"`
	DateCreated  string       `json:"date_created"`
	ScaleFactors ScaleFactors `json:"scale_factors"`
	Constants    Constants    `json:"constants"`
	Planets      []Planet     `json:"planets"`
}

// GenerationRun is everything produced by a single generator invocation.
type GenerationRun struct {
	Document ConfigDocument
	Derived  []DerivedPlanet
	Cameras  []CameraRange
}
