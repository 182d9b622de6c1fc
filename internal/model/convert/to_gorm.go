// Package convert provides functions to convert between GORM models and core models
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/subspaceue/solarconfig/internal/model"
	"github.com/subspaceue/solarconfig/pkg/core"
	"gorm.io/datatypes"
)

// toJSON marshals v for a datatypes.JSON column.
func toJSON(v any) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// CoreToGenerationRun converts a core.GenerationRun to a GORM model.GenerationRun.
// Derived values and camera ranges are matched to planets by name.
func CoreToGenerationRun(run core.GenerationRun) (model.GenerationRun, error) {
	scaleFactors, err := toJSON(run.Document.ScaleFactors)
	if err != nil {
		return model.GenerationRun{}, fmt.Errorf("failed to encode scale factors: %w", err)
	}
	constants, err := toJSON(run.Document.Constants)
	if err != nil {
		return model.GenerationRun{}, fmt.Errorf("failed to encode constants: %w", err)
	}

	derived := make(map[string]core.DerivedPlanet, len(run.Derived))
	for _, d := range run.Derived {
		derived[d.Name] = d
	}
	cameras := make(map[string]core.CameraRange, len(run.Cameras))
	for _, c := range run.Cameras {
		cameras[c.Name] = c
	}

	planets := make([]model.PlanetRecord, 0, len(run.Document.Planets))
	for i, p := range run.Document.Planets {
		planets = append(planets, CoreToPlanetRecord(i, p, derived[p.Name], cameras[p.Name]))
	}

	return model.GenerationRun{
		Version:      run.Document.Version,
		DateCreated:  run.Document.DateCreated,
		ScaleFactors: scaleFactors,
		Constants:    constants,
		PlanetCount:  len(planets),
		Planets:      planets,
	}, nil
}

// CoreToPlanetRecord converts one planet and its scaled values to a GORM model.PlanetRecord.
func CoreToPlanetRecord(order int, p core.Planet, d core.DerivedPlanet, c core.CameraRange) model.PlanetRecord {
	return model.PlanetRecord{
		SortOrder:                 order,
		Name:                      p.Name,
		SemiMajorAxisAU:           p.SemiMajorAxisAU,
		Eccentricity:              p.Eccentricity,
		OrbitalPeriodDays:         p.OrbitalPeriodDays,
		InclinationDeg:            p.InclinationDeg,
		LongitudeAscendingNodeDeg: p.LongitudeAscendingNodeDeg,
		ArgumentPeriapsisDeg:      p.ArgumentPeriapsisDeg,
		MeanAnomalyEpochDeg:       p.MeanAnomalyEpochDeg,
		DiameterKm:                p.DiameterKm,
		MassEarthMasses:           p.MassEarthMasses,
		RotationPeriodDays:        p.RotationPeriodDays,
		HasMoons:                  p.HasMoons,
		DistanceUU:                d.DistanceUU,
		RadiusUU:                  d.RadiusUU,
		OrbitScaledSeconds:        d.OrbitScaledSeconds,
		CameraMinUU:               c.MinDistance,
		CameraMaxUU:               c.MaxDistance,
	}
}

// PlanetRecordToCore converts a stored record back to its catalog form.
func PlanetRecordToCore(r model.PlanetRecord) core.Planet {
	return core.Planet{
		Name:                      r.Name,
		SemiMajorAxisAU:           r.SemiMajorAxisAU,
		Eccentricity:              r.Eccentricity,
		OrbitalPeriodDays:         r.OrbitalPeriodDays,
		InclinationDeg:            r.InclinationDeg,
		LongitudeAscendingNodeDeg: r.LongitudeAscendingNodeDeg,
		ArgumentPeriapsisDeg:      r.ArgumentPeriapsisDeg,
		MeanAnomalyEpochDeg:       r.MeanAnomalyEpochDeg,
		DiameterKm:                r.DiameterKm,
		MassEarthMasses:           r.MassEarthMasses,
		RotationPeriodDays:        r.RotationPeriodDays,
		HasMoons:                  r.HasMoons,
	}
}

// GenerationRunToDocument rebuilds the exported document from a stored run.
// Planets must be preloaded and ordered by SortOrder.
func GenerationRunToDocument(r model.GenerationRun) (core.ConfigDocument, error) {
	doc := core.ConfigDocument{
		Version:     r.Version,
		DateCreated: r.DateCreated,
		Planets:     make([]core.Planet, 0, len(r.Planets)),
	}
	if err := json.Unmarshal(r.ScaleFactors, &doc.ScaleFactors); err != nil {
		return doc, fmt.Errorf("failed to decode scale factors: %w", err)
	}
	if err := json.Unmarshal(r.Constants, &doc.Constants); err != nil {
		return doc, fmt.Errorf("failed to decode constants: %w", err)
	}
	for _, p := range r.Planets {
		doc.Planets = append(doc.Planets, PlanetRecordToCore(p))
	}
	return doc, nil
}
