package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&GenerationRun{},
	&PlanetRecord{},
}

////////////////////////
// GENERATION MODELS
////////////////////////

// GenerationRun is one invocation of the generator and the document it exported
type GenerationRun struct {
	gorm.Model
	Version      string         `json:"version" gorm:"size:32"`
	DateCreated  string         `json:"dateCreated" gorm:"size:32;index:idx_generationrun_date"`
	ScaleFactors datatypes.JSON `json:"scaleFactors"`
	Constants    datatypes.JSON `json:"constants"`
	PlanetCount  int            `json:"planetCount"`
	Planets      []PlanetRecord `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:GenerationRunID"`
}

func (*GenerationRun) TableName() string {
	return "generation_runs"
}

// PlanetRecord is a catalog entry together with its engine-scaled values
type PlanetRecord struct {
	gorm.Model
	GenerationRunID uint   `json:"generationRunId" gorm:"index:idx_planetrecord_run_id"`
	SortOrder       int    `json:"sortOrder"`
	Name            string `json:"name" gorm:"size:64"`

	// Source elements
	SemiMajorAxisAU           float64 `json:"semiMajorAxisAu"`
	Eccentricity              float64 `json:"eccentricity"`
	OrbitalPeriodDays         float64 `json:"orbitalPeriodDays"`
	InclinationDeg            float64 `json:"inclinationDeg"`
	LongitudeAscendingNodeDeg float64 `json:"longitudeAscendingNodeDeg"`
	ArgumentPeriapsisDeg      float64 `json:"argumentPeriapsisDeg"`
	MeanAnomalyEpochDeg       float64 `json:"meanAnomalyEpochDeg"`
	DiameterKm                float64 `json:"diameterKm"`
	MassEarthMasses           float64 `json:"massEarthMasses"`
	RotationPeriodDays        float64 `json:"rotationPeriodDays"`
	HasMoons                  bool    `json:"hasMoons"`

	// Engine-scaled values
	DistanceUU         float64 `json:"distanceUu"`
	RadiusUU           float64 `json:"radiusUu"`
	OrbitScaledSeconds float64 `json:"orbitScaledSeconds"`
	CameraMinUU        float64 `json:"cameraMinUu"`
	CameraMaxUU        float64 `json:"cameraMaxUu"`
}

func (*PlanetRecord) TableName() string {
	return "planet_records"
}
