// Package repository provides the read-side catalogs the pipeline consumes:
// the disease-symptom graph and the disease-medicine catalog. Each catalog
// has a memory implementation loaded from the bundled CSVs (the in-process
// default) and a Postgres implementation fed by cmd/catalog-import.
package repository

import (
	"context"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
)

// SymptomGraphRepo reads the many-to-many symptom/disease relation.
type SymptomGraphRepo interface {
	// AllSymptoms lists every canonical symptom name.
	AllSymptoms(ctx context.Context) ([]string, error)
	// DiseasesForSymptoms returns, per disease linked to any of the given
	// symptoms, the subset of those symptoms it is linked to.
	DiseasesForSymptoms(ctx context.Context, symptoms []string) (map[string][]string, error)
	// SymptomsForDisease returns the full symptom set of one disease.
	SymptomsForDisease(ctx context.Context, diseaseName string) ([]string, error)
}

// MedicineCatalogRepo reads the disease-medicine catalog.
type MedicineCatalogRepo interface {
	// MedicinesForDisease resolves the first disease whose name contains
	// namePart (case-insensitive) and returns up to limit of its
	// medicines. No match is an empty list, never an error.
	MedicinesForDisease(ctx context.Context, namePart string, limit int) ([]models.Medicine, error)
}
