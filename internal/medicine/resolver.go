// Package medicine resolves diseases to catalog medicines and looks up drug
// side effects from openFDA.
package medicine

import (
	"context"
	"strings"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
	"github.com/Anuj-165/SCAN2HEAL/internal/repository"
	"go.uber.org/zap"
)

const maxMedicines = 5

// diseaseAliases maps model keys and common free-text names to the catalog's
// disease naming. Unlisted names are looked up as-is.
var diseaseAliases = map[string]string{
	"diabetes":     "Diabetes (Type 2)",
	"heart":        "Heart attack",
	"kidney":       "Chronic cholestasis",
	"liver":        "Alcoholic hepatitis",
	"cold":         "Common Cold",
	"flu":          "Colds & Flu",
	"hypertension": "Hypertension",
	"hepatitis":    "Hepatitis B",
	"cancer":       "Cancer",
	"migraine":     "Migraine",
	"pneumonia":    "Pneumonia",
	"dengue":       "Dengue",
	"aids":         "AIDS/HIV",
	"allergy":      "Allergy",
	"asthma":       "Asthma",
	"thyroid":      "Hypothyroidism",
}

// Resolver maps a disease identifier or free-text disease name to up to five
// catalog medicines. Absence is an empty list; Resolve never fails the
// request.
type Resolver struct {
	catalog repository.MedicineCatalogRepo
	logger  *zap.Logger
}

func NewResolver(catalog repository.MedicineCatalogRepo, logger *zap.Logger) *Resolver {
	return &Resolver{catalog: catalog, logger: logger}
}

// Resolve normalizes the disease name through the alias table and performs a
// case-insensitive substring catalog lookup.
func (r *Resolver) Resolve(ctx context.Context, diseaseName string) []models.Medicine {
	name := strings.ToLower(strings.TrimSpace(diseaseName))
	if mapped, ok := diseaseAliases[name]; ok {
		name = mapped
	}

	meds, err := r.catalog.MedicinesForDisease(ctx, name, maxMedicines)
	if err != nil {
		r.logger.Warn("Medicine catalog lookup failed",
			zap.String("disease", diseaseName),
			zap.Error(err),
		)
		return []models.Medicine{}
	}
	return meds
}
