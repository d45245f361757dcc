package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
)

// MemorySymptomGraph is the CSV-backed symptom graph. It is built once at
// startup and read-only afterwards, so lookups need no locking.
type MemorySymptomGraph struct {
	diseaseSymptoms map[string][]string // disease name -> symptom names
	symptomDiseases map[string][]string // symptom name -> disease names
}

// NewMemorySymptomGraph loads the disease/symptom dataset: one row per
// disease with a Disease column followed by symptom columns, empty trailing
// cells allowed.
func NewMemorySymptomGraph(path string) (*MemorySymptomGraph, error) {
	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(header) == 0 || !strings.EqualFold(strings.TrimSpace(header[0]), "Disease") {
		return nil, fmt.Errorf("symptom dataset %s: first column must be Disease", path)
	}

	g := &MemorySymptomGraph{
		diseaseSymptoms: map[string][]string{},
		symptomDiseases: map[string][]string{},
	}

	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		diseaseName := strings.TrimSpace(rec[0])
		if diseaseName == "" {
			continue
		}
		for _, cell := range rec[1:] {
			symptom := strings.TrimSpace(cell)
			if symptom == "" {
				continue
			}
			if !contains(g.diseaseSymptoms[diseaseName], symptom) {
				g.diseaseSymptoms[diseaseName] = append(g.diseaseSymptoms[diseaseName], symptom)
			}
			if !contains(g.symptomDiseases[symptom], diseaseName) {
				g.symptomDiseases[symptom] = append(g.symptomDiseases[symptom], diseaseName)
			}
		}
	}

	if len(g.diseaseSymptoms) == 0 {
		return nil, fmt.Errorf("symptom dataset %s has no usable rows", path)
	}
	return g, nil
}

func (g *MemorySymptomGraph) AllSymptoms(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(g.symptomDiseases))
	for s := range g.symptomDiseases {
		names = append(names, s)
	}
	sort.Strings(names)
	return names, nil
}

func (g *MemorySymptomGraph) DiseasesForSymptoms(_ context.Context, symptoms []string) (map[string][]string, error) {
	result := map[string][]string{}
	for _, symptom := range symptoms {
		for _, diseaseName := range g.symptomDiseases[symptom] {
			if !contains(result[diseaseName], symptom) {
				result[diseaseName] = append(result[diseaseName], symptom)
			}
		}
	}
	return result, nil
}

func (g *MemorySymptomGraph) SymptomsForDisease(_ context.Context, diseaseName string) ([]string, error) {
	symptoms := g.diseaseSymptoms[diseaseName]
	out := make([]string, len(symptoms))
	copy(out, symptoms)
	return out, nil
}

// MemoryMedicineCatalog is the CSV-backed medicine catalog, immutable after
// load.
type MemoryMedicineCatalog struct {
	diseases  []string // insertion order, first match wins
	medicines map[string][]models.Medicine
}

// NewMemoryMedicineCatalog loads the drugs-for-common-treatments dataset.
// Required columns: medical_condition, drug_name, drug_link.
func NewMemoryMedicineCatalog(path string) (*MemoryMedicineCatalog, error) {
	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	condIdx, nameIdx, linkIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "medical_condition":
			condIdx = i
		case "drug_name":
			nameIdx = i
		case "drug_link":
			linkIdx = i
		}
	}
	if condIdx < 0 || nameIdx < 0 || linkIdx < 0 {
		return nil, fmt.Errorf("medicine dataset %s is missing a required column (medical_condition, drug_name, drug_link)", path)
	}

	c := &MemoryMedicineCatalog{medicines: map[string][]models.Medicine{}}
	for _, rec := range records {
		if len(rec) <= condIdx || len(rec) <= nameIdx || len(rec) <= linkIdx {
			continue
		}
		condition := strings.TrimSpace(rec[condIdx])
		name := strings.TrimSpace(rec[nameIdx])
		link := strings.TrimSpace(rec[linkIdx])
		if condition == "" || name == "" || link == "" {
			continue
		}
		if _, seen := c.medicines[condition]; !seen {
			c.diseases = append(c.diseases, condition)
		}
		c.medicines[condition] = append(c.medicines[condition], models.Medicine{Name: name, Link: link})
	}

	if len(c.diseases) == 0 {
		return nil, fmt.Errorf("medicine dataset %s has no usable rows", path)
	}
	return c, nil
}

func (c *MemoryMedicineCatalog) MedicinesForDisease(_ context.Context, namePart string, limit int) ([]models.Medicine, error) {
	needle := strings.ToLower(strings.TrimSpace(namePart))
	if needle == "" {
		return []models.Medicine{}, nil
	}
	for _, diseaseName := range c.diseases {
		if !strings.Contains(strings.ToLower(diseaseName), needle) {
			continue
		}
		meds := c.medicines[diseaseName]
		if limit > 0 && len(meds) > limit {
			meds = meds[:limit]
		}
		out := make([]models.Medicine, len(meds))
		copy(out, meds)
		return out, nil
	}
	return []models.Medicine{}, nil
}

func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("catalog %s is empty", path)
	}
	return records[1:], records[0], nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
