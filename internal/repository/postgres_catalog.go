package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresSymptomGraph reads the symptom graph from the catalog tables
// populated by cmd/catalog-import.
type PostgresSymptomGraph struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresSymptomGraph(db *sql.DB, logger *zap.Logger) *PostgresSymptomGraph {
	return &PostgresSymptomGraph{db: db, logger: logger}
}

func (r *PostgresSymptomGraph) AllSymptoms(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM symptoms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list symptoms: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan symptom: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresSymptomGraph) DiseasesForSymptoms(ctx context.Context, symptoms []string) (map[string][]string, error) {
	if len(symptoms) == 0 {
		return map[string][]string{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT d.name, s.name
		FROM symptoms s
		JOIN symptom_diseases sd ON sd.symptom_id = s.symptom_id
		JOIN diseases d ON d.disease_id = sd.disease_id
		WHERE s.name = ANY($1)`,
		pq.Array(symptoms),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query symptom diseases: %w", err)
	}
	defer rows.Close()

	result := map[string][]string{}
	for rows.Next() {
		var diseaseName, symptomName string
		if err := rows.Scan(&diseaseName, &symptomName); err != nil {
			return nil, fmt.Errorf("failed to scan symptom disease: %w", err)
		}
		if !contains(result[diseaseName], symptomName) {
			result[diseaseName] = append(result[diseaseName], symptomName)
		}
	}
	return result, rows.Err()
}

func (r *PostgresSymptomGraph) SymptomsForDisease(ctx context.Context, diseaseName string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.name
		FROM symptoms s
		JOIN symptom_diseases sd ON sd.symptom_id = s.symptom_id
		JOIN diseases d ON d.disease_id = sd.disease_id
		WHERE d.name = $1
		ORDER BY s.name`,
		diseaseName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query disease symptoms: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan symptom: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// PostgresMedicineCatalog reads medicines from the catalog tables.
type PostgresMedicineCatalog struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresMedicineCatalog(db *sql.DB, logger *zap.Logger) *PostgresMedicineCatalog {
	return &PostgresMedicineCatalog{db: db, logger: logger}
}

func (r *PostgresMedicineCatalog) MedicinesForDisease(ctx context.Context, namePart string, limit int) ([]models.Medicine, error) {
	if limit <= 0 {
		limit = 5
	}

	// First disease whose name contains the fragment wins, then its
	// medicines; absence is an empty list, not an error.
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.name, m.link
		FROM medicines m
		WHERE m.disease_id = (
			SELECT disease_id FROM diseases
			WHERE name ILIKE '%' || $1 || '%'
			ORDER BY disease_id
			LIMIT 1
		)
		ORDER BY m.medicine_id
		LIMIT $2`,
		namePart, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	meds := []models.Medicine{}
	for rows.Next() {
		var m models.Medicine
		if err := rows.Scan(&m.Name, &m.Link); err != nil {
			return nil, fmt.Errorf("failed to scan medicine: %w", err)
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}
