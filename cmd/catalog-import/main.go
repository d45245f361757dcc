// catalog-import loads the disease/symptom dataset and the
// drugs-for-common-treatments dataset into the Postgres catalog tables.
// Input files may be CSV or Excel exports.
package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Anuj-165/SCAN2HEAL/internal/config"
	"github.com/Anuj-165/SCAN2HEAL/internal/logger"
	"github.com/Anuj-165/SCAN2HEAL/internal/repository"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS diseases (
	disease_id SERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS symptoms (
	symptom_id SERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS symptom_diseases (
	symptom_id INT NOT NULL REFERENCES symptoms(symptom_id),
	disease_id INT NOT NULL REFERENCES diseases(disease_id),
	PRIMARY KEY (symptom_id, disease_id)
);
CREATE TABLE IF NOT EXISTS medicines (
	medicine_id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	link TEXT NOT NULL,
	disease_id INT NOT NULL REFERENCES diseases(disease_id),
	UNIQUE (name, link, disease_id)
);`

func main() {
	symptomsFile := flag.String("symptoms", "", "disease/symptom dataset (.csv or .xlsx)")
	medicinesFile := flag.String("medicines", "", "drugs-for-common-treatments dataset (.csv or .xlsx)")
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "catalog-import")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *symptomsFile == "" && *medicinesFile == "" {
		fmt.Fprintln(os.Stderr, "usage: catalog-import -symptoms dataset.csv -medicines drugs_for_common_treatments.csv")
		os.Exit(2)
	}

	db, err := repository.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatal("Failed to create catalog tables", zap.Error(err))
	}

	if *symptomsFile != "" {
		if err := importSymptoms(db, *symptomsFile, log); err != nil {
			log.Fatal("Symptom import failed", zap.Error(err))
		}
	}
	if *medicinesFile != "" {
		if err := importMedicines(db, *medicinesFile, log); err != nil {
			log.Fatal("Medicine import failed", zap.Error(err))
		}
	}
}

// importSymptoms mirrors the original dataset layout: a Disease column
// followed by one symptom per cell, empty cells ignored.
func importSymptoms(db *sql.DB, path string, log *zap.Logger) error {
	rows, err := readTable(path)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return fmt.Errorf("dataset %s has no data rows", path)
	}

	total := len(rows) - 1
	for i, rec := range rows[1:] {
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		diseaseID, err := upsertNamed(db, "diseases", "disease_id", strings.TrimSpace(rec[0]))
		if err != nil {
			return err
		}
		for _, cell := range rec[1:] {
			symptom := strings.TrimSpace(cell)
			if symptom == "" {
				continue
			}
			symptomID, err := upsertNamed(db, "symptoms", "symptom_id", symptom)
			if err != nil {
				return err
			}
			if _, err := db.Exec(
				`INSERT INTO symptom_diseases (symptom_id, disease_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				symptomID, diseaseID,
			); err != nil {
				return fmt.Errorf("failed to link symptom %q: %w", symptom, err)
			}
		}
		if (i+1)%100 == 0 || i+1 == total {
			log.Info("Symptom import progress", zap.Int("processed", i+1), zap.Int("total", total))
		}
	}

	log.Info("Symptom import complete", zap.Int("rows", total))
	return nil
}

func importMedicines(db *sql.DB, path string, log *zap.Logger) error {
	rows, err := readTable(path)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return fmt.Errorf("dataset %s has no data rows", path)
	}

	condIdx, nameIdx, linkIdx := -1, -1, -1
	for i, col := range rows[0] {
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
		return fmt.Errorf("dataset %s is missing a required column (medical_condition, drug_name, drug_link)", path)
	}

	total := len(rows) - 1
	for i, rec := range rows[1:] {
		if len(rec) <= condIdx || len(rec) <= nameIdx || len(rec) <= linkIdx {
			continue
		}
		condition := strings.TrimSpace(rec[condIdx])
		name := strings.TrimSpace(rec[nameIdx])
		link := strings.TrimSpace(rec[linkIdx])
		if condition == "" || name == "" || link == "" {
			continue
		}

		diseaseID, err := upsertNamed(db, "diseases", "disease_id", condition)
		if err != nil {
			return err
		}
		if _, err := db.Exec(
			`INSERT INTO medicines (name, link, disease_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			name, link, diseaseID,
		); err != nil {
			return fmt.Errorf("failed to insert medicine %q: %w", name, err)
		}

		if (i+1)%100 == 0 || i+1 == total {
			log.Info("Medicine import progress", zap.Int("processed", i+1), zap.Int("total", total))
		}
	}

	log.Info("Medicine import complete", zap.Int("rows", total))
	return nil
}

func upsertNamed(db *sql.DB, table, idColumn, name string) (int, error) {
	var id int
	err := db.QueryRow(
		`INSERT INTO `+table+` (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING `+idColumn,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert %s %q: %w", table, name, err)
	}
	return id, nil
}

// readTable reads a CSV or Excel file into rows of cells.
func readTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return rows, nil
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", path)
	}
}
