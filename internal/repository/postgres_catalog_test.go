package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestPostgresSymptomGraphAllSymptoms(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresSymptomGraph(db, zap.NewNop())

	mock.ExpectQuery("SELECT name FROM symptoms ORDER BY name").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("cough").
			AddRow("high_fever"))

	names, err := repo.AllSymptoms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cough", "high_fever"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSymptomGraphDiseasesForSymptoms(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresSymptomGraph(db, zap.NewNop())

	symptoms := []string{"high_fever", "joint_pain"}
	mock.ExpectQuery("SELECT d.name, s.name").
		WithArgs(pq.Array(symptoms)).
		WillReturnRows(sqlmock.NewRows([]string{"disease", "symptom"}).
			AddRow("Dengue", "high_fever").
			AddRow("Dengue", "joint_pain").
			AddRow("Influenza", "high_fever"))

	matched, err := repo.DiseasesForSymptoms(context.Background(), symptoms)
	require.NoError(t, err)
	assert.Equal(t, []string{"high_fever", "joint_pain"}, matched["Dengue"])
	assert.Equal(t, []string{"high_fever"}, matched["Influenza"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSymptomGraphDiseasesForSymptomsEmptyInput(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresSymptomGraph(db, zap.NewNop())

	// No query should be issued for an empty symptom list.
	matched, err := repo.DiseasesForSymptoms(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSymptomGraphSymptomsForDisease(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresSymptomGraph(db, zap.NewNop())

	mock.ExpectQuery("SELECT s.name").
		WithArgs("Dengue").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("high_fever").
			AddRow("joint_pain"))

	symptoms, err := repo.SymptomsForDisease(context.Background(), "Dengue")
	require.NoError(t, err)
	assert.Equal(t, []string{"high_fever", "joint_pain"}, symptoms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMedicineCatalogLookup(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresMedicineCatalog(db, zap.NewNop())

	mock.ExpectQuery("SELECT m.name, m.link").
		WithArgs("diabetes", 5).
		WillReturnRows(sqlmock.NewRows([]string{"name", "link"}).
			AddRow("Metformin", "https://example.org/metformin"))

	meds, err := repo.MedicinesForDisease(context.Background(), "diabetes", 5)
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Metformin", meds[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMedicineCatalogDefaultsLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresMedicineCatalog(db, zap.NewNop())

	mock.ExpectQuery("SELECT m.name, m.link").
		WithArgs("diabetes", 5).
		WillReturnRows(sqlmock.NewRows([]string{"name", "link"}))

	meds, err := repo.MedicinesForDisease(context.Background(), "diabetes", 0)
	require.NoError(t, err)
	assert.Empty(t, meds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMedicineCatalogQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresMedicineCatalog(db, zap.NewNop())

	mock.ExpectQuery("SELECT m.name, m.link").
		WithArgs("diabetes", 5).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.MedicinesForDisease(context.Background(), "diabetes", 5)
	assert.Error(t, err)
}
