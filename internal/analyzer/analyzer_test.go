package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Anuj-165/SCAN2HEAL/internal/medicine"
	"github.com/Anuj-165/SCAN2HEAL/internal/models"
	"github.com/Anuj-165/SCAN2HEAL/internal/registry"
	"github.com/Anuj-165/SCAN2HEAL/internal/repository"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	reg, err := registry.Build("../../data", zap.NewNop())
	require.NoError(t, err)

	catalog, err := repository.NewMemoryMedicineCatalog("../../data/drugs_for_common_treatments.csv")
	require.NoError(t, err)

	resolver := medicine.NewResolver(catalog, zap.NewNop())
	return New(reg, resolver, zap.NewNop())
}

func TestAnalyzeDiabetesReport(t *testing.T) {
	a := newTestAnalyzer(t)

	text := "Lab report. Glucose: 148.0 BMI: 33.6 Age: 50 HbA1c: 9.2"
	result := a.Analyze(context.Background(), text, "diabetes")

	assert.Equal(t, "diabetes", result.Disease)
	assert.Equal(t, models.ReportPositive, result.ThresholdStatus)
	assert.Equal(t, 148.0, result.MatchedParameters["Glucose"])
	assert.Equal(t, 33.6, result.MatchedParameters["BMI"])

	// HbA1c and Glucose are both out of range, FBS is missing: exactly two
	// abnormal findings.
	assert.Equal(t, models.SeverityModerate, result.Severity)
	assert.Equal(t, models.StatusAbnormal, result.ThresholdDetails["HbA1c"].Status)
	assert.Equal(t, models.StatusMissing, result.ThresholdDetails["FBS"].Status)

	assert.Equal(t, "HbA1c is critically high. Medicine and doctor consultation strongly recommended.", result.FinalDecision)
	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.Medicines)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	a := newTestAnalyzer(t)
	ctx := context.Background()

	text := "Glucose: 148.0 HbA1c: 6.1 Age: 50"
	first := a.Analyze(ctx, text, "diabetes")
	second := a.Analyze(ctx, text, "diabetes")

	assert.Equal(t, first, second)
}

func TestAnalyzeUnknownDisease(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze(context.Background(), "HbA1c: 9.2", "gallbladder")

	assert.Equal(t, DiagnosisUnavailable, result.FinalDecision)
	assert.Equal(t, models.SeverityUnknown, result.Severity)
	assert.Equal(t, models.ReportInconclusive, result.ThresholdStatus)
	assert.Empty(t, result.MatchedParameters)
	assert.Empty(t, result.ThresholdDetails)
	assert.Empty(t, result.Medicines)
	assert.Empty(t, result.Recommendations)
}

func TestAnalyzeNormalizesDiseaseID(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze(context.Background(), "HbA1c: 5.2", "  Diabetes ")
	assert.Equal(t, "diabetes", result.Disease)
	assert.NotEqual(t, DiagnosisUnavailable, result.FinalDecision)
}

func TestAnalyzeEmptyTextIsInconclusive(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze(context.Background(), "", "dengue")

	assert.Equal(t, models.ReportInconclusive, result.ThresholdStatus)
	assert.Equal(t, models.SeverityLow, result.Severity)
	for col, v := range result.MatchedParameters {
		assert.Equal(t, 0.0, v, "column %s", col)
	}
}
