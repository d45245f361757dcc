package threshold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anuj-165/SCAN2HEAL/internal/disease"
	"github.com/Anuj-165/SCAN2HEAL/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestEvaluateDiabetesAbnormal(t *testing.T) {
	result := Evaluate("Patient report. HbA1c: 9.2 measured after fasting.", "diabetes")

	detail, ok := result.Details["HbA1c"]
	require.True(t, ok)
	require.NotNil(t, detail.Value)
	assert.Equal(t, 9.2, *detail.Value)
	assert.Equal(t, models.StatusAbnormal, detail.Status)

	assert.Equal(t, models.ReportPositive, result.Status)
	assert.Equal(t, "HbA1c is critically high. Medicine and doctor consultation strongly recommended.", result.Recommendation)
	assert.NotEmpty(t, result.PossibleTreatments)
}

func TestEvaluateDiabetesBands(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		status models.ParamStatus
	}{
		{name: "normal", text: "HbA1c: 5.2", status: models.StatusOK},
		{name: "prediabetes low edge", text: "HbA1c: 5.7", status: models.StatusPrediabetes},
		{name: "prediabetes high edge", text: "HbA1c: 6.4", status: models.StatusPrediabetes},
		{name: "abnormal edge", text: "HbA1c: 6.5", status: models.StatusAbnormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.text, "diabetes")
			assert.Equal(t, tt.status, result.Details["HbA1c"].Status)
		})
	}
}

func TestEvaluateCaseInsensitiveDiseaseID(t *testing.T) {
	result := Evaluate("HbA1c: 5.2", "Diabetes")
	assert.Equal(t, models.StatusOK, result.Details["HbA1c"].Status)
}

func TestEvaluateAllMissingIsInconclusive(t *testing.T) {
	result := Evaluate("no laboratory values in this text", "diabetes")

	assert.Equal(t, models.ReportInconclusive, result.Status)
	for name, detail := range result.Details {
		assert.Equal(t, models.StatusMissing, detail.Status, "parameter %s", name)
		assert.Nil(t, detail.Value)
	}
}

func TestEvaluateUnknownDisease(t *testing.T) {
	result := Evaluate("HbA1c: 9.2", "gallbladder")

	assert.Empty(t, result.Details)
	assert.Equal(t, models.ReportInconclusive, result.Status)
	assert.Equal(t, disease.DefaultRecommendation, result.Recommendation)
	assert.Empty(t, result.PossibleTreatments)
}

func TestEvaluateKidneyMinMax(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		param  string
		status models.ParamStatus
	}{
		{name: "sodium below range", text: "Sodium: 130.0", param: "Sodium", status: models.StatusAbnormal},
		{name: "sodium in range", text: "Sodium: 140.0", param: "Sodium", status: models.StatusOK},
		{name: "sodium above range", text: "Sodium: 148.5", param: "Sodium", status: models.StatusAbnormal},
		{name: "potassium elevated", text: "Potassium: 6.2", param: "Potassium", status: models.StatusAbnormal},
		{name: "creatinine normal", text: "Serum Creatinine: 1.1", param: "Creatinine", status: models.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.text, "kidney")
			assert.Equal(t, tt.status, result.Details[tt.param].Status)
		})
	}
}

func TestEvaluateDengueSerology(t *testing.T) {
	result := Evaluate("DENGUE IgM: 2.5 observed", "dengue")
	assert.Equal(t, models.StatusPositive, result.Details["IgM"].Status)
	assert.Equal(t, models.ReportPositive, result.Status)

	// Below the serology cutoff the marker is out of range, not positive.
	result = Evaluate("IgM: 0.5", "dengue")
	assert.Equal(t, models.StatusAbnormal, result.Details["IgM"].Status)
}

func TestEvaluateRequiresDecimalValue(t *testing.T) {
	// Integer-only values are not picked up by the extraction pattern; the
	// parameter stays missing rather than guessing.
	result := Evaluate("HbA1c: 9", "diabetes")
	assert.Equal(t, models.StatusMissing, result.Details["HbA1c"].Status)
}

func TestSeverityBoundaries(t *testing.T) {
	abnormal := models.ThresholdDetail{Value: fptr(1), Status: models.StatusAbnormal}
	ok := models.ThresholdDetail{Value: fptr(1), Status: models.StatusOK}

	tests := []struct {
		name     string
		details  map[string]models.ThresholdDetail
		expected models.Severity
	}{
		{
			name:     "zero abnormal is low",
			details:  map[string]models.ThresholdDetail{"a": ok, "b": ok},
			expected: models.SeverityLow,
		},
		{
			name:     "one abnormal is high",
			details:  map[string]models.ThresholdDetail{"a": abnormal, "b": ok},
			expected: models.SeverityHigh,
		},
		{
			name:     "two abnormal is moderate",
			details:  map[string]models.ThresholdDetail{"a": abnormal, "b": abnormal},
			expected: models.SeverityModerate,
		},
		{
			name: "three abnormal is high",
			details: map[string]models.ThresholdDetail{
				"a": abnormal, "b": abnormal, "c": abnormal,
			},
			expected: models.SeverityHigh,
		},
		{
			name:     "empty details is low",
			details:  map[string]models.ThresholdDetail{},
			expected: models.SeverityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Severity(tt.details))
		})
	}
}

func TestAggregateNegativeWhenSomeFound(t *testing.T) {
	details := map[string]models.ThresholdDetail{
		"a": {Value: fptr(1), Status: models.StatusOK},
		"b": {Status: models.StatusMissing},
	}
	assert.Equal(t, models.ReportNegative, aggregate(details))
}
