package disease

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
)

func detail(v float64, status models.ParamStatus) models.ThresholdDetail {
	return models.ThresholdDetail{Value: &v, Status: status}
}

func TestRecommendDiabetes(t *testing.T) {
	tests := []struct {
		name     string
		details  map[string]models.ThresholdDetail
		expected string
	}{
		{
			name:     "no HbA1c found",
			details:  map[string]models.ThresholdDetail{"HbA1c": {Status: models.StatusMissing}},
			expected: DefaultRecommendation,
		},
		{
			name:     "critical",
			details:  map[string]models.ThresholdDetail{"HbA1c": detail(8.5, models.StatusAbnormal)},
			expected: "HbA1c is critically high. Medicine and doctor consultation strongly recommended.",
		},
		{
			name:     "diabetic",
			details:  map[string]models.ThresholdDetail{"HbA1c": detail(6.8, models.StatusAbnormal)},
			expected: "HbA1c indicates diabetes. Lifestyle changes and monitoring advised.",
		},
		{
			name:     "prediabetic",
			details:  map[string]models.ThresholdDetail{"HbA1c": detail(5.9, models.StatusPrediabetes)},
			expected: "Prediabetic range. Maintain healthy habits and retest in 3 months.",
		},
		{
			name:     "normal",
			details:  map[string]models.ThresholdDetail{"HbA1c": detail(5.1, models.StatusOK)},
			expected: "HbA1c is normal. Continue your healthy lifestyle.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommendation, treatments := recommendDiabetes(tt.details)
			assert.Equal(t, tt.expected, recommendation)
			assert.NotEmpty(t, treatments)
		})
	}
}

func TestRecommendDengueLowPlatelets(t *testing.T) {
	recommendation, _ := recommendDengue(map[string]models.ThresholdDetail{
		"Platelets": detail(80000, models.StatusAbnormal),
	})
	assert.Equal(t, "Low platelet count. Hospitalization may be required.", recommendation)

	recommendation, treatments := recommendDengue(map[string]models.ThresholdDetail{
		"Platelets": detail(180000, models.StatusOK),
	})
	assert.Equal(t, "Dengue infection detected. Monitor symptoms closely and stay hydrated.", recommendation)
	assert.NotEmpty(t, treatments)
}

func TestRecommendHeartLowEF(t *testing.T) {
	recommendation, _ := recommendHeart(map[string]models.ThresholdDetail{
		"EF": detail(42, models.StatusAbnormal),
	})
	assert.Equal(t, "Low ejection fraction. Cardiologist consultation is highly recommended.", recommendation)
}

func TestRecommendKidneyElevatedCreatinine(t *testing.T) {
	recommendation, _ := recommendKidney(map[string]models.ThresholdDetail{
		"Creatinine": detail(2.4, models.StatusAbnormal),
	})
	assert.Equal(t, "Elevated creatinine level. Possible kidney dysfunction. Doctor visit advised.", recommendation)
}

func TestRecommendLiverElevatedBilirubin(t *testing.T) {
	recommendation, _ := recommendLiver(map[string]models.ThresholdDetail{
		"Total Bilirubin": detail(3.8, models.StatusAbnormal),
	})
	assert.Equal(t, "Elevated bilirubin. Possible liver dysfunction. Consultation recommended.", recommendation)
}
