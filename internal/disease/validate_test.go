package disease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
)

func diabetesCols() []string {
	return []string{
		"Pregnancies", "Glucose", "BloodPressure", "SkinThickness",
		"Insulin", "BMI", "DiabetesPedigreeFunction", "Age",
	}
}

func TestValidateAcceptsMatchingColumns(t *testing.T) {
	profile, ok := Get("diabetes")
	require.True(t, ok)

	assert.NoError(t, Validate(profile, diabetesCols()))
}

func TestValidateRejectsColumnCountMismatch(t *testing.T) {
	profile, ok := Get("diabetes")
	require.True(t, ok)

	err := Validate(profile, diabetesCols()[:5])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature columns")
}

func TestValidateRejectsUnknownColumn(t *testing.T) {
	profile, ok := Get("diabetes")
	require.True(t, ok)

	cols := diabetesCols()
	cols[0] = "NotARealColumn"
	err := Validate(profile, cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no synonym entry")
}

func TestValidateRejectsOverlappingBands(t *testing.T) {
	p := Profile{
		Name:     "test",
		Synonyms: map[string][]string{"X": {"X"}},
		Thresholds: []ParamThreshold{
			{
				Name:    "X",
				Aliases: []string{"X"},
				Ranges: []Band{
					{Name: models.StatusOK, Low: 0, High: 100},
					{Name: models.StatusAbnormal, Low: 90, High: 200},
				},
			},
		},
	}

	err := Validate(p, []string{"X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestValidateRejectsInvertedBand(t *testing.T) {
	p := Profile{
		Name:     "test",
		Synonyms: map[string][]string{"X": {"X"}},
		Thresholds: []ParamThreshold{
			{
				Name:    "X",
				Aliases: []string{"X"},
				Ranges:  []Band{{Name: models.StatusOK, Low: 10, High: 5}},
			},
		},
	}

	err := Validate(p, []string{"X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted")
}

func TestValidateRejectsEmptyAliases(t *testing.T) {
	p := Profile{
		Name:       "test",
		Synonyms:   map[string][]string{"X": {"X"}},
		Thresholds: []ParamThreshold{{Name: "X"}},
	}

	err := Validate(p, []string{"X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no aliases")
}

func TestBuiltinProfileBandsDoNotOverlap(t *testing.T) {
	for _, name := range Names() {
		profile, ok := Get(name)
		require.True(t, ok, "disease %s", name)
		for _, th := range profile.Thresholds {
			assert.NoError(t, checkBands(name, th), "disease %s parameter %s", name, th.Name)
		}
	}
}
