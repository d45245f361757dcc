package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func separableDataset() *Dataset {
	return &Dataset{
		Columns: []string{"marker", "level"},
		X: [][]float64{
			{1.0, 10.0}, {1.5, 12.0}, {2.0, 11.0}, {1.2, 9.5},
			{8.0, 30.0}, {9.0, 32.0}, {8.5, 29.0}, {9.5, 31.0},
		},
		Y: []int{0, 0, 0, 0, 1, 1, 1, 1},
	}
}

func TestFitSeparatesClasses(t *testing.T) {
	model, err := Fit(separableDataset())
	require.NoError(t, err)

	assert.Equal(t, 0, model.Predict(map[string]float64{"marker": 1.3, "level": 10.5}))
	assert.Equal(t, 1, model.Predict(map[string]float64{"marker": 8.8, "level": 30.5}))
}

func TestFitIsDeterministic(t *testing.T) {
	ds := separableDataset()

	first, err := Fit(ds)
	require.NoError(t, err)
	second, err := Fit(ds)
	require.NoError(t, err)

	probes := []map[string]float64{
		{"marker": 0.5, "level": 8.0},
		{"marker": 5.0, "level": 20.0},
		{"marker": 12.0, "level": 40.0},
	}
	for _, probe := range probes {
		assert.Equal(t, first.Predict(probe), second.Predict(probe))
	}
}

func TestFitRejectsSingleClass(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"a"},
		X:       [][]float64{{1}, {2}, {3}},
		Y:       []int{1, 1, 1},
	}

	_, err := Fit(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single class")
}

func TestFitRejectsEmptyDataset(t *testing.T) {
	_, err := Fit(&Dataset{Columns: []string{"a"}})
	assert.Error(t, err)
}

func TestColumnsReturnsCopy(t *testing.T) {
	model, err := Fit(separableDataset())
	require.NoError(t, err)

	cols := model.Columns()
	require.Equal(t, []string{"marker", "level"}, cols)

	cols[0] = "mutated"
	assert.Equal(t, []string{"marker", "level"}, model.Columns())
}

func TestPredictTreatsAbsentParametersAsZero(t *testing.T) {
	model, err := Fit(separableDataset())
	require.NoError(t, err)

	// An empty vector is the all-sentinel case; it must classify like an
	// explicit all-zero vector, far below the positive cluster.
	assert.Equal(t, model.Predict(map[string]float64{"marker": 0, "level": 0}),
		model.Predict(map[string]float64{}))
}

func TestFitHandlesImbalancedClasses(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"x"},
		X: [][]float64{
			{1}, {1.2}, {0.8}, {1.1}, {0.9}, {1.3}, {0.7},
			{10},
		},
		Y: []int{0, 0, 0, 0, 0, 0, 0, 1},
	}

	model, err := Fit(ds)
	require.NoError(t, err)

	// Balanced class weighting keeps the lone positive learnable.
	assert.Equal(t, 1, model.Predict(map[string]float64{"x": 10}))
	assert.Equal(t, 0, model.Predict(map[string]float64{"x": 1}))
}
