package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	fitIterations = 2000
	learningRate  = 0.1
)

// Logistic is a fitted binary logistic-regression classifier with balanced
// class weighting. Features are standardized internally; callers feed raw
// values in the training column order and get a {0,1} prediction back.
// A fitted Logistic is immutable and safe for concurrent use.
type Logistic struct {
	cols    []string
	mean    []float64
	std     []float64
	weights *mat.VecDense
	bias    float64
}

// Columns returns the feature columns in training order.
func (l *Logistic) Columns() []string {
	cols := make([]string, len(l.cols))
	copy(cols, l.cols)
	return cols
}

// Fit trains a classifier on the dataset with full-batch gradient descent.
// Class weights are balanced (n / (2 * n_class)) so the minority class is
// not drowned out. The fit is deterministic: fixed iteration count, fixed
// learning rate, zero-initialized weights, no shuffling.
func Fit(ds *Dataset) (*Logistic, error) {
	n := len(ds.X)
	if n == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	d := len(ds.Columns)

	pos := 0
	for _, y := range ds.Y {
		if y == 1 {
			pos++
		}
	}
	neg := n - pos
	if pos == 0 || neg == 0 {
		return nil, fmt.Errorf("dataset has a single class (%d positive of %d rows)", pos, n)
	}
	wPos := float64(n) / (2 * float64(pos))
	wNeg := float64(n) / (2 * float64(neg))

	mean, std := standardizeParams(ds.X, d)
	x := mat.NewDense(n, d, nil)
	for i, row := range ds.X {
		for j, v := range row {
			x.Set(i, j, (v-mean[j])/std[j])
		}
	}

	w := mat.NewVecDense(d, nil)
	bias := 0.0
	grad := mat.NewVecDense(d, nil)
	z := mat.NewVecDense(n, nil)

	for iter := 0; iter < fitIterations; iter++ {
		z.MulVec(x, w)
		grad.Zero()
		gradBias := 0.0
		for i := 0; i < n; i++ {
			p := sigmoid(z.AtVec(i) + bias)
			sampleWeight := wNeg
			target := 0.0
			if ds.Y[i] == 1 {
				sampleWeight = wPos
				target = 1.0
			}
			residual := sampleWeight * (p - target)
			for j := 0; j < d; j++ {
				grad.SetVec(j, grad.AtVec(j)+residual*x.At(i, j))
			}
			gradBias += residual
		}
		scale := learningRate / float64(n)
		for j := 0; j < d; j++ {
			w.SetVec(j, w.AtVec(j)-scale*grad.AtVec(j))
		}
		bias -= scale * gradBias
	}

	return &Logistic{
		cols:    append([]string(nil), ds.Columns...),
		mean:    mean,
		std:     std,
		weights: w,
		bias:    bias,
	}, nil
}

// Predict returns the {0,1} prediction for one parameter vector. Parameters
// absent from the map contribute their sentinel 0 value, as the matcher
// produces them.
func (l *Logistic) Predict(values map[string]float64) int {
	z := l.bias
	for j, col := range l.cols {
		v := (values[col] - l.mean[j]) / l.std[j]
		z += l.weights.AtVec(j) * v
	}
	if sigmoid(z) >= 0.5 {
		return 1
	}
	return 0
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func standardizeParams(x [][]float64, d int) (mean, std []float64) {
	n := float64(len(x))
	mean = make([]float64, d)
	std = make([]float64, d)
	for _, row := range x {
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}
	for _, row := range x {
		for j, v := range row {
			diff := v - mean[j]
			std[j] += diff * diff
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / n)
		if std[j] == 0 {
			std[j] = 1
		}
	}
	return mean, std
}
