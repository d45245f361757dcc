// Package classifier trains and serves the per-disease binary classifiers.
// Each one is fitted once at process startup from a bundled CSV dataset and
// is immutable afterwards.
package classifier

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Dataset is one loaded training table: feature columns in header order,
// numeric feature rows and a {0,1} target vector.
type Dataset struct {
	Columns []string
	X       [][]float64
	Y       []int
}

// LoadDataset reads a CSV training file. Rows with any empty cell are
// dropped. Textual targets are mapped through targetLabels; numeric targets
// coded {1,2} are normalized to {1,0}. Non-numeric feature columns are
// label-encoded over their sorted distinct values. A missing target column
// or an empty usable dataset is a startup configuration error.
func LoadDataset(path, targetColumn string, targetLabels map[string]int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	header := records[0]
	targetIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == targetColumn {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("dataset %s is missing target column %q", path, targetColumn)
	}

	// Drop incomplete rows before any encoding, matching the training
	// pipeline's dropna step.
	var rows [][]string
	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			continue
		}
		complete := true
		for _, cell := range rec {
			if strings.TrimSpace(cell) == "" {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, rec)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no complete rows", path)
	}

	y, err := encodeTarget(path, rows, targetIdx, targetLabels)
	if err != nil {
		return nil, err
	}

	var cols []string
	var colIdx []int
	for i, col := range header {
		if i != targetIdx {
			cols = append(cols, strings.TrimSpace(col))
			colIdx = append(colIdx, i)
		}
	}

	x := make([][]float64, len(rows))
	for i := range x {
		x[i] = make([]float64, len(cols))
	}
	for j, idx := range colIdx {
		if err := encodeFeature(rows, idx, j, x); err != nil {
			return nil, fmt.Errorf("dataset %s column %q: %w", path, cols[j], err)
		}
	}

	return &Dataset{Columns: cols, X: x, Y: y}, nil
}

func encodeTarget(path string, rows [][]string, targetIdx int, targetLabels map[string]int) ([]int, error) {
	y := make([]int, len(rows))

	numeric := true
	for _, rec := range rows {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rec[targetIdx]), 64); err != nil {
			numeric = false
			break
		}
	}

	if !numeric {
		if targetLabels == nil {
			return nil, fmt.Errorf("dataset %s has a textual target but no label mapping", path)
		}
		for i, rec := range rows {
			label := strings.TrimSpace(rec[targetIdx])
			v, ok := targetLabels[label]
			if !ok {
				return nil, fmt.Errorf("dataset %s has unmapped target label %q", path, label)
			}
			y[i] = v
		}
		return y, nil
	}

	distinct := map[int]bool{}
	for i, rec := range rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[targetIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s has malformed target value: %w", path, err)
		}
		y[i] = int(v)
		distinct[int(v)] = true
	}

	// A {1,2} coding means 1=disease, 2=healthy; normalize to {1,0}.
	if len(distinct) == 2 && distinct[1] && distinct[2] {
		for i := range y {
			if y[i] == 2 {
				y[i] = 0
			}
		}
	}

	for i, v := range y {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("dataset %s row %d has non-binary target %d", path, i+1, v)
		}
	}
	return y, nil
}

// encodeFeature fills column j of x from raw column idx. Numeric columns are
// parsed directly; otherwise the column is label-encoded over its sorted
// distinct values so the encoding is deterministic.
func encodeFeature(rows [][]string, idx, j int, x [][]float64) error {
	numeric := true
	for _, rec := range rows {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		for i, rec := range rows {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
			if err != nil {
				return err
			}
			x[i][j] = v
		}
		return nil
	}

	distinct := map[string]bool{}
	for _, rec := range rows {
		distinct[strings.TrimSpace(rec[idx])] = true
	}
	values := make([]string, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Strings(values)
	codes := make(map[string]float64, len(values))
	for code, v := range values {
		codes[v] = float64(code)
	}
	for i, rec := range rows {
		x[i][j] = codes[strings.TrimSpace(rec[idx])]
	}
	return nil
}
