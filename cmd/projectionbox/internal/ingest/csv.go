package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/labelencode"
)

// Result bundles the parsed Dataset with the feature-column headers and,
// for a classification target, the Encoder that produced the numeric
// class indices (nil for regression).
type Result struct {
	Dataset  *dataset.Dataset
	Features []string
	Encoder  *labelencode.Encoder
}

// ReadCSV parses r as a header row plus numeric feature columns and one
// target column named targetColumn. For task == dataset.Classification
// the target column is read as strings and run through a fresh
// labelencode.Encoder; for dataset.Regression it is parsed as float64
// directly.
func ReadCSV(r io.Reader, targetColumn string, task dataset.Task) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}

	targetIdx := -1
	for i, h := range header {
		if h == targetColumn {
			targetIdx = i
			break
		}
	}
	if targetIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, targetColumn)
	}

	features := make([]string, 0, len(header)-1)
	for i, h := range header {
		if i != targetIdx {
			features = append(features, h)
		}
	}

	var matrix [][]float64
	var rawTargets []string
	var numericTargets []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}

		row := make([]float64, 0, len(features))
		for i, field := range record {
			if i == targetIdx {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("ingest: parse feature %q: %w", header[i], err)
			}
			row = append(row, v)
		}
		matrix = append(matrix, row)

		if task == dataset.Classification {
			rawTargets = append(rawTargets, record[targetIdx])
		} else {
			v, err := strconv.ParseFloat(record[targetIdx], 64)
			if err != nil {
				return nil, fmt.Errorf("ingest: parse target %q: %w", targetColumn, err)
			}
			numericTargets = append(numericTargets, v)
		}
	}

	if len(matrix) == 0 {
		return nil, ErrEmptyFile
	}

	var encoder *labelencode.Encoder
	target := numericTargets
	if task == dataset.Classification {
		encoder = &labelencode.Encoder{}
		target = encoder.Fit(rawTargets)
	}

	ds, err := dataset.New(matrix, target, task)
	if err != nil {
		return nil, err
	}
	return &Result{Dataset: ds, Features: features, Encoder: encoder}, nil
}
