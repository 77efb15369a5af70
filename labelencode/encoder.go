package labelencode

import "sort"

// Encoder maps string labels to dense float64 class indices, assigned by
// sorting the distinct labels seen in Fit — the same ordering
// sklearn.preprocessing.LabelEncoder uses, so a caller porting a fitted
// model from the original pipeline gets the same index assignment.
type Encoder struct {
	toIndex map[string]float64
	toLabel []string
}

// Fit assigns each distinct label in labels an index (0, 1, 2, ...) in
// sorted order, and returns the per-row encoded indices.
func (e *Encoder) Fit(labels []string) []float64 {
	seen := make(map[string]struct{})
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	unique := make([]string, 0, len(seen))
	for l := range seen {
		unique = append(unique, l)
	}
	sort.Strings(unique)

	e.toLabel = unique
	e.toIndex = make(map[string]float64, len(unique))
	for i, l := range unique {
		e.toIndex[l] = float64(i)
	}

	out := make([]float64, len(labels))
	for i, l := range labels {
		out[i] = e.toIndex[l]
	}
	return out
}

// Inverse maps encoded indices back to their original string labels.
func (e *Encoder) Inverse(indices []float64) ([]string, error) {
	out := make([]string, len(indices))
	for i, idx := range indices {
		k := int(idx)
		if k < 0 || k >= len(e.toLabel) {
			return nil, ErrUnknownLabel
		}
		out[i] = e.toLabel[k]
	}
	return out, nil
}

// Classes returns the number of distinct labels seen by the most recent Fit.
func (e *Encoder) Classes() int { return len(e.toLabel) }
