package dataset

import (
	"fmt"
	"math"
	"sort"
)

// New builds a Dataset from a dense row-major matrix and a target column.
//
// matrix[i] is the i'th row, all rows must share the same length (cols).
// target must have exactly len(matrix) entries. Every value must be finite;
// NaN/±Inf anywhere triggers ErrInvalidInput, per the Non-goal that the core
// never tolerates missing or non-finite data (callers guarantee that).
//
// Complexity: O(rows*cols*log(rows)) — one stable sort per column to build
// the ascending permutation used later by histogram bin construction.
func New(matrix [][]float64, target []float64, task Task) (*Dataset, error) {
	rows := len(matrix)
	if rows == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidInput)
	}
	cols := len(matrix[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: zero columns", ErrInvalidInput)
	}
	if len(target) != rows {
		return nil, fmt.Errorf("%w: target length %d != row count %d", ErrInvalidInput, len(target), rows)
	}

	flat := make([]float64, rows*cols)
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: ragged row %d (len %d, want %d)", ErrInvalidInput, i, len(row), cols)
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, fmt.Errorf("%w: non-finite value at row %d col %d", ErrInvalidInput, i, j)
			}
			flat[i*cols+j] = v
		}
	}
	for i, v := range target {
		if !isFinite(v) {
			return nil, fmt.Errorf("%w: non-finite target at row %d", ErrInvalidInput, i)
		}
		_ = v
		_ = i
	}

	ds := &Dataset{
		rows:   rows,
		cols:   cols,
		task:   task,
		matrix: flat,
		target: append([]float64(nil), target...),
		perm:   make([][]int, cols),
	}
	for d := 0; d < cols; d++ {
		ds.perm[d] = ds.sortedRowsByColumn(d)
	}
	return ds, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sortedRowsByColumn returns row indices sorted ascending by matrix[:,d],
// using a stable sort so equal values keep their original relative order —
// required for the determinism guarantee in §8 (single-thread byte-identical
// runs) when many rows tie on the same feature value.
func (ds *Dataset) sortedRowsByColumn(d int) []int {
	idx := make([]int, ds.rows)
	for i := range idx {
		idx[i] = i
	}
	col := d
	m := ds.matrix
	c := ds.cols
	sort.SliceStable(idx, func(a, b int) bool {
		return m[idx[a]*c+col] < m[idx[b]*c+col]
	})
	return idx
}

// SetTrainingRows restricts every subsequent search/histogram operation to
// the given row indices. Passing nil (or calling it never) means "all rows
// are active". Indices outside [0, NumRows) panic, since this is always a
// caller/programmer error, not a data error.
func (ds *Dataset) SetTrainingRows(rows []int) {
	if rows == nil {
		ds.active = nil
		return
	}
	cp := make([]int, len(rows))
	for i, r := range rows {
		if r < 0 || r >= ds.rows {
			panic(fmt.Sprintf("dataset: training row %d out of range [0,%d)", r, ds.rows))
		}
		cp[i] = r
	}
	ds.active = cp
}

// ActiveRows returns the current training-row selector. If none was set,
// it synthesizes the full row range so callers never need a nil check.
func (ds *Dataset) ActiveRows() []int {
	if ds.active == nil {
		all := make([]int, ds.rows)
		for i := range all {
			all[i] = i
		}
		return all
	}
	return append([]int(nil), ds.active...)
}

// NumActive reports how many rows currently participate in search.
func (ds *Dataset) NumActive() int {
	if ds.active == nil {
		return ds.rows
	}
	return len(ds.active)
}

// Perm returns the full (all-rows) ascending sort permutation for column d.
// Histogram construction filters this down to the active subset itself,
// preserving the permutation's relative order.
func (ds *Dataset) Perm(d int) []int {
	return ds.perm[d]
}

// Value returns matrix[row][col]. Panics on out-of-range indices.
func (ds *Dataset) Value(row, col int) float64 {
	if row < 0 || row >= ds.rows || col < 0 || col >= ds.cols {
		panic(fmt.Sprintf("dataset: Value(%d,%d) out of range", row, col))
	}
	return ds.matrix[row*ds.cols+col]
}

// Target returns target[row]. Panics on out-of-range index.
func (ds *Dataset) Target(row int) float64 {
	if row < 0 || row >= ds.rows {
		panic(fmt.Sprintf("dataset: Target(%d) out of range", row))
	}
	return ds.target[row]
}

// DefaultValue returns the fallback prediction for rows no projection
// matches: the modal class among active rows for Classification, the mean
// for Regression.
func (ds *Dataset) DefaultValue() float64 {
	active := ds.ActiveRows()
	if len(active) == 0 {
		return 0
	}
	switch ds.task {
	case Classification:
		counts := make(map[int]int, 8)
		for _, r := range active {
			counts[int(ds.target[r])]++
		}
		best, bestCount := 0, -1
		// Deterministic tie-break: smallest class index wins, so repeated
		// calls on identical data always return the same default.
		keys := make([]int, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		for _, k := range keys {
			if counts[k] > bestCount {
				best, bestCount = k, counts[k]
			}
		}
		return float64(best)
	default: // Regression
		var sum float64
		for _, r := range active {
			sum += ds.target[r]
		}
		return sum / float64(len(active))
	}
}
