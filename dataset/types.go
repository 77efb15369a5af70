package dataset

// Task selects how the target column is interpreted.
type Task int

const (
	// Classification treats target values as encoded class indices
	// (0, 1, 2, ...); caller performs any string-label encoding upstream.
	Classification Task = iota
	// Regression treats target values as real-valued outputs.
	Regression
)

// String implements fmt.Stringer for readable logs and error messages.
func (t Task) String() string {
	switch t {
	case Classification:
		return "classification"
	case Regression:
		return "regression"
	default:
		return "unknown"
	}
}

// Dataset owns a dense row-major feature matrix, a target column, and a
// per-attribute sort permutation used by histogram construction. It is
// read-only after New except for the training-row selector.
type Dataset struct {
	rows, cols int
	task       Task

	matrix []float64 // row-major, len == rows*cols
	target []float64 // len == rows

	perm [][]int // perm[d] sorts row indices ascending by matrix[:,d]

	active []int // training-row selector; nil means "all rows"
}

// NumRows returns the total number of rows (independent of the active set).
func (ds *Dataset) NumRows() int { return ds.rows }

// NumCols returns the number of feature columns (attributes).
func (ds *Dataset) NumCols() int { return ds.cols }

// Task returns the configured task for this Dataset.
func (ds *Dataset) Task() Task { return ds.task }
