// Package dataset owns the dense feature matrix and target column that the
// projection-box search operates over.
//
// A Dataset is immutable after construction except for its training-row
// selector (SetTrainingRows): the matrix, target, and per-attribute sort
// permutations never change once New returns. This lets search hold a
// *Dataset across many goroutines without synchronization — every read is
// safe because nothing else is writing.
//
// Complexity: New is O(rows*cols*log(rows)) (one stable sort per column).
// All accessors are O(1).
package dataset
