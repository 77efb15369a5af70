package dataset

import "errors"

// Sentinel errors returned by the dataset package. Callers should match
// with errors.Is; messages are prefixed with "dataset: " for grepability.
var (
	// ErrInvalidInput indicates the matrix/target shape or values are unusable:
	// empty matrix, ragged rows, non-finite values, or a target length mismatch.
	ErrInvalidInput = errors.New("dataset: invalid input")

	// ErrIndexOutOfRange indicates a row or column index outside [0, N) / [0, D).
	ErrIndexOutOfRange = errors.New("dataset: index out of range")
)
