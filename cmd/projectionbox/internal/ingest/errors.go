package ingest

import "errors"

// ErrEmptyFile is returned when a CSV has a header but no data rows.
var ErrEmptyFile = errors.New("ingest: csv has no data rows")

// ErrColumnNotFound is returned when the requested target column header
// does not appear in the CSV.
var ErrColumnNotFound = errors.New("ingest: target column not found")
