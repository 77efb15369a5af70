// Package labelencode maps string class labels to/from the float64
// indices dataset.Dataset expects as target values, standing in for the
// caller-side label encoding the source delegated to
// sklearn.preprocessing.LabelEncoder. It is a small self-contained
// adapter for cmd/projectionbox's CSV ingestion path, deliberately kept
// out of the dataset/search core per the Non-goals.
package labelencode
