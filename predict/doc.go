// Package predict applies a fitted projection.FeatureMap (typically a
// decision list) to new rows: the first rectangle containing a row wins;
// unmatched rows fall back to a default value or an external model.
package predict
