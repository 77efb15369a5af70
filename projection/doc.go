// Package projection holds the immutable output of a search: a single
// axis-aligned rectangle over two features (a Projection) and the
// ordered sequence the search engine accumulates them into (FeatureMap).
package projection
