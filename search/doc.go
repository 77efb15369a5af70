// Package search coordinates the 2-D sweep over every ordered pair of
// features: for each pair it builds private histograms and a
// recttree.Tree, runs the expand/shrink schedule from histogram/recttree,
// and flushes qualifying projections into a shared projection.FeatureMap
// under a single mutex. Pairs run concurrently across a bounded worker
// pool (golang.org/x/sync/errgroup); within a pair, everything is
// sequential.
package search
