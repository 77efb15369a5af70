// Package projectionbox is a supervised rule-learning core: it enumerates
// axis-aligned rectangles ("projection boxes") over pairs of numeric
// features and returns the ones that separate a homogeneous subset of rows
// from the rest, producing either a full feature map or a validated,
// human-readable decision list.
//
// What is projectionbox?
//
//	A dependency-light algorithms core that brings together:
//
//	  • Equal-count histograms over sorted feature columns
//	  • An implicit segment tree that finds the best admissible interval
//	    in O(B·N·log B) time per feature pair
//	  • A greedy, validation-gated decision-list builder
//	  • A first-match predictor with an optional external-model fallback
//
// Everything lives in focused subpackages, mirroring how this module's
// own teacher organizes a small algorithms library:
//
//	dataset/      — the dense feature matrix, target column, and training-row selector
//	histogram/    — per-attribute equal-count bins and the classification/regression aggregators
//	recttree/     — the best-rectangle segment tree
//	projection/   — the Projection record and FeatureMap collection
//	search/       — the concurrent 2-D sweep that builds a full FeatureMap
//	decisionlist/ — the greedy, validation-gated rule builder
//	predict/      — applying a fitted FeatureMap to new rows
//	persist/      — MessagePack round-tripping of a fitted model
//	labelencode/  — sorted string-label <-> class-index encoding
//
// cmd/projectionbox wires these into a cobra CLI (fit/predict/coverage)
// over a CSV ingestion adapter.
//
//	go get github.com/arborly/projectionbox
package projectionbox
