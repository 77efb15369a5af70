package search

import (
	"errors"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
	"github.com/arborly/projectionbox/projection"
	"github.com/arborly/projectionbox/recttree"
)

// binsProvider is implemented by both histogram.Discrete and
// histogram.Numeric; sweepPair uses it to recover an inner aggregator's
// bin edges for translating a winning Range back into feature-space
// coordinates.
type binsProvider interface {
	Bins() *histogram.Bins
}

// sweepPair runs the full expand/shrink schedule of §4.3 for one ordered
// feature pair, returning every qualifying projection it found. A nil,
// nil result (no error, no projections) means the pair degenerated
// (too few active rows to fill every bin) and was silently skipped per §4.4.
func sweepPair(ds *dataset.Dataset, a1, a2 int, hp Hyperparams, classes int) ([]projection.Projection, error) {
	outerBins, err := histogram.BuildBins(ds, a1, hp.Binsize)
	if err != nil {
		if errors.Is(err, histogram.ErrDegenerateBins) {
			return nil, nil
		}
		return nil, err
	}

	if _, err := newInnerAggregator(ds, a2, hp, classes); err != nil {
		if errors.Is(err, histogram.ErrDegenerateBins) {
			return nil, nil
		}
		return nil, err
	}

	b1 := len(outerBins.Edges)
	active := ds.ActiveRows()
	rowsByOuterBin := make([][]int, b1)
	for _, row := range active {
		b := outerBins.RowBin[row]
		if b < 0 {
			continue
		}
		rowsByOuterBin[b] = append(rowsByOuterBin[b], row)
	}

	var results []projection.Projection
	for i := 0; i < b1; i++ {
		innerAgg, err := newInnerAggregator(ds, a2, hp, classes)
		if err != nil {
			return nil, err
		}
		innerBins := innerAgg.(binsProvider).Bins()
		tree := recttree.New(innerAgg.NumBins(), innerAgg)

		for j := i; j < b1; j++ {
			for _, row := range rowsByOuterBin[j] {
				bin, stats := innerAgg.AddRow(row)
				if err := tree.SetLeaf(bin, stats); err != nil {
					return nil, err
				}
			}
			if best, found := tree.Best(); found {
				// A single-bin range shares its class counts with the live
				// aggregator, which later AddRow calls mutate; keep a copy.
				stats := best.Stats
				stats.ClassCounts = append([]int(nil), best.Stats.ClassCounts...)
				results = append(results, projection.Projection{
					Att1: a1, Att2: a2,
					Att1Start: outerBins.Edges[i].Min, Att1End: outerBins.Edges[j].Max,
					Att2Start: innerBins.Edges[best.Start].Min, Att2End: innerBins.Edges[best.End].Max,
					Stats:  stats,
					Metric: innerAgg.Label(stats),
				})
			}
		}
	}
	return results, nil
}

// newInnerAggregator builds a fresh, empty histogram.Aggregator for
// column col, dispatching on the dataset's task.
func newInnerAggregator(ds *dataset.Dataset, col int, hp Hyperparams, classes int) (histogram.Aggregator, error) {
	if ds.Task() == dataset.Classification {
		return histogram.NewDiscrete(ds, col, hp.Binsize, classes, hp.Support, hp.Purity)
	}
	return histogram.NewNumeric(ds, col, hp.Binsize, hp.Support, hp.Mode)
}

// numClasses scans ds's active rows and returns one past the largest
// encoded class index, the count Discrete aggregators need to size
// their per-bin class-count vectors.
func numClasses(ds *dataset.Dataset) int {
	max := -1
	for _, row := range ds.ActiveRows() {
		if c := int(ds.Target(row)); c > max {
			max = c
		}
	}
	return max + 1
}
