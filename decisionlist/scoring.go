package decisionlist

import (
	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
	"github.com/arborly/projectionbox/projection"
	"github.com/arborly/projectionbox/search"
)

// scoreStats applies §4.2's admissibility/scoring criteria directly to a
// recomputed Stats value, mirroring histogram.Discrete/Numeric without
// needing a live Aggregator — the greedy loop only ever scores already-
// merged Stats over a shrinking uncovered row set, never builds bins.
func scoreStats(s histogram.Stats, task dataset.Task, hp search.Hyperparams) (admissible bool, score, tie float64) {
	tie = float64(s.Total)
	if s.Total == 0 {
		return false, 0, 0
	}
	if task == dataset.Classification {
		_, count := s.MajorityClass()
		purity := float64(count) / float64(s.Total)
		return s.Total >= hp.Support && purity >= hp.Purity, purity, tie
	}
	mean := s.Mean()
	switch hp.Mode {
	case histogram.HighMean:
		score = mean
	case histogram.LowMean:
		score = -mean
	default:
		score = -s.Variance()
	}
	return s.Total >= hp.Support, score, tie
}

// statsOverUncovered recomputes candidate's aggregate restricted to the
// rows in rows that are not yet in covered and that fall inside
// candidate's rectangle — step 3a's "score every remaining candidate on
// the current uncovered training rows".
func statsOverUncovered(ds *dataset.Dataset, rows []int, covered map[int]bool, candidate projection.Projection, numClasses int) histogram.Stats {
	s := histogram.Stats{}
	if numClasses > 0 {
		s.ClassCounts = make([]int, numClasses)
	}
	for _, row := range rows {
		if covered[row] || !candidate.PointLiesIn(ds, row) {
			continue
		}
		s.Total++
		if numClasses > 0 {
			s.ClassCounts[int(ds.Target(row))]++
		} else {
			v := ds.Target(row)
			s.Sum += v
			s.SumSq += v * v
		}
	}
	return s
}

// rectangleArea is the second greedy tiebreak ("smaller rectangle").
func rectangleArea(p projection.Projection) float64 {
	return (p.Att1End - p.Att1Start) * (p.Att2End - p.Att2Start)
}
