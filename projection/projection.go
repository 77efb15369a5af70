package projection

import (
	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
)

// Projection is one qualifying rectangle: the two attributes it spans,
// its bin-edge coordinates in the original feature space, the merged
// aggregate over its rows, and the derived metric (the majority class
// for classification, the mean for regression). Built once inside the
// sweep and never mutated afterward.
type Projection struct {
	Att1, Att2         int
	Att1Start, Att1End float64
	Att2Start, Att2End float64
	Stats              histogram.Stats
	Metric             float64
}

// Total returns the rectangle's row count.
func (p Projection) Total() int { return p.Stats.Total }

// Pos returns the count of the class at index 1, or 0 if the projection
// came from a regression search or has fewer than two classes. Named
// for the common binary-classification case; multi-class counts remain
// available via Stats.ClassCounts.
func (p Projection) Pos() int {
	if len(p.Stats.ClassCounts) > 1 {
		return p.Stats.ClassCounts[1]
	}
	return 0
}

// Neg returns the count of the class at index 0.
func (p Projection) Neg() int {
	if len(p.Stats.ClassCounts) > 0 {
		return p.Stats.ClassCounts[0]
	}
	return 0
}

// Coverage returns the fraction of ds's active rows this projection's
// Total represents.
func (p Projection) Coverage(ds *dataset.Dataset) float64 {
	active := ds.NumActive()
	if active == 0 {
		return 0
	}
	return float64(p.Stats.Total) / float64(active)
}

// PointLiesIn reports whether row's values on Att1/Att2 fall within this
// projection's closed rectangle, inclusive on both bounds per §3.
func (p Projection) PointLiesIn(ds *dataset.Dataset, row int) bool {
	v1 := ds.Value(row, p.Att1)
	v2 := ds.Value(row, p.Att2)
	return v1 >= p.Att1Start && v1 <= p.Att1End && v2 >= p.Att2Start && v2 <= p.Att2End
}

// FeatureMap is an ordered, append-only sequence of Projections: the
// caller-visible order in which the search produced qualifying
// rectangles (§4.3's ordering tiebreak decides the order within that).
type FeatureMap struct {
	projections []Projection
}

// NewFeatureMap returns an empty FeatureMap ready for Append.
func NewFeatureMap() *FeatureMap {
	return &FeatureMap{}
}

// Append adds p to the end of the map. Not safe for concurrent use;
// callers (search's accumulator) serialize appends behind a mutex.
func (fm *FeatureMap) Append(p Projection) {
	fm.projections = append(fm.projections, p)
}

// Len returns the number of projections.
func (fm *FeatureMap) Len() int { return len(fm.projections) }

// Get returns the i'th projection and whether i was in range.
func (fm *FeatureMap) Get(i int) (Projection, bool) {
	if i < 0 || i >= len(fm.projections) {
		return Projection{}, false
	}
	return fm.projections[i], true
}

// All returns a read-only snapshot of every projection, in order.
func (fm *FeatureMap) All() []Projection {
	out := make([]Projection, len(fm.projections))
	copy(out, fm.projections)
	return out
}
