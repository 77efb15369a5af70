package histogram

// Mode selects the regression scoring criterion (§4.2). Classification
// always scores by purity regardless of Mode.
type Mode int

const (
	// LowVariance scores a range by its negative variance (lower variance
	// wins); matches the source's default numeric mode.
	LowVariance Mode = iota
	// HighMean scores a range by its mean (higher wins).
	HighMean
	// LowMean scores a range by its negative mean (lower wins).
	LowMean
)

// Stats is the aggregate over a contiguous range of bins: per-class counts
// for classification, sum/sum-of-squares for regression. Both fields are
// always present on the value so Merge never needs to branch on task —
// whichever ones are unused for the active task simply stay zero.
type Stats struct {
	Total       int
	ClassCounts []int // length == number of classes; nil/zero for regression
	Sum         float64
	SumSq       float64
}

// Merge returns the componentwise union of s and other: the aggregate you'd
// get from combining two disjoint row sets. It is the single O(1) (O(K) for
// K classes) primitive recttree's merge builds every composite node from.
func (s Stats) Merge(other Stats) Stats {
	out := Stats{Total: s.Total + other.Total, Sum: s.Sum + other.Sum, SumSq: s.SumSq + other.SumSq}
	if len(s.ClassCounts) > 0 || len(other.ClassCounts) > 0 {
		n := len(s.ClassCounts)
		if len(other.ClassCounts) > n {
			n = len(other.ClassCounts)
		}
		out.ClassCounts = make([]int, n)
		for i := 0; i < len(s.ClassCounts); i++ {
			out.ClassCounts[i] += s.ClassCounts[i]
		}
		for i := 0; i < len(other.ClassCounts); i++ {
			out.ClassCounts[i] += other.ClassCounts[i]
		}
	}
	return out
}

// Mean returns Sum/Total, or 0 if Total is 0.
func (s Stats) Mean() float64 {
	if s.Total == 0 {
		return 0
	}
	return s.Sum / float64(s.Total)
}

// Variance returns SumSq/Total - Mean^2, or 0 if Total is 0.
func (s Stats) Variance() float64 {
	if s.Total == 0 {
		return 0
	}
	mean := s.Mean()
	v := s.SumSq/float64(s.Total) - mean*mean
	if v < 0 {
		// Guards against a hair of floating-point error pushing variance
		// just under zero for near-constant ranges.
		v = 0
	}
	return v
}

// MajorityClass returns the index of the largest entry in ClassCounts and
// its count. Ties break toward the smaller class index for determinism.
func (s Stats) MajorityClass() (class, count int) {
	count = -1
	for c, n := range s.ClassCounts {
		if n > count {
			class, count = c, n
		}
	}
	if count < 0 {
		count = 0
	}
	return class, count
}

// Aggregator is the capability trait both histogram variants implement:
// maintain per-bin statistics under row add/remove, and score/label/admit
// a merged range. recttree calls Admissible/Score on every leaf and every
// merged candidate range it builds as leaves change; the search package
// calls Label on the winning range. AddRow/RemoveRow are the O(1) hot path
// driven by the sweep in the search package.
type Aggregator interface {
	// AddRow adds row's contribution to its bin and returns the bin index
	// and the bin's updated Stats.
	AddRow(row int) (bin int, updated Stats)
	// RemoveRow is the inverse of AddRow.
	RemoveRow(row int) (bin int, updated Stats)
	// Admissible reports whether a merged range's Stats passes the
	// configured support/purity threshold.
	Admissible(Stats) bool
	// Score returns (score, tiebreak) for a merged range's Stats, ordered
	// so higher is better on both components.
	Score(Stats) (score, tiebreak float64)
	// Label returns the projection's derived metric for a merged range:
	// majority class for classification, the range's mean for regression
	// (whatever the Mode).
	Label(Stats) float64
	// NumBins returns the configured bin count B for this attribute.
	NumBins() int
}

// BinEdge holds the real-valued [min,max] span of one equal-count bin.
type BinEdge struct {
	Min, Max float64
}

// Bins holds the equal-count partition of one attribute's active rows:
// which bin each row falls into, and each bin's value-space edges.
type Bins struct {
	Edges  []BinEdge
	RowBin []int // len == dataset.NumRows(); -1 for rows outside the active set
}
