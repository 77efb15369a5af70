package histogram

import (
	"math"

	"github.com/arborly/projectionbox/dataset"
)

// Numeric is the regression Aggregator: per-bin (count, sum, sum_sq),
// scored by mean/−mean/−variance depending on Mode.
type Numeric struct {
	ds      *dataset.Dataset
	bins    *Bins
	support int
	mode    Mode

	binStats []Stats
}

// NewNumeric builds bins for column col and a Numeric aggregator with no
// rows added yet, mirroring NewDiscrete.
func NewNumeric(ds *dataset.Dataset, col, binsize, support int, mode Mode) (*Numeric, error) {
	bins, err := BuildBins(ds, col, binsize)
	if err != nil {
		return nil, err
	}
	return &Numeric{
		ds: ds, bins: bins, support: support, mode: mode,
		binStats: make([]Stats, binsize),
	}, nil
}

// Bins returns the underlying bin partition.
func (n *Numeric) Bins() *Bins { return n.bins }

// AddRow implements Aggregator.
func (n *Numeric) AddRow(row int) (int, Stats) {
	bin := n.bins.RowBin[row]
	v := n.ds.Target(row)
	n.binStats[bin].Total++
	n.binStats[bin].Sum += v
	n.binStats[bin].SumSq += v * v
	return bin, n.binStats[bin]
}

// RemoveRow implements Aggregator.
func (n *Numeric) RemoveRow(row int) (int, Stats) {
	bin := n.bins.RowBin[row]
	v := n.ds.Target(row)
	n.binStats[bin].Total--
	n.binStats[bin].Sum -= v
	n.binStats[bin].SumSq -= v * v
	return bin, n.binStats[bin]
}

// Admissible implements Aggregator: total >= support, per §4.2 (regression
// has no purity threshold).
func (n *Numeric) Admissible(s Stats) bool {
	return s.Total >= n.support && s.Total > 0
}

// Score implements Aggregator. Tiebreak is always total (support), mirroring
// the classification tiebreak rule from §4.3.
func (n *Numeric) Score(s Stats) (score, tiebreak float64) {
	if s.Total == 0 {
		return negInfForMode(n.mode), 0
	}
	mean := s.Mean()
	switch n.mode {
	case HighMean:
		return mean, float64(s.Total)
	case LowMean:
		return -mean, float64(s.Total)
	default: // LowVariance
		return -s.Variance(), float64(s.Total)
	}
}

// Label implements Aggregator: the range's mean, regardless of Mode. Mode
// only steers which bins Score prefers during the sweep (LowVariance picks
// tighter rectangles); whatever rectangle wins, the value a caller predicts
// for a row inside it is still its mean, never its variance.
func (n *Numeric) Label(s Stats) float64 {
	return s.Mean()
}

// NumBins implements Aggregator.
func (n *Numeric) NumBins() int { return len(n.binStats) }

func negInfForMode(_ Mode) float64 {
	return math.Inf(-1)
}
