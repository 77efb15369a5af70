package histogram

import "github.com/arborly/projectionbox/dataset"

// Discrete is the classification Aggregator: per-bin per-class counts,
// scored by purity (majority-class fraction) with support as tiebreak.
type Discrete struct {
	ds         *dataset.Dataset
	bins       *Bins
	numClasses int
	support    int
	purity     float64

	binStats []Stats // live per-bin aggregate, mutated by AddRow/RemoveRow
}

// NewDiscrete builds bins for column col and a Discrete aggregator with no
// rows added yet — the caller (search's sweep) adds rows incrementally as
// the outer window slides, per §4.3.
func NewDiscrete(ds *dataset.Dataset, col, binsize, numClasses, support int, purity float64) (*Discrete, error) {
	bins, err := BuildBins(ds, col, binsize)
	if err != nil {
		return nil, err
	}
	binStats := make([]Stats, binsize)
	for i := range binStats {
		binStats[i] = Stats{ClassCounts: make([]int, numClasses)}
	}
	return &Discrete{
		ds: ds, bins: bins, numClasses: numClasses,
		support: support, purity: purity, binStats: binStats,
	}, nil
}

// Bins returns the underlying bin partition (edges + row assignment).
func (d *Discrete) Bins() *Bins { return d.bins }

// AddRow implements Aggregator.
func (d *Discrete) AddRow(row int) (int, Stats) {
	bin := d.bins.RowBin[row]
	class := int(d.ds.Target(row))
	d.binStats[bin].Total++
	d.binStats[bin].ClassCounts[class]++
	return bin, d.binStats[bin]
}

// RemoveRow implements Aggregator.
func (d *Discrete) RemoveRow(row int) (int, Stats) {
	bin := d.bins.RowBin[row]
	class := int(d.ds.Target(row))
	d.binStats[bin].Total--
	d.binStats[bin].ClassCounts[class]--
	return bin, d.binStats[bin]
}

// Admissible implements Aggregator: total >= support AND purity >= configured
// threshold, per §4.2.
func (d *Discrete) Admissible(s Stats) bool {
	if s.Total == 0 || s.Total < d.support {
		return false
	}
	_, count := s.MajorityClass()
	return float64(count)/float64(s.Total) >= d.purity
}

// Score implements Aggregator: purity as score, total as tiebreak.
func (d *Discrete) Score(s Stats) (score, tiebreak float64) {
	if s.Total == 0 {
		return 0, 0
	}
	_, count := s.MajorityClass()
	return float64(count) / float64(s.Total), float64(s.Total)
}

// Label implements Aggregator: the majority class index.
func (d *Discrete) Label(s Stats) float64 {
	class, _ := s.MajorityClass()
	return float64(class)
}

// NumBins implements Aggregator.
func (d *Discrete) NumBins() int { return len(d.binStats) }
