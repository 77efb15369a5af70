package histogram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
)

func classificationDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	matrix := [][]float64{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}}
	target := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	ds, err := dataset.New(matrix, target, dataset.Classification)
	require.NoError(t, err)
	return ds
}

func regressionDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	matrix := [][]float64{{0}, {1}, {2}, {3}, {4}, {5}}
	target := []float64{1, 2, 3, 10, 11, 12}
	ds, err := dataset.New(matrix, target, dataset.Regression)
	require.NoError(t, err)
	return ds
}

func TestBuildBins_EqualCountPartition(t *testing.T) {
	r := require.New(t)
	ds := classificationDataset(t)

	bins, err := histogram.BuildBins(ds, 0, 4)
	r.NoError(err)
	r.Len(bins.Edges, 4)
	for _, row := range ds.ActiveRows() {
		r.GreaterOrEqual(bins.RowBin[row], 0)
		r.Less(bins.RowBin[row], 4)
	}
}

func TestBuildBins_DegenerateOnTooFewRows(t *testing.T) {
	r := require.New(t)
	ds, err := dataset.New([][]float64{{1}}, []float64{0}, dataset.Classification)
	r.NoError(err)

	_, err = histogram.BuildBins(ds, 0, 2)
	r.ErrorIs(err, histogram.ErrDegenerateBins)
}

func TestBuildBins_DegenerateWhenActiveSubsetTooSmall(t *testing.T) {
	r := require.New(t)
	ds := classificationDataset(t)
	ds.SetTrainingRows([]int{0, 1})

	_, err := histogram.BuildBins(ds, 0, 4)
	r.ErrorIs(err, histogram.ErrDegenerateBins)
}

func TestDiscrete_AddRemoveRowAndAdmissibility(t *testing.T) {
	r := require.New(t)
	ds := classificationDataset(t)

	disc, err := histogram.NewDiscrete(ds, 0, 4, 2, 2, 0.75)
	r.NoError(err)
	r.Equal(4, disc.NumBins())

	var merged histogram.Stats
	for _, row := range ds.ActiveRows() {
		_, updated := disc.AddRow(row)
		bin := disc.Bins().RowBin[row]
		if bin == disc.Bins().RowBin[ds.ActiveRows()[0]] {
			merged = updated
		}
	}
	r.False(disc.Admissible(histogram.Stats{}))
	r.True(merged.Total > 0)

	_, removed := disc.RemoveRow(ds.ActiveRows()[0])
	r.Equal(merged.Total-1, removed.Total)
}

func TestDiscrete_ScoreAndLabel(t *testing.T) {
	r := require.New(t)
	ds := classificationDataset(t)
	disc, err := histogram.NewDiscrete(ds, 0, 4, 2, 1, 0.6)
	r.NoError(err)

	s := histogram.Stats{Total: 4, ClassCounts: []int{1, 3}}
	score, tiebreak := disc.Score(s)
	r.InDelta(0.75, score, 1e-9)
	r.Equal(4.0, tiebreak)
	r.Equal(1.0, disc.Label(s))
	r.True(disc.Admissible(s))

	low := histogram.Stats{Total: 4, ClassCounts: []int{2, 2}}
	r.False(disc.Admissible(low))
}

func TestNumeric_ModesScoreDifferently(t *testing.T) {
	r := require.New(t)
	ds := regressionDataset(t)

	hi, err := histogram.NewNumeric(ds, 0, 3, 1, histogram.HighMean)
	r.NoError(err)
	lo, err := histogram.NewNumeric(ds, 0, 3, 1, histogram.LowMean)
	r.NoError(err)
	variance, err := histogram.NewNumeric(ds, 0, 3, 1, histogram.LowVariance)
	r.NoError(err)

	s := histogram.Stats{Total: 3, Sum: 30, SumSq: 320}
	hiScore, _ := hi.Score(s)
	loScore, _ := lo.Score(s)
	varScore, _ := variance.Score(s)

	r.InDelta(10.0, hiScore, 1e-9)
	r.InDelta(-10.0, loScore, 1e-9)
	r.InDelta(10.0, hi.Label(s), 1e-9)
	r.LessOrEqual(varScore, 0.0)
}

func TestNumeric_EmptyStatsScoresNegativeInfinity(t *testing.T) {
	r := require.New(t)
	ds := regressionDataset(t)
	num, err := histogram.NewNumeric(ds, 0, 3, 1, histogram.HighMean)
	r.NoError(err)

	score, tiebreak := num.Score(histogram.Stats{})
	r.True(score < -1e300)
	r.Equal(0.0, tiebreak)
	r.False(num.Admissible(histogram.Stats{}))
}

func TestStats_MergeAndVariance(t *testing.T) {
	r := require.New(t)
	a := histogram.Stats{Total: 2, Sum: 4, SumSq: 10, ClassCounts: []int{1, 1}}
	b := histogram.Stats{Total: 1, Sum: 6, SumSq: 36, ClassCounts: []int{0, 1}}

	merged := a.Merge(b)
	r.Equal(3, merged.Total)
	r.Equal(10.0, merged.Sum)
	r.Equal(46.0, merged.SumSq)
	r.Equal([]int{1, 2}, merged.ClassCounts)
	r.InDelta(10.0/3.0, merged.Mean(), 1e-9)

	class, count := merged.MajorityClass()
	r.Equal(1, class)
	r.Equal(2, count)
}

func TestStats_VarianceNeverNegative(t *testing.T) {
	r := require.New(t)
	s := histogram.Stats{Total: 3, Sum: 9, SumSq: 27.0000000001}
	r.GreaterOrEqual(s.Variance(), 0.0)
}
