package decisionlist_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/decisionlist"
	"github.com/arborly/projectionbox/search"
)

// rectangleDataset builds S2 from §8's scenarios: label = 1 iff
// x in [0.2, 0.4] and y in [0.6, 0.8], 0 otherwise, uniform elsewhere.
func rectangleDataset(t *testing.T, n int, seed int64) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	matrix := make([][]float64, n)
	target := make([]float64, n)
	for i := range matrix {
		x, y := rng.Float64(), rng.Float64()
		matrix[i] = []float64{x, y}
		if x >= 0.2 && x <= 0.4 && y >= 0.6 && y <= 0.8 {
			target[i] = 1
		}
	}
	ds, err := dataset.New(matrix, target, dataset.Classification)
	require.NoError(t, err)
	return ds
}

func TestBuilder_FindsRectangleOverlappingPlantedRegion(t *testing.T) {
	r := require.New(t)
	ds := rectangleDataset(t, 2000, 11)

	hp := search.Hyperparams{Binsize: 20, Support: 15, Purity: 0.8, Threads: 1}
	b := decisionlist.NewBuilder()
	fm, err := b.Build(context.Background(), ds, nil, hp, 0.2, 5)
	r.NoError(err)
	r.Greater(fm.Len(), 0)

	const plantedArea = 0.2 * 0.2 // (0.4-0.2)*(0.8-0.6)
	best := fm.All()[0]
	overlapX := overlap1D(best.Att1Start, best.Att1End, 0.2, 0.4)
	overlapY := overlap1D(best.Att2Start, best.Att2End, 0.6, 0.8)
	overlapArea := overlapX * overlapY

	r.GreaterOrEqual(overlapArea/plantedArea, 0.8)
}

func overlap1D(aStart, aEnd, bStart, bEnd float64) float64 {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func TestBuilder_EmptyModelWhenNoCandidateImprovesValidation(t *testing.T) {
	r := require.New(t)
	rng := rand.New(rand.NewSource(21))
	n := 50
	matrix := make([][]float64, n)
	target := make([]float64, n)
	for i := range matrix {
		matrix[i] = []float64{rng.Float64(), rng.Float64()}
		if rng.Float64() < 0.5 {
			target[i] = 1
		}
	}
	ds, err := dataset.New(matrix, target, dataset.Classification)
	r.NoError(err)

	hp := search.Hyperparams{Binsize: 10, Support: 30, Purity: 0.99, Threads: 1}
	b := decisionlist.NewBuilder()
	fm, err := b.Build(context.Background(), ds, nil, hp, 0.2, 1)
	r.ErrorIs(err, decisionlist.ErrEmptyModel)
	r.NotNil(fm)
	r.Equal(0, fm.Len())
}

// majorityClassModel is a minimal stand-in for a fitted DIMSUM/sklearn-style
// baseline classifier (a DummyClassifier(strategy="most_frequent") analogue):
// Fit remembers the most common training label, Predict always returns it.
type majorityClassModel struct {
	class float64
}

func (m *majorityClassModel) Fit(_ context.Context, _ [][]float64, outputs []float64) error {
	counts := make(map[float64]int)
	for _, v := range outputs {
		counts[v]++
	}
	distinct := make([]float64, 0, len(counts))
	for v := range counts {
		distinct = append(distinct, v)
	}
	sort.Float64s(distinct)

	best, bestCount := 0.0, -1
	for _, v := range distinct {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	m.class = best
	return nil
}

func (m *majorityClassModel) Predict(_ context.Context, inputs [][]float64) ([]float64, error) {
	out := make([]float64, len(inputs))
	for i := range out {
		out[i] = m.class
	}
	return out, nil
}

func TestOptimalCoverage_ReturnsCoverageInRange(t *testing.T) {
	r := require.New(t)
	ds := rectangleDataset(t, 1500, 13)

	hp := search.Hyperparams{Binsize: 20, Support: 15, Purity: 0.8, Threads: 1}
	coverage, err := decisionlist.OptimalCoverage(context.Background(), ds, &majorityClassModel{}, dataset.Classification, hp, 9)
	r.NoError(err)
	r.GreaterOrEqual(coverage, 0.0)
	r.LessOrEqual(coverage, 1.0)
}

func TestOptimalCoverage_RejectsMismatchedTask(t *testing.T) {
	r := require.New(t)
	ds := rectangleDataset(t, 200, 4)

	hp := search.Hyperparams{Binsize: 10, Support: 10, Purity: 0.8, Threads: 1}
	_, err := decisionlist.OptimalCoverage(context.Background(), ds, nil, dataset.Regression, hp, 1)
	r.ErrorIs(err, decisionlist.ErrTaskMismatch)
}

func TestOptimalCoverage_RejectsNilExternalModel(t *testing.T) {
	r := require.New(t)
	ds := rectangleDataset(t, 200, 4)

	hp := search.Hyperparams{Binsize: 10, Support: 10, Purity: 0.8, Threads: 1}
	_, err := decisionlist.OptimalCoverage(context.Background(), ds, nil, dataset.Classification, hp, 1)
	r.ErrorIs(err, decisionlist.ErrNoBaselineModel)
}
