package projection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
	"github.com/arborly/projectionbox/projection"
)

func TestProjection_PointLiesInIsInclusiveBothBounds(t *testing.T) {
	r := require.New(t)
	ds, err := dataset.New([][]float64{{1, 1}, {2, 2}, {3, 3}}, []float64{0, 0, 1}, dataset.Classification)
	r.NoError(err)

	p := projection.Projection{
		Att1: 0, Att2: 1,
		Att1Start: 1, Att1End: 2,
		Att2Start: 1, Att2End: 2,
		Stats: histogram.Stats{Total: 2, ClassCounts: []int{2, 0}},
	}
	r.True(p.PointLiesIn(ds, 0))
	r.True(p.PointLiesIn(ds, 1))
	r.False(p.PointLiesIn(ds, 2))
}

func TestProjection_CoverageAndAccessors(t *testing.T) {
	r := require.New(t)
	ds, err := dataset.New([][]float64{{1}, {2}, {3}, {4}}, []float64{0, 0, 1, 1}, dataset.Classification)
	r.NoError(err)

	p := projection.Projection{Stats: histogram.Stats{Total: 2, ClassCounts: []int{1, 1}}}
	r.Equal(2, p.Total())
	r.Equal(1, p.Pos())
	r.Equal(1, p.Neg())
	r.InDelta(0.5, p.Coverage(ds), 1e-9)
}

func TestFeatureMap_AppendLenGet(t *testing.T) {
	r := require.New(t)
	fm := projection.NewFeatureMap()
	r.Equal(0, fm.Len())

	fm.Append(projection.Projection{Att1: 0, Att2: 1})
	fm.Append(projection.Projection{Att1: 2, Att2: 3})
	r.Equal(2, fm.Len())

	got, ok := fm.Get(1)
	r.True(ok)
	r.Equal(2, got.Att1)

	_, ok = fm.Get(5)
	r.False(ok)

	all := fm.All()
	r.Len(all, 2)
}
