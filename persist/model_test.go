package persist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/projectionbox/dataset"
	"github.com/arborly/projectionbox/histogram"
	"github.com/arborly/projectionbox/persist"
	"github.com/arborly/projectionbox/projection"
)

func TestSaveLoad_RoundTripsExactBinEdges(t *testing.T) {
	r := require.New(t)
	fm := projection.NewFeatureMap()
	fm.Append(projection.Projection{
		Att1: 0, Att2: 1,
		Att1Start: 0.123456789, Att1End: 0.987654321,
		Att2Start: -1.5, Att2End: 2.5,
		Stats:  histogram.Stats{Total: 10, ClassCounts: []int{3, 7}},
		Metric: 1,
	})

	model := persist.FromFeatureMap(fm, dataset.Classification, 0, []string{"no", "yes"})
	b, err := persist.Save(model)
	r.NoError(err)

	loaded, err := persist.Load(b)
	r.NoError(err)
	r.Equal(dataset.Classification, loaded.Task)
	r.Equal([]string{"no", "yes"}, loaded.Labels)
	r.NotEmpty(loaded.ID)
	r.Equal(model.ID, loaded.ID)

	got := loaded.FeatureMap()
	r.Equal(1, got.Len())
	p, _ := got.Get(0)
	r.Equal(0.123456789, p.Att1Start)
	r.Equal(0.987654321, p.Att1End)
	r.Equal(10, p.Stats.Total)
	r.Equal([]int{3, 7}, p.Stats.ClassCounts)
}

func TestLoad_RejectsCorruptBytes(t *testing.T) {
	r := require.New(t)
	_, err := persist.Load([]byte{0xff, 0xff, 0xff})
	r.ErrorIs(err, persist.ErrCorrupt)
}
