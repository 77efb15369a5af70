package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/projectionbox/dataset"
)

func TestNew_ValidatesShape(t *testing.T) {
	r := require.New(t)

	_, err := dataset.New(nil, nil, dataset.Classification)
	r.ErrorIs(err, dataset.ErrInvalidInput)

	_, err = dataset.New([][]float64{{1, 2}, {3}}, []float64{0, 1}, dataset.Classification)
	r.ErrorIs(err, dataset.ErrInvalidInput)

	_, err = dataset.New([][]float64{{1, 2}}, []float64{0, 1}, dataset.Classification)
	r.ErrorIs(err, dataset.ErrInvalidInput)

	_, err = dataset.New([][]float64{{1, math.NaN()}}, []float64{0}, dataset.Classification)
	r.ErrorIs(err, dataset.ErrInvalidInput)

	ds, err := dataset.New([][]float64{{1, 2}, {3, 4}}, []float64{0, 1}, dataset.Classification)
	r.NoError(err)
	r.Equal(2, ds.NumRows())
	r.Equal(2, ds.NumCols())
}

func TestPerm_SortsAscending(t *testing.T) {
	r := require.New(t)
	matrix := [][]float64{{3}, {1}, {2}}
	ds, err := dataset.New(matrix, []float64{0, 0, 0}, dataset.Regression)
	r.NoError(err)

	perm := ds.Perm(0)
	r.Equal([]int{1, 2, 0}, perm)
}

func TestSetTrainingRows_RestrictsActiveSet(t *testing.T) {
	r := require.New(t)
	matrix := [][]float64{{1}, {2}, {3}, {4}}
	ds, err := dataset.New(matrix, []float64{0, 0, 1, 1}, dataset.Classification)
	r.NoError(err)

	r.Equal(4, ds.NumActive())
	ds.SetTrainingRows([]int{0, 1})
	r.Equal(2, ds.NumActive())
	r.ElementsMatch([]int{0, 1}, ds.ActiveRows())

	ds.SetTrainingRows(nil)
	r.Equal(4, ds.NumActive())
}

func TestSetTrainingRows_PanicsOnOutOfRange(t *testing.T) {
	r := require.New(t)
	ds, err := dataset.New([][]float64{{1}}, []float64{0}, dataset.Classification)
	r.NoError(err)

	r.Panics(func() { ds.SetTrainingRows([]int{5}) })
}

func TestDefaultValue_ClassificationIsModalClass(t *testing.T) {
	r := require.New(t)
	matrix := [][]float64{{0}, {0}, {0}, {0}}
	target := []float64{0, 1, 1, 1}
	ds, err := dataset.New(matrix, target, dataset.Classification)
	r.NoError(err)

	r.Equal(1.0, ds.DefaultValue())
}

func TestDefaultValue_RegressionIsMean(t *testing.T) {
	r := require.New(t)
	matrix := [][]float64{{0}, {0}, {0}}
	target := []float64{1, 2, 3}
	ds, err := dataset.New(matrix, target, dataset.Regression)
	r.NoError(err)

	r.InDelta(2.0, ds.DefaultValue(), 1e-9)
}

func TestValueAndTarget_Accessors(t *testing.T) {
	r := require.New(t)
	matrix := [][]float64{{1, 2}, {3, 4}}
	ds, err := dataset.New(matrix, []float64{10, 20}, dataset.Regression)
	r.NoError(err)

	r.Equal(4.0, ds.Value(1, 1))
	r.Equal(20.0, ds.Target(1))
	r.Panics(func() { ds.Value(5, 0) })
	r.Panics(func() { ds.Target(-1) })
}
