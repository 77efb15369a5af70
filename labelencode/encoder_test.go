package labelencode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/projectionbox/labelencode"
)

func TestEncoder_FitAssignsSortedIndices(t *testing.T) {
	r := require.New(t)
	var e labelencode.Encoder

	got := e.Fit([]string{"cat", "dog", "ant", "dog"})
	r.Equal([]float64{1, 2, 0, 2}, got) // ant=0, cat=1, dog=2
	r.Equal(3, e.Classes())
}

func TestEncoder_InverseRoundTrips(t *testing.T) {
	r := require.New(t)
	var e labelencode.Encoder
	e.Fit([]string{"yes", "no", "yes"})

	labels, err := e.Inverse([]float64{0, 1})
	r.NoError(err)
	r.Equal([]string{"no", "yes"}, labels)
}

func TestEncoder_InverseRejectsUnknownIndex(t *testing.T) {
	r := require.New(t)
	var e labelencode.Encoder
	e.Fit([]string{"a", "b"})

	_, err := e.Inverse([]float64{5})
	r.ErrorIs(err, labelencode.ErrUnknownLabel)
}
