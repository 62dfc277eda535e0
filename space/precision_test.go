package space

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/funcspace/utils/sampling"
)

func TestPrecisionStats(t *testing.T) {

	p, err := NewUniformPartition(-1, 1, 32)
	require.NoError(t, err)

	s, err := NewPiecewiseLinear(p)
	require.NoError(t, err)

	f := func(x float64) float64 { return math.Exp(x) }

	el, err := Interpolate(s, f)
	require.NoError(t, err)

	prng, err := sampling.NewKeyedPRNG(testPRNGKey)
	require.NoError(t, err)

	xs := sampling.UniformFloat64Slice(prng, 512, -1, 1)

	prec, err := GetPrecisionStats(el, f, xs)
	require.NoError(t, err)

	h := 2.0 / 32

	require.Equal(t, 512, prec.Points)
	require.LessOrEqual(t, prec.MinDelta, prec.MedianDelta)
	require.LessOrEqual(t, prec.MedianDelta, prec.MaxDelta)
	require.LessOrEqual(t, prec.MeanDelta, prec.MaxDelta)
	require.LessOrEqual(t, prec.MaxDelta, h*h/8*math.E)
	require.InDelta(t, math.Log2(1/prec.MaxDelta), prec.MinPrecision, 1e-12)
	require.GreaterOrEqual(t, prec.MaxPrecision, prec.MinPrecision)
	require.Contains(t, prec.String(), "MIN Prec")

	t.Run("Exact", func(t *testing.T) {
		prec, err := GetPrecisionStats(el, el.Func(), xs)
		require.NoError(t, err)
		require.Zero(t, prec.MaxDelta)
		require.True(t, math.IsInf(prec.MinPrecision, 1))
	})

	t.Run("Errors", func(t *testing.T) {

		_, err := GetPrecisionStats(el, f, nil)
		require.Error(t, err)

		_, err = GetPrecisionStats(el, f, []float64{0, 2})
		require.ErrorIs(t, err, ErrOutOfDomain)
	})
}
