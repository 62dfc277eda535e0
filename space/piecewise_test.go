package space

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPiecewiseConstant(t *testing.T) {

	p, err := NewPartition([]float64{0, 1, 3})
	require.NoError(t, err)

	s, err := NewPiecewiseConstant(p)
	require.NoError(t, err)

	require.Equal(t, 2, s.Dofs())
	require.Equal(t, 0, s.BoundaryDofs())
	require.Equal(t, []float64{0.5, 2}, s.Nodes())

	phi0, err := s.Basis(0)
	require.NoError(t, err)
	phi1, err := s.Basis(1)
	require.NoError(t, err)

	// The shared boundary belongs to the lower cell.
	require.Equal(t, 1.0, phi0(1))
	require.Equal(t, 0.0, phi1(1))
	require.Equal(t, 1.0, phi0(0))
	require.Equal(t, 1.0, phi1(3))
	require.Equal(t, 0.0, phi0(-1))
	require.Equal(t, 0.0, phi1(4))

	y, err := Evaluate(s, []float64{2, 5}, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, y)

	y, err = Evaluate(s, []float64{2, 5}, 1.5)
	require.NoError(t, err)
	require.Equal(t, 5.0, y)

	span, err := s.BasisSpan(1)
	require.NoError(t, err)
	require.Equal(t, Span{Start: 1, End: 2}, span)

	_, err = NewPiecewiseConstant(Partition{})
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestPiecewiseLinear(t *testing.T) {

	p, err := NewPartition([]float64{0, 1, 3, 4})
	require.NoError(t, err)

	s, err := NewPiecewiseLinear(p)
	require.NoError(t, err)

	require.Equal(t, 4, s.Dofs())
	require.Equal(t, 1, s.BoundaryDofs())
	require.Equal(t, []float64{0, 1, 3, 4}, s.Nodes())

	t.Run("Spans", func(t *testing.T) {

		for i, want := range []Span{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
			span, err := s.BasisSpan(i)
			require.NoError(t, err)
			require.Equal(t, want, span, "basis %d", i)
		}

		for c, want := range [][]int{{0, 1}, {1, 2}, {2, 3}} {
			span, err := s.CellSpan(c)
			require.NoError(t, err)
			require.Equal(t, want, span, "cell %d", c)
		}
	})

	t.Run("Hat", func(t *testing.T) {

		phi, err := s.Basis(1)
		require.NoError(t, err)

		for _, tc := range []struct{ x, y float64 }{
			{-1, 0},
			{0, 0},
			{0.5, 0.5},
			{1, 1},
			{2, 0.5},
			{2.5, 0.25},
			{3, 0},
			{3.5, 0},
			{5, 0},
		} {
			require.InDelta(t, tc.y, phi(tc.x), 1e-15, "x=%v", tc.x)
		}
	})

	t.Run("Derivative", func(t *testing.T) {

		dphi, err := s.BasisDerivative(1, 1)
		require.NoError(t, err)

		require.Equal(t, 1.0, dphi(0.5))
		require.Equal(t, 1.0, dphi(1)) // slope of the lower cell at the shared node
		require.Equal(t, -0.5, dphi(2))
		require.Equal(t, -0.5, dphi(3))
		require.Equal(t, 0.0, dphi(3.5))
		require.Equal(t, 0.0, dphi(-1))

		d2phi, err := s.BasisDerivative(1, 2)
		require.NoError(t, err)
		require.Equal(t, 0.0, d2phi(0.5))
	})

	t.Run("ReproducesAffineFunctions", func(t *testing.T) {

		f := func(x float64) float64 { return 2*x - 1 }

		el, err := Interpolate(s, f)
		require.NoError(t, err)

		for _, x := range []float64{0, 0.3, 1, 1.7, 2.9, 3, 3.99, 4} {

			y, err := el.Evaluate(x)
			require.NoError(t, err)
			require.InDelta(t, f(x), y, 1e-14, "x=%v", x)

			dy, err := el.Derivative(1, x)
			require.NoError(t, err)
			require.InDelta(t, 2, dy, 1e-14, "x=%v", x)
		}
	})

	t.Run("InterpolationError", func(t *testing.T) {

		cells := 64

		p, err := NewUniformPartition(0, math.Pi, cells)
		require.NoError(t, err)

		s, err := NewPiecewiseLinear(p)
		require.NoError(t, err)

		el, err := Interpolate(s, math.Sin)
		require.NoError(t, err)

		h := math.Pi / float64(cells)

		// |sin - I_h sin| <= h^2/8 * max|sin''|
		for i := 0; i <= 1000; i++ {
			x := math.Pi * float64(i) / 1000
			y, err := el.Evaluate(x)
			require.NoError(t, err)
			require.LessOrEqual(t, math.Abs(y-math.Sin(x)), h*h/8+1e-15, "x=%v", x)
		}
	})

	_, err = NewPiecewiseLinear(Partition{})
	require.ErrorIs(t, err, ErrInvalidInterval)
}
