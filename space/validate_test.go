package space

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// brokenSpace wraps a PiecewiseLinear space and breaks parts of the contract on demand.
type brokenSpace struct {
	*PiecewiseLinear
	narrowSpan   bool
	wideCellSpan bool
	nonZeroBasis bool
	acceptIndex  bool
}

func (s *brokenSpace) BasisSpan(i int) (Span, error) {
	span, err := s.PiecewiseLinear.BasisSpan(i)
	if s.narrowSpan && err == nil && span.Len() > 1 {
		span.End--
	}
	return span, err
}

func (s *brokenSpace) CellSpan(c int) ([]int, error) {
	span, err := s.PiecewiseLinear.CellSpan(c)
	if s.wideCellSpan && err == nil && span[len(span)-1]+1 < s.Dofs() {
		span = append(span, span[len(span)-1]+1)
	}
	return span, err
}

func (s *brokenSpace) Basis(i int) (Function, error) {
	if s.acceptIndex && i == s.Dofs() {
		return zero, nil
	}
	phi, err := s.PiecewiseLinear.Basis(i)
	if s.nonZeroBasis && err == nil {
		return func(x float64) float64 { return phi(x) + 1e-3 }, nil
	}
	return phi, err
}

func TestValidate(t *testing.T) {

	p, err := NewUniformPartition(0, 1, 4)
	require.NoError(t, err)

	pl, err := NewPiecewiseLinear(p)
	require.NoError(t, err)

	require.NoError(t, Validate(&brokenSpace{PiecewiseLinear: pl}))

	for _, tc := range []struct {
		name  string
		space *brokenSpace
	}{
		{"NarrowBasisSpan", &brokenSpace{PiecewiseLinear: pl, narrowSpan: true}},
		{"WideCellSpan", &brokenSpace{PiecewiseLinear: pl, wideCellSpan: true}},
		{"NonZeroOutsideSpan", &brokenSpace{PiecewiseLinear: pl, nonZeroBasis: true}},
		{"AcceptsOutOfRangeIndex", &brokenSpace{PiecewiseLinear: pl, acceptIndex: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.space)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrContractViolation)
			for _, e := range multierr.Errors(err) {
				require.True(t, errors.Is(e, ErrContractViolation), e.Error())
			}
		})
	}

	t.Run("ReportsAllViolations", func(t *testing.T) {
		err := Validate(&brokenSpace{PiecewiseLinear: pl, wideCellSpan: true, acceptIndex: true})
		require.GreaterOrEqual(t, len(multierr.Errors(err)), 2)
	})
}
