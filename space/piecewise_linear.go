package space

import (
	"fmt"
)

// PiecewiseLinear is the space of continuous functions that are affine on each cell of a partition.
// Its basis is made of the hat functions attached to the boundaries of the partition:
// the i-th basis function is 1 at x_i, 0 at every other boundary, and affine in between.
// Each interior boundary carries one degree of freedom shared by its two adjacent cells.
type PiecewiseLinear struct {
	partition Partition
}

// NewPiecewiseLinear returns the piecewise linear space over p.
func NewPiecewiseLinear(p Partition) (*PiecewiseLinear, error) {
	if p.CellCount() < 1 {
		return nil, fmt.Errorf("cannot NewPiecewiseLinear: %w: empty partition", ErrInvalidInterval)
	}
	return &PiecewiseLinear{partition: p}, nil
}

// Dofs returns the number of cells plus one.
func (s *PiecewiseLinear) Dofs() int {
	return s.partition.CellCount() + 1
}

// BoundaryDofs returns 1.
func (s *PiecewiseLinear) BoundaryDofs() int {
	return 1
}

// Partition returns the partition of the space.
func (s *PiecewiseLinear) Partition() Partition {
	return s.partition
}

// Basis returns the hat function attached to the i-th boundary.
func (s *PiecewiseLinear) Basis(i int) (Function, error) {
	if err := checkIndex(s, i); err != nil {
		return nil, fmt.Errorf("cannot Basis: %w", err)
	}

	b := s.partition.bounds
	n := len(b) - 1

	return func(x float64) float64 {
		switch {
		case i > 0 && b[i-1] <= x && x <= b[i]:
			return (x - b[i-1]) / (b[i] - b[i-1])
		case i < n && b[i] <= x && x <= b[i+1]:
			return (b[i+1] - x) / (b[i+1] - b[i])
		default:
			return 0
		}
	}, nil
}

// BasisDerivative returns the derivative of the given order of the i-th hat function.
// The first derivative is the slope of the hat on the cell returned by [Partition.Locate],
// so that on a boundary shared by two cells the slope of the lower cell is used.
// Derivatives of order two and above are zero.
func (s *PiecewiseLinear) BasisDerivative(i, order int) (Function, error) {
	if err := checkIndex(s, i); err != nil {
		return nil, fmt.Errorf("cannot BasisDerivative: %w", err)
	}
	if err := checkOrder(order); err != nil {
		return nil, fmt.Errorf("cannot BasisDerivative: %w", err)
	}

	if order > 1 {
		return zero, nil
	}

	p := s.partition
	b := p.bounds

	return func(x float64) float64 {
		c, err := p.Locate(x)
		if err != nil {
			return 0
		}
		switch c {
		case i - 1:
			return 1 / (b[i] - b[i-1])
		case i:
			return -1 / (b[i+1] - b[i])
		default:
			return 0
		}
	}, nil
}

// BasisSpan returns the cells adjacent to the i-th boundary.
func (s *PiecewiseLinear) BasisSpan(i int) (Span, error) {
	if err := checkIndex(s, i); err != nil {
		return Span{}, fmt.Errorf("cannot BasisSpan: %w", err)
	}
	return Span{Start: max(0, i-1), End: min(s.partition.CellCount(), i+1)}, nil
}

// CellSpan returns {c, c+1}, the hats attached to the end points of the c-th cell.
func (s *PiecewiseLinear) CellSpan(c int) ([]int, error) {
	if err := s.partition.checkCell(c); err != nil {
		return nil, fmt.Errorf("cannot CellSpan: %w", err)
	}
	return []int{c, c + 1}, nil
}

// Nodes returns a copy of the boundaries of the partition.
func (s *PiecewiseLinear) Nodes() []float64 {
	return s.partition.Boundaries()
}
