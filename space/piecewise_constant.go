package space

import (
	"fmt"
)

// PiecewiseConstant is the space of functions that are constant on each cell of a partition.
// The i-th basis function is the indicator of the i-th cell, where a point shared by two
// cells belongs to the lower one, as for [Partition.Locate].
type PiecewiseConstant struct {
	partition Partition
}

// NewPiecewiseConstant returns the piecewise constant space over p.
func NewPiecewiseConstant(p Partition) (*PiecewiseConstant, error) {
	if p.CellCount() < 1 {
		return nil, fmt.Errorf("cannot NewPiecewiseConstant: %w: empty partition", ErrInvalidInterval)
	}
	return &PiecewiseConstant{partition: p}, nil
}

// Dofs returns the number of cells.
func (s *PiecewiseConstant) Dofs() int {
	return s.partition.CellCount()
}

// BoundaryDofs returns 0: no degree of freedom is shared between cells.
func (s *PiecewiseConstant) BoundaryDofs() int {
	return 0
}

// Partition returns the partition of the space.
func (s *PiecewiseConstant) Partition() Partition {
	return s.partition
}

// Basis returns the indicator function of the i-th cell.
func (s *PiecewiseConstant) Basis(i int) (Function, error) {
	if err := checkIndex(s, i); err != nil {
		return nil, fmt.Errorf("cannot Basis: %w", err)
	}

	p := s.partition

	return func(x float64) float64 {
		if c, err := p.Locate(x); err == nil && c == i {
			return 1
		}
		return 0
	}, nil
}

// BasisDerivative returns the zero function for any order.
func (s *PiecewiseConstant) BasisDerivative(i, order int) (Function, error) {
	if err := checkIndex(s, i); err != nil {
		return nil, fmt.Errorf("cannot BasisDerivative: %w", err)
	}
	if err := checkOrder(order); err != nil {
		return nil, fmt.Errorf("cannot BasisDerivative: %w", err)
	}
	return zero, nil
}

// BasisSpan returns [i, i+1).
func (s *PiecewiseConstant) BasisSpan(i int) (Span, error) {
	if err := checkIndex(s, i); err != nil {
		return Span{}, fmt.Errorf("cannot BasisSpan: %w", err)
	}
	return Span{Start: i, End: i + 1}, nil
}

// CellSpan returns {c}.
func (s *PiecewiseConstant) CellSpan(c int) ([]int, error) {
	if err := s.partition.checkCell(c); err != nil {
		return nil, fmt.Errorf("cannot CellSpan: %w", err)
	}
	return []int{c}, nil
}

// Nodes returns the midpoints of the cells.
func (s *PiecewiseConstant) Nodes() (nodes []float64) {
	nodes = make([]float64, s.partition.CellCount())
	for i := range nodes {
		nodes[i] = (s.partition.bounds[i] + s.partition.bounds[i+1]) / 2
	}
	return
}
