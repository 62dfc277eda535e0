package space

import (
	"fmt"
)

// Constant is the space of constant functions on [a, b]: a single global basis
// function equal to 1, supported on the single cell [a, b].
type Constant struct {
	partition Partition
}

// NewConstant returns the constant space on [a, b].
// It returns an error wrapping [ErrInvalidInterval] if a >= b.
func NewConstant(a, b float64) (*Constant, error) {

	if !(a < b) {
		return nil, fmt.Errorf("cannot NewConstant: %w: [%v, %v]", ErrInvalidInterval, a, b)
	}

	p, err := NewPartition([]float64{a, b})
	if err != nil {
		return nil, fmt.Errorf("cannot NewConstant: %w", err)
	}

	return &Constant{partition: p}, nil
}

// Dofs returns 1.
func (s *Constant) Dofs() int {
	return 1
}

// BoundaryDofs returns 0.
func (s *Constant) BoundaryDofs() int {
	return 0
}

// Partition returns the single cell partition {a, b}.
func (s *Constant) Partition() Partition {
	return s.partition
}

// Basis returns the constant function 1.
func (s *Constant) Basis(i int) (Function, error) {
	if err := checkIndex(s, i); err != nil {
		return nil, fmt.Errorf("cannot Basis: %w", err)
	}
	return func(x float64) float64 { return 1 }, nil
}

// BasisDerivative returns the zero function for any order.
func (s *Constant) BasisDerivative(i, order int) (Function, error) {
	if err := checkIndex(s, i); err != nil {
		return nil, fmt.Errorf("cannot BasisDerivative: %w", err)
	}
	if err := checkOrder(order); err != nil {
		return nil, fmt.Errorf("cannot BasisDerivative: %w", err)
	}
	return zero, nil
}

// BasisSpan returns [0, 1): the basis is global.
func (s *Constant) BasisSpan(i int) (Span, error) {
	if err := checkIndex(s, i); err != nil {
		return Span{}, fmt.Errorf("cannot BasisSpan: %w", err)
	}
	return Span{Start: 0, End: 1}, nil
}

// CellSpan returns {0}.
func (s *Constant) CellSpan(c int) ([]int, error) {
	if err := s.partition.checkCell(c); err != nil {
		return nil, fmt.Errorf("cannot CellSpan: %w", err)
	}
	return []int{0}, nil
}

// Nodes returns the midpoint of [a, b].
func (s *Constant) Nodes() []float64 {
	return []float64{(s.partition.A() + s.partition.B()) / 2}
}
