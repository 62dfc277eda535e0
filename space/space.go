// Package space implements one-dimensional function spaces: finite sets of basis
// functions defined over a partition of an interval [a, b] into cells, each basis
// function being non-zero only on a known range of consecutive cells.
//
// The [Space] interface is the contract every basis family satisfies. The package
// provides the global [Constant] space and two local families, [PiecewiseConstant]
// and [PiecewiseLinear]. Elements of a space are evaluated by locating the cell
// of the query point and summing over the basis functions supported on that cell only.
package space

import (
	"fmt"
)

// Function is a real function of a real variable.
type Function func(x float64) float64

// Span is the half-open range of cells [Start, End) on which a basis function
// is potentially non-zero.
type Span struct {
	Start, End int
}

// Contains returns true if the cell c is in [Start, End).
func (s Span) Contains(c int) bool {
	return s.Start <= c && c < s.End
}

// Len returns the number of cells in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Space is the contract of a one-dimensional function space.
//
// Implementations are immutable after construction and all methods must be safe
// for concurrent use. Every method taking a basis index i returns an error
// wrapping [ErrIndexOutOfRange] if i is not in [0, Dofs()), and every method
// taking a cell index c does the same if c is not in [0, Partition().CellCount()).
//
// The following must hold for every implementation:
//   - Basis(i) evaluates to zero on every cell outside BasisSpan(i), and is finite everywhere.
//   - i is in CellSpan(c) if and only if BasisSpan(i).Contains(c).
//   - BasisSpan(i) is the smallest such range.
type Space interface {
	// Dofs returns the number of degrees of freedom, that is the number of basis functions.
	Dofs() int

	// BoundaryDofs returns the number of degrees of freedom attached to each end point
	// of a cell and shared with the neighbouring cell.
	BoundaryDofs() int

	// Partition returns the partition of [a, b] the basis functions are defined on.
	Partition() Partition

	// Basis returns the i-th basis function.
	Basis(i int) (Function, error)

	// BasisDerivative returns the derivative of the given order >= 1 of the i-th basis function.
	// Orders that the basis cannot represent degrade to the zero function.
	BasisDerivative(i, order int) (Function, error)

	// BasisSpan returns the range of cells on which the i-th basis function is non-zero.
	BasisSpan(i int) (Span, error)

	// CellSpan returns the indices, sorted in ascending order, of the basis functions
	// that are non-zero on the c-th cell. The returned slice is owned by the caller.
	CellSpan(c int) ([]int, error)
}

// NodalSpace is a [Space] whose basis functions are attached to nodes:
// the i-th basis function is 1 on the i-th node and 0 on every other node.
type NodalSpace interface {
	Space

	// Nodes returns a copy of the nodes of the space, one per degree of freedom.
	Nodes() []float64
}

// CellCount returns the number of cells of the partition of s.
func CellCount(s Space) int {
	return s.Partition().CellCount()
}

func checkIndex(s Space, i int) error {
	if i < 0 || i >= s.Dofs() {
		return fmt.Errorf("%w: basis %d not in [0, %d)", ErrIndexOutOfRange, i, s.Dofs())
	}
	return nil
}

func checkOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("%w: order must be at least 1 but is %d", ErrInvalidOrder, order)
	}
	return nil
}

func checkDimension(s Space, coeffs []float64) error {
	if len(coeffs) != s.Dofs() {
		return fmt.Errorf("%w: expected %d coefficients but got %d", ErrDimensionMismatch, s.Dofs(), len(coeffs))
	}
	return nil
}

func zero(x float64) float64 {
	return 0
}
