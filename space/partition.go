package space

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/funcspace/utils"
)

// Partition is the ordered set of cell boundaries a = x_0 < x_1 < ... < x_n = b
// splitting [a, b] into n cells [x_c, x_{c+1}].
// Its fields are private and immutable: a Partition can be shared and read
// concurrently without synchronization.
type Partition struct {
	bounds []float64
}

// NewPartition returns a new Partition from the given boundaries.
// The slice is copied. It returns an error wrapping [ErrInvalidInterval] if fewer than two
// boundaries are given, if a boundary is not finite, or if the boundaries are not strictly increasing.
func NewPartition(boundaries []float64) (p Partition, err error) {

	if len(boundaries) < 2 {
		return Partition{}, fmt.Errorf("cannot NewPartition: %w: need at least two boundaries but got %d", ErrInvalidInterval, len(boundaries))
	}

	for i, x := range boundaries {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Partition{}, fmt.Errorf("cannot NewPartition: %w: boundary %d is %v", ErrInvalidInterval, i, x)
		}
	}

	if !utils.IsStrictlyIncreasing(boundaries) {
		return Partition{}, fmt.Errorf("cannot NewPartition: %w: boundaries must be strictly increasing", ErrInvalidInterval)
	}

	p.bounds = make([]float64, len(boundaries))
	copy(p.bounds, boundaries)

	return
}

// NewUniformPartition returns a new Partition of [a, b] into cells cells of equal width.
func NewUniformPartition(a, b float64, cells int) (p Partition, err error) {

	if cells < 1 {
		return Partition{}, fmt.Errorf("cannot NewUniformPartition: %w: cells must be at least 1 but is %d", ErrInvalidInterval, cells)
	}

	if !(a < b) {
		return Partition{}, fmt.Errorf("cannot NewUniformPartition: %w: [%v, %v]", ErrInvalidInterval, a, b)
	}

	bounds := make([]float64, cells+1)

	h := (b - a) / float64(cells)
	for i := 0; i < cells; i++ {
		bounds[i] = a + float64(i)*h
	}
	bounds[cells] = b

	if p, err = NewPartition(bounds); err != nil {
		return Partition{}, fmt.Errorf("cannot NewUniformPartition: %w", err)
	}

	return
}

// CellCount returns the number of cells of the partition.
func (p Partition) CellCount() int {
	return len(p.bounds) - 1
}

// A returns the left end of the partitioned interval.
func (p Partition) A() float64 {
	return p.bounds[0]
}

// B returns the right end of the partitioned interval.
func (p Partition) B() float64 {
	return p.bounds[len(p.bounds)-1]
}

// Boundary returns the i-th boundary x_i, 0 <= i <= CellCount().
// The method panics if i is out of range.
func (p Partition) Boundary(i int) float64 {
	return p.bounds[i]
}

// Boundaries returns a copy of the boundaries of the partition.
func (p Partition) Boundaries() (bounds []float64) {
	bounds = make([]float64, len(p.bounds))
	copy(bounds, p.bounds)
	return
}

// Cell returns the end points of the c-th cell.
func (p Partition) Cell(c int) (lo, hi float64, err error) {
	if err = p.checkCell(c); err != nil {
		return
	}
	return p.bounds[c], p.bounds[c+1], nil
}

// Width returns the width of the c-th cell.
func (p Partition) Width(c int) (w float64, err error) {
	var lo, hi float64
	if lo, hi, err = p.Cell(c); err != nil {
		return
	}
	return hi - lo, nil
}

// Contains returns true if x is in [a, b].
func (p Partition) Contains(x float64) bool {
	return len(p.bounds) > 1 && p.bounds[0] <= x && x <= p.bounds[len(p.bounds)-1]
}

// Locate returns the index c of the cell such that x_c <= x <= x_{c+1}.
// A point lying on a boundary shared by two cells is assigned to the lower cell.
// It returns an error wrapping [ErrOutOfDomain] if x is not in [a, b].
func (p Partition) Locate(x float64) (c int, err error) {

	if !p.Contains(x) {
		return -1, fmt.Errorf("%w: %v is not in [%v, %v]", ErrOutOfDomain, x, p.A(), p.B())
	}

	// Smallest c such that x <= x_{c+1}.
	return sort.SearchFloat64s(p.bounds[1:], x), nil
}

// Equal returns true if p and other have the same boundaries.
func (p Partition) Equal(other Partition) bool {
	return cmp.Equal(p.bounds, other.bounds)
}

func (p Partition) checkCell(c int) error {
	if c < 0 || c >= p.CellCount() {
		return fmt.Errorf("%w: cell %d not in [0, %d)", ErrIndexOutOfRange, c, p.CellCount())
	}
	return nil
}
