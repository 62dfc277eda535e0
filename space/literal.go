package space

import (
	"fmt"
)

// Family identifies a basis family.
type Family uint8

const (
	// ConstantFamily is the family of [Constant].
	ConstantFamily Family = iota
	// PiecewiseConstantFamily is the family of [PiecewiseConstant].
	PiecewiseConstantFamily
	// PiecewiseLinearFamily is the family of [PiecewiseLinear].
	PiecewiseLinearFamily
)

var familyToString = [3]string{"Constant", "PiecewiseConstant", "PiecewiseLinear"}

var familyFromString = map[string]Family{
	"Constant":          ConstantFamily,
	"PiecewiseConstant": PiecewiseConstantFamily,
	"PiecewiseLinear":   PiecewiseLinearFamily,
}

func (f Family) String() string {
	if int(f) >= len(familyToString) {
		return "Unknown"
	}
	return familyToString[int(f)]
}

// MarshalText implements [encoding.TextMarshaler].
func (f Family) MarshalText() ([]byte, error) {
	if int(f) >= len(familyToString) {
		return nil, fmt.Errorf("cannot MarshalText: %w: %d", ErrUnknownFamily, f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Family) UnmarshalText(text []byte) error {
	family, ok := familyFromString[string(text)]
	if !ok {
		return fmt.Errorf("cannot UnmarshalText: %w: %q", ErrUnknownFamily, text)
	}
	*f = family
	return nil
}

// Literal is a literal representation of a function space. It has public fields and
// is used to express unchecked user-defined spaces literally into Go programs or JSON.
// The [NewSpaceFromLiteral] function is used to generate the actual checked space
// from the literal representation.
//
// Users must set the Family and either the interval [A, B], optionally with a number
// of uniform Cells, or the explicit cell Boundaries, which take precedence.
// If left unset, Cells defaults to 1. The [ConstantFamily] only accepts a single cell.
type Literal struct {
	Family     Family
	A          float64   `json:",omitempty"`
	B          float64   `json:",omitempty"`
	Cells      int       `json:",omitempty"`
	Boundaries []float64 `json:",omitempty"`
}

// NewSpaceFromLiteral instantiates a [Space] from a [Literal].
func NewSpaceFromLiteral(lit Literal) (s Space, err error) {

	var p Partition
	if p, err = lit.partition(); err != nil {
		return nil, fmt.Errorf("cannot NewSpaceFromLiteral: %w", err)
	}

	switch lit.Family {
	case ConstantFamily:
		if p.CellCount() != 1 {
			return nil, fmt.Errorf("cannot NewSpaceFromLiteral: %w: the constant space has a single cell but %d were given", ErrInvalidInterval, p.CellCount())
		}
		s, err = NewConstant(p.A(), p.B())
	case PiecewiseConstantFamily:
		s, err = NewPiecewiseConstant(p)
	case PiecewiseLinearFamily:
		s, err = NewPiecewiseLinear(p)
	default:
		return nil, fmt.Errorf("cannot NewSpaceFromLiteral: %w: %d", ErrUnknownFamily, lit.Family)
	}

	if err != nil {
		return nil, fmt.Errorf("cannot NewSpaceFromLiteral: %w", err)
	}

	return
}

func (lit Literal) partition() (Partition, error) {

	if len(lit.Boundaries) != 0 {
		return NewPartition(lit.Boundaries)
	}

	cells := lit.Cells
	if cells == 0 {
		cells = 1
	}

	return NewUniformPartition(lit.A, lit.B, cells)
}

// LiteralOf returns the literal representation of s.
// It returns an error wrapping [ErrUnknownFamily] if s is not one of the
// implementations of this package.
func LiteralOf(s Space) (lit Literal, err error) {

	switch s.(type) {
	case *Constant:
		lit.Family = ConstantFamily
	case *PiecewiseConstant:
		lit.Family = PiecewiseConstantFamily
	case *PiecewiseLinear:
		lit.Family = PiecewiseLinearFamily
	default:
		return Literal{}, fmt.Errorf("cannot LiteralOf: %w: %T", ErrUnknownFamily, s)
	}

	lit.Boundaries = s.Partition().Boundaries()

	return
}
