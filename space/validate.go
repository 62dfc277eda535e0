package space

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/tuneinsight/funcspace/utils"
	"github.com/tuneinsight/funcspace/utils/sampling"
)

// ErrContractViolation is wrapped by every error reported by [Validate].
var ErrContractViolation = errors.New("contract violation")

// Keys seeding the sampling of the evaluation points and coefficients used by [Validate].
var (
	validationPointsKey       = []byte("funcspace/space.Validate/points")
	validationCoefficientsKey = []byte("funcspace/space.Validate/coefficients")
)

// validationSamplesPerCell is the number of random points per cell, in addition
// to the end points and the midpoint of the cell, at which [Validate] evaluates
// the basis functions.
const validationSamplesPerCell = 4

// validationTolerance bounds the difference between two evaluations, relative to 1+|reference|.
const validationTolerance = 1e-12

// Validate checks that s satisfies the [Space] contract and returns all the violations
// it finds combined into a single error, or nil if none is found.
//
// The following are checked:
//   - the partition has at least one cell and strictly increasing finite boundaries,
//   - Dofs() >= 1 and BoundaryDofs() >= 0,
//   - out of range basis and cell indices are rejected with [ErrIndexOutOfRange],
//   - every BasisSpan(i) is a non-empty range of valid cells,
//   - i is in CellSpan(c) if and only if BasisSpan(i).Contains(c), and CellSpan(c) is sorted,
//   - each basis function is zero on the cells outside of its span and finite on the cells inside,
//   - the locality-aware [Evaluate] agrees with [EvaluateFull].
//
// Basis functions are sampled on the end points, the midpoint and on pseudo-random points of
// each cell. The pseudo-random points are deterministic, so that Validate is reproducible.
func Validate(s Space) (err error) {

	p := s.Partition()
	cells := p.CellCount()

	if cells < 1 {
		return violation("partition has no cell")
	}

	if !utils.IsStrictlyIncreasing(p.bounds) {
		err = multierr.Append(err, violation("partition boundaries are not strictly increasing"))
	}

	for i, x := range p.bounds {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			err = multierr.Append(err, violation("partition boundary %d is %v", i, x))
		}
	}

	dofs := s.Dofs()

	if dofs < 1 {
		return multierr.Append(err, violation("Dofs()=%d must be at least 1", dofs))
	}

	if s.BoundaryDofs() < 0 {
		err = multierr.Append(err, violation("BoundaryDofs()=%d must be non-negative", s.BoundaryDofs()))
	}

	err = multierr.Append(err, validateIndices(s))

	spans, spanErr := validateSpans(s)
	err = multierr.Append(err, spanErr)

	if spanErr != nil {
		return
	}

	err = multierr.Append(err, validateCellSpans(s, spans))

	var samples [][]float64
	if samples, spanErr = samplePoints(p); spanErr != nil {
		return multierr.Append(err, spanErr)
	}

	err = multierr.Append(err, validateSupports(s, spans, samples))
	err = multierr.Append(err, validateEvaluation(s, samples))

	return
}

func violation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...))
}

func validateIndices(s Space) (err error) {

	cells := s.Partition().CellCount()

	for _, i := range []int{-1, s.Dofs()} {

		if _, e := s.Basis(i); !errors.Is(e, ErrIndexOutOfRange) {
			err = multierr.Append(err, violation("Basis(%d) should fail with %q but returned %v", i, ErrIndexOutOfRange, e))
		}

		if _, e := s.BasisDerivative(i, 1); !errors.Is(e, ErrIndexOutOfRange) {
			err = multierr.Append(err, violation("BasisDerivative(%d, 1) should fail with %q but returned %v", i, ErrIndexOutOfRange, e))
		}

		if _, e := s.BasisSpan(i); !errors.Is(e, ErrIndexOutOfRange) {
			err = multierr.Append(err, violation("BasisSpan(%d) should fail with %q but returned %v", i, ErrIndexOutOfRange, e))
		}
	}

	for _, c := range []int{-1, cells} {
		if _, e := s.CellSpan(c); !errors.Is(e, ErrIndexOutOfRange) {
			err = multierr.Append(err, violation("CellSpan(%d) should fail with %q but returned %v", c, ErrIndexOutOfRange, e))
		}
	}

	return
}

func validateSpans(s Space) (spans []Span, err error) {

	cells := s.Partition().CellCount()

	spans = make([]Span, s.Dofs())

	for i := range spans {

		span, e := s.BasisSpan(i)
		if e != nil {
			err = multierr.Append(err, violation("BasisSpan(%d): %v", i, e))
			continue
		}

		if span.Start < 0 || span.End > cells || span.Len() < 1 {
			err = multierr.Append(err, violation("BasisSpan(%d)=%s is not a non-empty range of [0, %d)", i, span, cells))
		}

		spans[i] = span
	}

	return
}

func validateCellSpans(s Space, spans []Span) (err error) {

	cells := s.Partition().CellCount()

	// Basis functions supported on each cell according to BasisSpan.
	want := make([]map[int]bool, cells)
	for c := range want {
		want[c] = map[int]bool{}
	}

	for i, span := range spans {
		for c := max(span.Start, 0); c < min(span.End, cells); c++ {
			want[c][i] = true
		}
	}

	for c := 0; c < cells; c++ {

		have, e := s.CellSpan(c)
		if e != nil {
			err = multierr.Append(err, violation("CellSpan(%d): %v", c, e))
			continue
		}

		if !utils.IsStrictlyIncreasing(have) {
			err = multierr.Append(err, violation("CellSpan(%d)=%v is not sorted or has duplicates", c, have))
		}

		if expected := utils.GetSortedKeys(want[c]); !utils.EqualSlice(have, expected) {
			err = multierr.Append(err, violation("CellSpan(%d)=%v is inconsistent with BasisSpan, expected %v", c, have, expected))
		}
	}

	return
}

// samplePoints returns, for each cell, the points of the cell at which the basis functions are sampled.
func samplePoints(p Partition) (samples [][]float64, err error) {

	var prng *sampling.KeyedPRNG
	if prng, err = sampling.NewKeyedPRNG(validationPointsKey); err != nil {
		return nil, fmt.Errorf("cannot samplePoints: %w", err)
	}

	samples = make([][]float64, p.CellCount())

	for c := range samples {
		lo, hi := p.bounds[c], p.bounds[c+1]
		samples[c] = append([]float64{lo, (lo + hi) / 2, hi}, sampling.UniformFloat64Slice(prng, validationSamplesPerCell, lo, hi)...)
	}

	return
}

func validateSupports(s Space, spans []Span, samples [][]float64) (err error) {

	for i, span := range spans {

		phi, e := s.Basis(i)
		if e != nil {
			err = multierr.Append(err, violation("Basis(%d): %v", i, e))
			continue
		}

		for c, points := range samples {

			for j, x := range points {

				y := phi(x)

				if math.IsNaN(y) || math.IsInf(y, 0) {
					err = multierr.Append(err, violation("Basis(%d)(%v)=%v is not finite", i, x, y))
					continue
				}

				if span.Contains(c) {
					continue
				}

				// End points of a cell are shared with the neighbouring cells.
				if (j == 0 && span.Contains(c-1)) || (j == 2 && span.Contains(c+1)) {
					continue
				}

				if y != 0 {
					err = multierr.Append(err, violation("Basis(%d)(%v)=%v on cell %d outside of BasisSpan(%d)=%s", i, x, y, c, i, span))
				}
			}
		}
	}

	return
}

func validateEvaluation(s Space, samples [][]float64) (err error) {

	prng, e := sampling.NewKeyedPRNG(validationCoefficientsKey)
	if e != nil {
		return fmt.Errorf("cannot validateEvaluation: %w", e)
	}

	coeffs := sampling.UniformFloat64Slice(prng, s.Dofs(), -1, 1)

	for _, points := range samples {
		for _, x := range points {

			local, e := Evaluate(s, coeffs, x)
			if e != nil {
				err = multierr.Append(err, violation("Evaluate(%v): %v", x, e))
				continue
			}

			full, e := EvaluateFull(s, coeffs, x)
			if e != nil {
				err = multierr.Append(err, violation("EvaluateFull(%v): %v", x, e))
				continue
			}

			if math.Abs(local-full) > validationTolerance*(1+math.Abs(full)) {
				err = multierr.Append(err, violation("Evaluate(%v)=%v differs from EvaluateFull(%v)=%v", x, local, x, full))
			}
		}
	}

	return
}
