package space

import (
	"fmt"
)

// Evaluate returns sum_i coeffs[i] * Basis(i)(x).
// The cell of x is located first and only the basis functions of [Space.CellSpan]
// of that cell are evaluated.
//
// It returns an error wrapping [ErrDimensionMismatch] if len(coeffs) != s.Dofs(),
// and an error wrapping [ErrOutOfDomain] if x is not in [a, b].
func Evaluate(s Space, coeffs []float64, x float64) (y float64, err error) {

	if err = checkDimension(s, coeffs); err != nil {
		return 0, fmt.Errorf("cannot Evaluate: %w", err)
	}

	if y, err = evaluateLocal(s, coeffs, x, 0); err != nil {
		return 0, fmt.Errorf("cannot Evaluate: %w", err)
	}

	return
}

// EvaluateDerivative returns sum_i coeffs[i] * BasisDerivative(i, order)(x),
// visiting only the basis functions supported on the cell of x.
func EvaluateDerivative(s Space, coeffs []float64, order int, x float64) (y float64, err error) {

	if err = checkDimension(s, coeffs); err != nil {
		return 0, fmt.Errorf("cannot EvaluateDerivative: %w", err)
	}

	if err = checkOrder(order); err != nil {
		return 0, fmt.Errorf("cannot EvaluateDerivative: %w", err)
	}

	if y, err = evaluateLocal(s, coeffs, x, order); err != nil {
		return 0, fmt.Errorf("cannot EvaluateDerivative: %w", err)
	}

	return
}

// EvaluateMany evaluates sum_i coeffs[i] * Basis(i)(x) for each x in xs.
// The result is element-wise identical to calling [Evaluate] on each point.
// It fails on the first invalid point and returns no partial result.
func EvaluateMany(s Space, coeffs []float64, xs []float64) (ys []float64, err error) {

	if err = checkDimension(s, coeffs); err != nil {
		return nil, fmt.Errorf("cannot EvaluateMany: %w", err)
	}

	ys = make([]float64, len(xs))

	for i, x := range xs {
		if ys[i], err = evaluateLocal(s, coeffs, x, 0); err != nil {
			return nil, fmt.Errorf("cannot EvaluateMany: point %d: %w", i, err)
		}
	}

	return
}

// EvaluateFull returns sum_i coeffs[i] * Basis(i)(x) by summing over every basis function
// of the space. It has the same preconditions as [Evaluate] and the same result, at a cost
// linear in s.Dofs() instead of in the number of basis functions supported on a cell.
func EvaluateFull(s Space, coeffs []float64, x float64) (y float64, err error) {

	if err = checkDimension(s, coeffs); err != nil {
		return 0, fmt.Errorf("cannot EvaluateFull: %w", err)
	}

	if _, err = s.Partition().Locate(x); err != nil {
		return 0, fmt.Errorf("cannot EvaluateFull: %w", err)
	}

	var phi Function
	for i := range coeffs {
		if phi, err = s.Basis(i); err != nil {
			return 0, fmt.Errorf("cannot EvaluateFull: %w", err)
		}
		y += coeffs[i] * phi(x)
	}

	return
}

// evaluateLocal sums the contributions of the basis functions supported on the cell of x.
// order = 0 evaluates the basis functions, order > 0 their derivatives.
func evaluateLocal(s Space, coeffs []float64, x float64, order int) (y float64, err error) {

	var c int
	if c, err = s.Partition().Locate(x); err != nil {
		return
	}

	var span []int
	if span, err = s.CellSpan(c); err != nil {
		return
	}

	var phi Function
	for _, i := range span {

		if order == 0 {
			phi, err = s.Basis(i)
		} else {
			phi, err = s.BasisDerivative(i, order)
		}

		if err != nil {
			return 0, err
		}

		y += coeffs[i] * phi(x)
	}

	return
}
