package space

import (
	"fmt"
	"math"
)

// Element is a function of a [Space]: sum_i coeffs[i] * Basis(i).
// It owns a copy of its coefficients and is immutable.
type Element struct {
	space  Space
	coeffs []float64
}

// NewElement returns the element of s with the given coefficients.
// The coefficients are copied, so that later modifications of coeffs do not affect the element.
// It returns an error wrapping [ErrDimensionMismatch] if len(coeffs) != s.Dofs().
func NewElement(s Space, coeffs []float64) (*Element, error) {

	if err := checkDimension(s, coeffs); err != nil {
		return nil, fmt.Errorf("cannot NewElement: %w", err)
	}

	el := &Element{
		space:  s,
		coeffs: make([]float64, len(coeffs)),
	}

	copy(el.coeffs, coeffs)

	return el, nil
}

// Space returns the space of the element.
func (el *Element) Space() Space {
	return el.space
}

// Coefficients returns a copy of the coefficients of the element.
func (el *Element) Coefficients() (coeffs []float64) {
	coeffs = make([]float64, len(el.coeffs))
	copy(coeffs, el.coeffs)
	return
}

// Evaluate returns the value of the element at x.
// See [Evaluate].
func (el *Element) Evaluate(x float64) (float64, error) {
	return Evaluate(el.space, el.coeffs, x)
}

// EvaluateMany returns the values of the element at each x in xs.
// See [EvaluateMany].
func (el *Element) EvaluateMany(xs []float64) ([]float64, error) {
	return EvaluateMany(el.space, el.coeffs, xs)
}

// Derivative returns the derivative of the given order of the element at x.
// See [EvaluateDerivative].
func (el *Element) Derivative(order int, x float64) (float64, error) {
	return EvaluateDerivative(el.space, el.coeffs, order, x)
}

// Func returns the element as a [Function].
// The returned function yields NaN on the points where [Element.Evaluate] fails.
func (el *Element) Func() Function {
	return func(x float64) float64 {
		y, err := el.Evaluate(x)
		if err != nil {
			return math.NaN()
		}
		return y
	}
}

// Interpolate returns the element of s that coincides with f on the nodes of s.
func Interpolate(s NodalSpace, f Function) (*Element, error) {

	nodes := s.Nodes()

	coeffs := make([]float64, len(nodes))
	for i, x := range nodes {
		coeffs[i] = f(x)
	}

	el, err := NewElement(s, coeffs)
	if err != nil {
		return nil, fmt.Errorf("cannot Interpolate: %w", err)
	}

	return el, nil
}
