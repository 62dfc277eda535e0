package space

import (
	"errors"
)

var (
	// ErrIndexOutOfRange is returned when a basis or cell index is outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDimensionMismatch is returned when a coefficient vector does not have
	// exactly one entry per degree of freedom.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidInterval is returned when an interval or a partition is not strictly increasing.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrOutOfDomain is returned when an evaluation point lies outside [a, b].
	ErrOutOfDomain = errors.New("point out of domain")

	// ErrInvalidOrder is returned when a derivative of order smaller than one is requested.
	ErrInvalidOrder = errors.New("invalid derivative order")

	// ErrUnknownFamily is returned when a Literal names a family that has no implementation.
	ErrUnknownFamily = errors.New("unknown space family")
)
