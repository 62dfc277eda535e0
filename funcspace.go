/*
Package funcspace is a pure Go library for one-dimensional function spaces.
It represents scalar functions on an interval [a, b] as finite linear combinations
of basis functions, each supported on a known range of cells of a partition of
[a, b], and evaluates them by visiting only the basis functions that are non-zero
at the query point.

The contract and its concrete implementations live in the space package.
*/
package funcspace
