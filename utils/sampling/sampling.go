// Package sampling implements the sampling of uniform floating point values
// from a stream of random bytes.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// maxUint53 is 2^53, the number of distinct float64 values of the form k/2^53 in [0, 1).
const maxUint53 = 1 << 53

// UniformFloat64 returns a float64 sampled uniformly in [min, max) from the bytes of prng.
// If prng is nil, the bytes are read from crypto/rand.
// The method panics if prng fails to deliver the bytes.
func UniformFloat64(prng io.Reader, min, max float64) float64 {

	if prng == nil {
		prng = rand.Reader
	}

	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(prng, b); err != nil {
		panic(fmt.Errorf("cannot UniformFloat64: %w", err))
	}

	f := float64(binary.LittleEndian.Uint64(b)>>11) / maxUint53
	return min + f*(max-min)
}

// UniformFloat64Slice returns n float64 values sampled uniformly in [min, max) from prng.
func UniformFloat64Slice(prng io.Reader, n int, min, max float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = UniformFloat64(prng, min, max)
	}
	return
}
