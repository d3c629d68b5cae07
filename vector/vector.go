package vector

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/viant/vec/search"
)

var (
	// ErrInvalidDimension reports a requested dimension that is not positive.
	ErrInvalidDimension = errors.New("vector: non-positive dimension")

	// ErrDimensionMismatch reports two vectors of different lengths where
	// equal lengths are required.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroNorm reports a zero-magnitude vector in an operation that
	// divides by the norm.
	ErrZeroNorm = errors.New("vector: zero-magnitude vector")
)

// Random returns a vector of dim independent draws from the standard normal
// distribution, stored in single precision. The caller supplies the random
// source, typically rand.New(rand.NewSource(seed)), so runs are reproducible.
func Random(rng *rand.Rand, dim int) ([]float32, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("random vector: %w: %d", ErrInvalidDimension, dim)
	}
	if rng == nil {
		return nil, fmt.Errorf("vector: random source is nil")
	}
	out := make([]float32, dim)
	for i := range out {
		out[i] = float32(rng.NormFloat64())
	}
	return out, nil
}

// Norm returns the Euclidean (L2) norm of v in single precision.
func Norm(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

// Normalize returns v rescaled to unit L2 norm as a new slice; the input is
// left untouched, so callers must not assume aliasing. A zero-magnitude
// vector cannot be normalized and yields ErrZeroNorm.
func Normalize(v []float32) ([]float32, error) {
	n := Norm(v)
	if n == 0 {
		return nil, fmt.Errorf("normalize: %w", ErrZeroNorm)
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out, nil
}
