package permutation

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	// ErrInvalidDimension reports a requested dimension that is not positive.
	ErrInvalidDimension = errors.New("permutation: non-positive dimension")

	// ErrDimensionMismatch reports a permutation applied to a vector of a
	// different length.
	ErrDimensionMismatch = errors.New("permutation: dimension mismatch")

	// ErrNotPermutation reports an index vector that is not a bijection on
	// [0, d-1].
	ErrNotPermutation = errors.New("permutation: index vector is not a bijection")
)

// Permutation is an index vector interpreted as a reordering: position i of
// the gathered output takes its value from input position p[i].
type Permutation []int

// Identity returns the identity permutation of dimension dim, or nil when
// dim is not positive.
func Identity(dim int) Permutation {
	if dim <= 0 {
		return nil
	}
	p := make(Permutation, dim)
	for i := range p {
		p[i] = i
	}
	return p
}

// Random returns a permutation drawn uniformly from all dim! possibilities.
// The caller supplies the random source so runs are reproducible.
func Random(rng *rand.Rand, dim int) (Permutation, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("random permutation: %w: %d", ErrInvalidDimension, dim)
	}
	if rng == nil {
		return nil, fmt.Errorf("permutation: random source is nil")
	}
	return Permutation(rng.Perm(dim)), nil
}

// SortDescending returns the permutation that gathers v into descending
// value order. Ties keep the order of a stable ascending sort followed by a
// full reversal: among equal values, the higher original index gathers
// first. This is not the same as a stable descending sort when duplicates
// are present.
func SortDescending(v []float32) Permutation {
	p := make(Permutation, len(v))
	for i := range p {
		p[i] = i
	}
	sort.SliceStable(p, func(a, b int) bool { return v[p[a]] < v[p[b]] })
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Validate checks the bijection invariant: every integer in [0, dim-1]
// appears exactly once.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for i, j := range p {
		if j < 0 || j >= len(p) {
			return fmt.Errorf("index %d at position %d outside [0,%d): %w", j, i, len(p), ErrNotPermutation)
		}
		if seen[j] {
			return fmt.Errorf("index %d appears more than once: %w", j, ErrNotPermutation)
		}
		seen[j] = true
	}
	return nil
}

// Apply gathers v through p: out[i] = v[p[i]]. The permutation and vector
// must share a dimension, and every index must be in range.
func Apply(p Permutation, v []float32) ([]float32, error) {
	if len(p) != len(v) {
		return nil, fmt.Errorf("apply %d-permutation to %d-vector: %w", len(p), len(v), ErrDimensionMismatch)
	}
	out := make([]float32, len(v))
	for i, j := range p {
		if j < 0 || j >= len(v) {
			return nil, fmt.Errorf("apply: index %d at position %d outside [0,%d): %w", j, i, len(v), ErrNotPermutation)
		}
		out[i] = v[j]
	}
	return out, nil
}

// Inverse returns the permutation q with q[p[i]] = i for all i, so gathering
// through p and then q restores the original vector. p must be a true
// bijection.
func (p Permutation) Inverse() (Permutation, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	inv := make(Permutation, len(p))
	for i, j := range p {
		inv[j] = i
	}
	return inv, nil
}
