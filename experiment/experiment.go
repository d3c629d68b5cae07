package experiment

import (
	"fmt"
	"math/rand"

	"github.com/vectlab/permute/permutation"
	"github.com/vectlab/permute/vector"
)

// DefaultDimension is the vector dimensionality used when Config leaves it
// unset.
const DefaultDimension = 100

// Config parameterizes a single experiment run.
type Config struct {
	// Dimension is the vector dimensionality; DefaultDimension when zero.
	Dimension int

	// Seed seeds the random source for the whole run. The same seed and
	// dimension reproduce the same report.
	Seed int64
}

// Pair holds the similarity between the two trial vectors, scored once on
// the raw vectors and once on their unit-normalized forms. Normalized or
// not, the figures agree up to rounding.
type Pair struct {
	Raw        float32
	Normalized float32
}

// Report collects the similarity of one vector pair under each permutation
// treatment.
type Report struct {
	Dimension int
	Seed      int64

	// Baseline scores the pair with no permutation applied.
	Baseline Pair

	// Sorted scores the pair after gathering each vector by its own
	// descending sort permutation.
	Sorted Pair

	// SharedRandom scores the pair after gathering both vectors by one
	// random permutation; this preserves the baseline similarity.
	SharedRandom Pair

	// IndependentRandom scores the pair after gathering each vector by a
	// different random permutation.
	IndependentRandom Pair
}

// Run executes the experiment described by cfg and returns its report.
func Run(cfg Config) (*Report, error) {
	dim := cfg.Dimension
	if dim == 0 {
		dim = DefaultDimension
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	v1, err := vector.Random(rng, dim)
	if err != nil {
		return nil, err
	}
	v2, err := vector.Random(rng, dim)
	if err != nil {
		return nil, err
	}
	n1, err := vector.Normalize(v1)
	if err != nil {
		return nil, err
	}
	n2, err := vector.Normalize(v2)
	if err != nil {
		return nil, err
	}

	rep := &Report{Dimension: dim, Seed: cfg.Seed}
	if rep.Baseline, err = score(v1, v2, n1, n2); err != nil {
		return nil, err
	}

	sv1, err := gather(permutation.SortDescending(v1), v1)
	if err != nil {
		return nil, err
	}
	sv2, err := gather(permutation.SortDescending(v2), v2)
	if err != nil {
		return nil, err
	}
	sn1, err := gather(permutation.SortDescending(n1), n1)
	if err != nil {
		return nil, err
	}
	sn2, err := gather(permutation.SortDescending(n2), n2)
	if err != nil {
		return nil, err
	}
	if rep.Sorted, err = score(sv1, sv2, sn1, sn2); err != nil {
		return nil, err
	}

	shared, err := permutation.Random(rng, dim)
	if err != nil {
		return nil, err
	}
	rv1, err := gather(shared, v1)
	if err != nil {
		return nil, err
	}
	rv2, err := gather(shared, v2)
	if err != nil {
		return nil, err
	}
	rn1, err := gather(shared, n1)
	if err != nil {
		return nil, err
	}
	rn2, err := gather(shared, n2)
	if err != nil {
		return nil, err
	}
	if rep.SharedRandom, err = score(rv1, rv2, rn1, rn2); err != nil {
		return nil, err
	}

	other, err := permutation.Random(rng, dim)
	if err != nil {
		return nil, err
	}
	ov2, err := gather(other, v2)
	if err != nil {
		return nil, err
	}
	on2, err := gather(other, n2)
	if err != nil {
		return nil, err
	}
	if rep.IndependentRandom, err = score(rv1, ov2, rn1, on2); err != nil {
		return nil, err
	}
	return rep, nil
}

func gather(p permutation.Permutation, v []float32) ([]float32, error) {
	out, err := permutation.Apply(p, v)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	return out, nil
}

func score(a, b, na, nb []float32) (Pair, error) {
	raw, err := vector.CosineSimilarity(a, b)
	if err != nil {
		return Pair{}, fmt.Errorf("experiment: %w", err)
	}
	norm, err := vector.CosineSimilarity(na, nb)
	if err != nil {
		return Pair{}, fmt.Errorf("experiment: %w", err)
	}
	return Pair{Raw: raw, Normalized: norm}, nil
}
