package vector

import (
	"fmt"
	"math"
)

// CosineSimilarity computes the cosine similarity between a and b, rescaled
// from [-1,1] to [0,1]: 0.5 means orthogonal, 1 identical direction, 0
// opposite direction. Both inputs are widened to double precision for the
// dot product and norms; the rescaled result is narrowed back to single
// precision. It returns an error if the vectors have different lengths or
// if either vector has zero magnitude.
func CosineSimilarity(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("cosine similarity %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("cosine similarity on empty vectors: %w", ErrZeroNorm)
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("cosine similarity: %w", ErrZeroNorm)
	}
	cos := dot / (math.Sqrt(na2) * math.Sqrt(nb2))
	// rounding can push the raw cosine slightly outside [-1,1]
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32((cos + 1) / 2), nil
}
