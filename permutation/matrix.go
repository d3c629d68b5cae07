package permutation

import "fmt"

// Matrix is the dense 0/1 linear-operator form of a permutation p: the entry
// at row p[i], column i is 1 and every other entry is 0, so there is exactly
// one 1 per row and per column. Applied to the one-hot vector for index i it
// yields the one-hot vector for index p[i]; applied to an arbitrary vector
// it scatters, which is the inverse of the gather Apply performs (the two
// agree exactly when p is its own inverse).
type Matrix struct {
	dim  int
	data []float32 // row-major
}

// Matrix materializes p as its dense matrix form. p must be a true
// bijection, otherwise the result would not be a permutation matrix.
func (p Permutation) Matrix() (*Matrix, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	m := &Matrix{dim: len(p), data: make([]float32, len(p)*len(p))}
	for i, j := range p {
		m.data[j*m.dim+i] = 1
	}
	return m, nil
}

// Dim returns the matrix dimension.
func (m *Matrix) Dim() int { return m.dim }

// At returns the entry at the given row and column.
func (m *Matrix) At(row, col int) float32 {
	return m.data[row*m.dim+col]
}

// MulVec computes the matrix-vector product M·v.
func (m *Matrix) MulVec(v []float32) ([]float32, error) {
	if len(v) != m.dim {
		return nil, fmt.Errorf("mulvec %dx%d by %d-vector: %w", m.dim, m.dim, len(v), ErrDimensionMismatch)
	}
	out := make([]float32, m.dim)
	for r := 0; r < m.dim; r++ {
		row := m.data[r*m.dim : (r+1)*m.dim]
		var sum float32
		for c, x := range row {
			sum += x * v[c]
		}
		out[r] = sum
	}
	return out, nil
}
