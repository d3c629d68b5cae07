// Package vector provides dense float32 vector primitives: seeded random
// generation, L2 normalization, and cosine similarity rescaled to [0,1].
// Vectors are plain []float32 slices; every operation returns a new slice
// and never mutates its input.
package vector
