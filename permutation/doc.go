// Package permutation represents reorderings of dense vectors as index
// vectors: a Permutation of dimension d holds each integer in [0, d-1]
// exactly once. It provides generators (descending sort order, uniform
// random), gather application, inversion, and materialization as an
// explicit 0/1 linear-transformation matrix.
package permutation
