// Package experiment runs the dense-vector permutation experiment: generate
// a pair of random normal vectors, score their cosine similarity, then score
// again after sort permutations, a shared random permutation, and
// independent random permutations. Each run is fully determined by its seed.
package experiment
