package experiment

import (
	"fmt"
	"strings"
)

// String renders the report as the narrative text the demo CLI prints, with
// every similarity formatted to four decimal places.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dimension %d, seed %d.\n\n", r.Dimension, r.Seed)

	b.WriteString("Normalized or not, values should be the same (give or take a rounding error).\n")
	b.WriteString("Dense vectors should sit around 0.5 similarity; higher dimensions are more consistent.\n")
	fmt.Fprintf(&b, "Similarity before permuting, no normalization: %.4f\n", r.Baseline.Raw)
	fmt.Fprintf(&b, "Similarity before permuting, normalized: %.4f\n\n", r.Baseline.Normalized)

	b.WriteString("With a sort permutation, dense vectors are likely to look more similar.\n")
	fmt.Fprintf(&b, "Similarity after sorting, no normalization: %.4f\n", r.Sorted.Raw)
	fmt.Fprintf(&b, "Similarity after sorting, normalized: %.4f\n\n", r.Sorted.Normalized)

	b.WriteString("Under one shared random permutation the similarity matches the baseline exactly.\n")
	fmt.Fprintf(&b, "Similarity after shared permutation, no normalization: %.4f\n", r.SharedRandom.Raw)
	fmt.Fprintf(&b, "Similarity after shared permutation, normalized: %.4f\n\n", r.SharedRandom.Normalized)

	b.WriteString("Two independent random permutations give differing values still trending to 0.5.\n")
	fmt.Fprintf(&b, "Similarity after independent permutations, no normalization: %.4f\n", r.IndependentRandom.Raw)
	fmt.Fprintf(&b, "Similarity after independent permutations, normalized: %.4f\n", r.IndependentRandom.Normalized)
	return b.String()
}
