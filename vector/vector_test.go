package vector

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestRandom(t *testing.T) {
	v, err := Random(rand.New(rand.NewSource(1)), 100)
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if len(v) != 100 {
		t.Fatalf("len = %d, want 100", len(v))
	}
	varied := false
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			varied = true
			break
		}
	}
	if !varied {
		t.Fatal("expected varied standard-normal draws")
	}
}

func TestRandomSameSeed(t *testing.T) {
	a, err := Random(rand.New(rand.NewSource(42)), 16)
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	b, err := Random(rand.New(rand.NewSource(42)), 16)
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs across identically seeded sources: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRandomInvalidDimension(t *testing.T) {
	for _, dim := range []int{0, -1} {
		if _, err := Random(rand.New(rand.NewSource(1)), dim); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("Random(rng, %d) err = %v, want ErrInvalidDimension", dim, err)
		}
	}
}

func TestNorm(t *testing.T) {
	if got := Norm([]float32{3, 4}); got != 5 {
		t.Fatalf("Norm(3,4) = %v, want 5", got)
	}
	if got := Norm(nil); got != 0 {
		t.Fatalf("Norm(nil) = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 4}
	got, err := Normalize(v)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got[0] != 0.6 || got[1] != 0.8 {
		t.Fatalf("Normalize(3,4) = %v, want [0.6 0.8]", got)
	}
	if v[0] != 3 || v[1] != 4 {
		t.Fatalf("Normalize mutated its input: %v", v)
	}
}

func TestNormalizeUnitNorm(t *testing.T) {
	v, err := Random(rand.New(rand.NewSource(7)), 100)
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	n, err := Normalize(v)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := Norm(n); math.Abs(float64(got)-1) > 1e-5 {
		t.Fatalf("Norm(normalized) = %v, want 1 within 1e-5", got)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if _, err := Normalize([]float32{0, 0, 0}); !errors.Is(err, ErrZeroNorm) {
		t.Fatalf("Normalize(zero) err = %v, want ErrZeroNorm", err)
	}
	if _, err := Normalize(nil); !errors.Is(err, ErrZeroNorm) {
		t.Fatalf("Normalize(nil) err = %v, want ErrZeroNorm", err)
	}
}
