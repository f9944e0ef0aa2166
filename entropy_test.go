package phi

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestEntropyUniform verifies H(uniform over 2^m states) = m bits.
func TestEntropyUniform(t *testing.T) {
	for m := 1; m <= 4; m++ {
		size := 1 << m
		p := make([]float64, size)
		for i := range p {
			p[i] = 1.0 / float64(size)
		}

		h := Entropy(p)
		if !almostEqual(h, float64(m), 1e-12) {
			t.Errorf("H(uniform %d) = %v, expected %d bits", size, h, m)
		}
	}

	t.Logf("✓ Uniform distributions hit maximum entropy")
}

// TestEntropyDeterministic verifies a point mass carries zero entropy.
func TestEntropyDeterministic(t *testing.T) {
	h := Entropy([]float64{0, 0, 1, 0})
	if h != 0 {
		t.Errorf("H(point mass) = %v, expected 0", h)
	}

	t.Logf("✓ Point mass has zero entropy")
}

// TestRelativeEntropyIdentical verifies D(p ‖ p) = 0.
func TestRelativeEntropyIdentical(t *testing.T) {
	p := []float64{0.1, 0.2, 0.3, 0.4}
	d := RelativeEntropy(p, p)
	if !almostEqual(d, 0, 1e-12) {
		t.Errorf("D(p ‖ p) = %v, expected 0", d)
	}

	t.Logf("✓ D(p ‖ p) = 0")
}

// TestRelativeEntropyKnownValue: a point mass against a fair coin diverges by
// exactly one bit.
func TestRelativeEntropyKnownValue(t *testing.T) {
	d := RelativeEntropy([]float64{1, 0}, []float64{0.5, 0.5})
	if !almostEqual(d, 1.0, 1e-12) {
		t.Errorf("D([1,0] ‖ [½,½]) = %v, expected 1 bit", d)
	}

	t.Logf("✓ D([1,0] ‖ [½,½]) = 1 bit")
}

// TestRelativeEntropyInfinite: mass where the reference has none makes the
// divergence infinite.
func TestRelativeEntropyInfinite(t *testing.T) {
	d := RelativeEntropy([]float64{0.5, 0.5}, []float64{1, 0})
	if !math.IsInf(d, 1) {
		t.Errorf("D = %v, expected +Inf", d)
	}

	t.Logf("✓ Unsupported mass diverges to +Inf")
}

// TestRelativeEntropyNormalizesInputs verifies un-normalized weight vectors
// are rescaled before comparison, matching the behavior of the usual
// statistics-library entropy primitive.
func TestRelativeEntropyNormalizesInputs(t *testing.T) {
	d := RelativeEntropy([]float64{2, 2}, []float64{1, 1})
	if !almostEqual(d, 0, 1e-12) {
		t.Errorf("D([2,2] ‖ [1,1]) = %v, expected 0 after normalization", d)
	}

	h := Entropy([]float64{3, 3})
	if !almostEqual(h, 1.0, 1e-12) {
		t.Errorf("H([3,3]) = %v, expected 1 bit after normalization", h)
	}

	t.Logf("✓ Inputs are normalized by their sums")
}

// TestRelativeEntropyLengthMismatch: incompatible state spaces yield NaN.
func TestRelativeEntropyLengthMismatch(t *testing.T) {
	d := RelativeEntropy([]float64{1}, []float64{0.5, 0.5})
	if !math.IsNaN(d) {
		t.Errorf("D over mismatched lengths = %v, expected NaN", d)
	}

	t.Logf("✓ Length mismatch yields NaN")
}

// TestRelativeEntropyNonNegative spot-checks Gibbs' inequality on a few
// hand-picked pairs.
func TestRelativeEntropyNonNegative(t *testing.T) {
	pairs := [][2][]float64{
		{{0.25, 0.75}, {0.5, 0.5}},
		{{0.1, 0.2, 0.3, 0.4}, {0.4, 0.3, 0.2, 0.1}},
		{{0.7, 0.1, 0.1, 0.1}, {0.25, 0.25, 0.25, 0.25}},
	}

	for _, pair := range pairs {
		d := RelativeEntropy(pair[0], pair[1])
		if d < 0 {
			t.Errorf("D(%v ‖ %v) = %v, expected ≥ 0", pair[0], pair[1], d)
		}
	}

	t.Logf("✓ Relative entropy is non-negative")
}
