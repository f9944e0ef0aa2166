package phi

import "math"

// Entropy returns the Shannon entropy of p in bits:
//
//	H(p) = -Σ p_i · log2(p_i)
//
// The input is normalized by its sum first, so any non-negative weight vector
// is accepted. Zero entries contribute nothing.
func Entropy(p []float64) float64 {
	sum := 0.0
	for _, v := range p {
		sum += v
	}

	h := 0.0
	for _, v := range p {
		if v <= 0 {
			continue
		}
		pi := v / sum
		h -= pi * math.Log2(pi)
	}
	return h
}

// RelativeEntropy returns the Kullback-Leibler divergence of p from q in bits:
//
//	D(p ‖ q) = Σ p_i · log2(p_i / q_i)
//
// Both inputs are normalized by their sums first. Terms with p_i = 0
// contribute nothing; a term with p_i > 0 and q_i = 0 makes the divergence
// +Inf. Both slices must describe the same flattened state space; a length
// mismatch yields NaN.
//
// D(p ‖ q) ≥ 0, with equality exactly when the normalized distributions
// coincide.
func RelativeEntropy(p, q []float64) float64 {
	if len(p) != len(q) {
		return math.NaN()
	}

	sp, sq := 0.0, 0.0
	for i := range p {
		sp += p[i]
		sq += q[i]
	}

	d := 0.0
	for i := range p {
		if p[i] <= 0 {
			continue
		}
		pi := p[i] / sp
		qi := q[i] / sq
		if qi <= 0 {
			return math.Inf(1)
		}
		d += pi * math.Log2(pi/qi)
	}
	return d
}
