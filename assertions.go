package phi

import (
	"math"
	"testing"
)

// AssertionConfig contains numeric tolerances for distribution and Φ checks.
type AssertionConfig struct {
	// Maximum deviation of a distribution's total mass from 1.0
	MassTolerance float64

	// Treat effective-information values above -this as non-negative
	// (absorbs floating-point dips below zero)
	EITolerance float64
}

// DefaultAssertionConfig returns tolerances suited to double precision.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MassTolerance: 1e-9,
		EITolerance:   1e-12,
	}
}

// AssertDistribution verifies p is a valid probability distribution:
// non-negative everywhere, free of NaN/Inf, and summing to 1 within
// tolerance. Use it on anything a causal model hands back before trusting a
// Φ value computed from it.
func AssertDistribution(t *testing.T, p []float64, cfg AssertionConfig) {
	t.Helper()

	if len(p) == 0 {
		t.Error("Distribution is empty")
		return
	}

	sum := 0.0
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Distribution entry %d is %v", i, v)
			return
		}
		if v < 0 {
			t.Errorf("Distribution entry %d is negative: %v", i, v)
			return
		}
		sum += v
	}

	if math.Abs(sum-1.0) > cfg.MassTolerance {
		t.Errorf("Distribution mass is %.12f, expected 1.0 (±%.1e)", sum, cfg.MassTolerance)
		return
	}

	t.Logf("✓ Valid distribution over %d states (mass %.12f)", len(p), sum)
}

// AssertPartitionLaws verifies the enumeration laws for a node set:
//
//   - exactly 2^(n-1) partitions, no duplicates
//   - exactly one total partition
//   - every partition's merged indices reproduce the node set
//   - every normalization factor is ≥ 1
func AssertPartitionLaws(t *testing.T, nodes []int) {
	t.Helper()

	partitions := Bipartitions(nodes)
	want := 1 << (len(nodes) - 1)
	if len(partitions) != want {
		t.Errorf("Got %d partitions of %d nodes, expected 2^(n-1) = %d",
			len(partitions), len(nodes), want)
	}

	totals := 0
	seen := make(map[string]bool, len(partitions))
	for _, p := range partitions {
		if seen[p.String()] {
			t.Errorf("Duplicate partition: %v", p)
		}
		seen[p.String()] = true

		if p.IsTotal() {
			totals++
		}

		if !equalInts(p.Indices(), nodes) {
			t.Errorf("Partition %v reconstructs %v, expected %v", p, p.Indices(), nodes)
		}

		if p.Normalization() < 1 {
			t.Errorf("Partition %v has normalization %d, expected ≥ 1", p, p.Normalization())
		}
	}

	if totals != 1 {
		t.Errorf("Got %d total partitions, expected exactly 1", totals)
	}

	t.Logf("✓ %d partitions of %v satisfy count, round-trip and normalization laws",
		len(partitions), nodes)
}

// AssertNonNegativePhi verifies the subsystem's integrated information is a
// finite value ≥ 0, and returns it.
func AssertNonNegativePhi(t *testing.T, s *Subsystem, cfg AssertionConfig) float64 {
	t.Helper()

	value, err := s.Phi()
	if err != nil {
		t.Fatalf("Phi failed: %v", err)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		t.Errorf("Φ = %v, expected a finite value\n"+
			"A non-finite Φ usually means the causal model produced a malformed repertoire.",
			value)
	}
	if value < -cfg.EITolerance {
		t.Errorf("Φ = %v, expected ≥ 0", value)
	}

	t.Logf("✓ Φ = %.6f bits for %v", value, s)
	return value
}

// PrintMIPAnalysis outputs every candidate partition with its raw and
// normalized effective information, marking the minimum.
func PrintMIPAnalysis(t *testing.T, s *Subsystem) {
	t.Helper()

	mip, err := s.FindMIP()
	if err != nil {
		t.Fatalf("FindMIP failed: %v", err)
	}

	t.Logf("\n=== MIP Analysis: %v ===", s)
	t.Logf("  %-24s %-6s %10s %12s", "Partition", "Norm", "EI (bits)", "EI/Norm")
	for _, p := range Bipartitions(s.NodeIndices()) {
		ei, err := s.EffectiveInformationPartition(p)
		if err != nil {
			t.Fatalf("EffectiveInformationPartition failed: %v", err)
		}
		marker := ""
		if p.Equal(mip.Partition) {
			marker = "  ← MIP"
		}
		t.Logf("  %-24v %-6d %10.6f %12.6f%s",
			p, p.Normalization(), ei, ei/float64(p.Normalization()), marker)
	}
	t.Logf("Φ = %.6f bits", mip.EI)
}
