// Package phi computes integrated information (Φ) for discrete dynamical
// systems, following the IIT 2.0 formulation of Balduzzi & Tononi
// (https://doi.org/10.1371/journal.pcbi.1000091).
//
// # Overview
//
// Given a set of binary elements with a fixed joint state, the package
// derives two distributions over the system's possible past states (a
// maximum-entropy prior and a causally-derived posterior repertoire),
// measures their divergence in bits, and searches all bipartitions of the
// node set for the split that minimizes a normalized version of that
// divergence. The raw effective information of that minimum-information
// partition (MIP) is Φ.
//
//	ei(P) = D( posterior ‖ partitioned posterior )   [bits]
//	MIP   = argmin_P  ei(P) / normalization(P)
//	Φ     = ei(MIP)
//
// # Architecture
//
// The package components:
//
//   - partition.go  - Bipartition enumeration and the Partition value type
//   - repertoire.go - Distributions over joint-state spaces
//   - entropy.go    - Shannon entropy and relative entropy in bits
//   - subsystem.go  - The system under analysis, effective information, MIP search
//   - mip.go        - The candidate record and its ordering
//   - sweep.go      - Φ across every state of a node set
//   - assertions.go - Test helpers for distribution and partition laws
//
// # Quick Start
//
// Cause repertoires come from a causal model you inject; the package only
// consumes its distributions:
//
//	model := phi.CausalModelFunc(func(mechanism []int) []float64 {
//	    // Return P(past state of mechanism | current state), little-endian.
//	    return causeRepertoireFor(mechanism)
//	})
//
//	sub, err := phi.NewSubsystem([]int{0, 1, 2}, []int{1, 1, 0}, model)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	value, err := sub.Phi()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Φ = %.4f bits\n", value)
//
// Inspect the minimizing split:
//
//	mip, _ := sub.FindMIP()
//	fmt.Printf("MIP: %v (ei = %.4f, normalized = %.4f)\n",
//	    mip.Partition, mip.EI, mip.NormalizedEI())
//
// # Partitions
//
// Bipartitions enumerates every unordered two-group split of the node set,
// folding the degenerate empty-side case into a single total partition, so a
// node set of size n yields exactly 2^(n-1) candidates. The total partition
// is special-cased during scoring: it is assigned the whole-system effective
// information rather than the literal 0 a partitioned computation would give.
//
// # Normalization
//
// Comparing splits by raw effective information would favor lopsided
// partitions, so candidates are ranked by ei(P) divided by a per-partition
// factor:
//
//	total partition:  n
//	k ≥ 2 groups:     (k-1) · min(group size)
//
// Ties on the normalized value fall back to the raw value; exact ties on
// both keep the first candidate seen.
//
// # State Sweeps
//
// SweepStates scores every joint state of a node set, building a causal
// model per state:
//
//	results, err := phi.SweepStates(ctx, nodes, factory, phi.DefaultSweepConfig())
//	for _, r := range results {
//	    fmt.Printf("state %v: Φ = %.4f\n", r.State, r.Phi)
//	}
//
// Per-state computations are independent; set SweepConfig.Workers above 1 to
// score them concurrently without changing the results.
//
// # Testing
//
// Use the assertion helpers to validate models and invariants:
//
//	func TestMyModel(t *testing.T) {
//	    cfg := phi.DefaultAssertionConfig()
//
//	    // Every repertoire the model emits must be a valid distribution
//	    phi.AssertDistribution(t, model.CauseRepertoire([]int{0, 1}), cfg)
//
//	    // Enumeration laws for the node set
//	    phi.AssertPartitionLaws(t, []int{0, 1, 2})
//
//	    // Φ is finite and non-negative
//	    phi.AssertNonNegativePhi(t, sub, cfg)
//	}
//
// # Scope
//
// The package does not derive cause repertoires itself (that is the injected
// CausalModel's job) and enumerates bipartitions only; general partitions
// into more than two groups are not implemented.
//
// # See Also
//
//   - examples/basicnet - runnable demo over a 3-node logic-gate network
package phi
