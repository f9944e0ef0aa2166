package phi

import (
	"errors"
	"fmt"
)

// CausalModel supplies cause repertoires for the system under analysis. It is
// scoped to one node set and one fixed current state at construction time,
// with no nodes treated as externally frozen.
//
// CauseRepertoire returns the probability distribution over the past states
// of mechanism implied backward through the system's causal structure,
// conditioned on the fixed current state. The result has length
// 2^len(mechanism) and uses the little-endian joint-state indexing documented
// on Repertoire. The distribution is trusted: this package does not validate
// it, and a malformed one propagates into the Φ value unrecovered.
type CausalModel interface {
	CauseRepertoire(mechanism []int) []float64
}

// CausalModelFunc adapts a plain function to the CausalModel interface.
type CausalModelFunc func(mechanism []int) []float64

// CauseRepertoire calls f.
func (f CausalModelFunc) CauseRepertoire(mechanism []int) []float64 {
	return f(mechanism)
}

// ErrPartitionMismatch reports a partition whose merged groups do not
// reconstruct the subsystem's node set. This is a caller bug, not a data
// error: the computation stops immediately and no partial Φ is produced.
var ErrPartitionMismatch = errors.New("partition indices do not match subsystem node set")

// Subsystem is the system under analysis: an ordered node set, its joint
// state, and the causal model that produces cause repertoires for it.
// Construct it once with NewSubsystem; every method is a pure function of the
// construction-time values, safe to call in any order and any number of
// times.
type Subsystem struct {
	nodes []int
	state []int
	model CausalModel
}

// NewSubsystem validates and builds a subsystem. The node set must be
// non-empty, sorted, and free of duplicates; the state must carry one binary
// value (0 or 1) per node, in matching order.
func NewSubsystem(nodes, state []int, model CausalModel) (*Subsystem, error) {
	if len(nodes) == 0 {
		return nil, errors.New("node set must be non-empty")
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i] <= nodes[i-1] {
			return nil, fmt.Errorf("node set must be sorted and distinct, got %v", nodes)
		}
	}
	if len(state) != len(nodes) {
		return nil, fmt.Errorf("state has %d entries for %d nodes", len(state), len(nodes))
	}
	for i, v := range state {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("state[%d] = %d, nodes are binary", i, v)
		}
	}
	if model == nil {
		return nil, errors.New("causal model must not be nil")
	}

	s := &Subsystem{
		nodes: make([]int, len(nodes)),
		state: make([]int, len(state)),
		model: model,
	}
	copy(s.nodes, nodes)
	copy(s.state, state)
	return s, nil
}

// Len returns the number of nodes in the subsystem.
func (s *Subsystem) Len() int {
	return len(s.nodes)
}

// NodeIndices returns a copy of the node set.
func (s *Subsystem) NodeIndices() []int {
	nodes := make([]int, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// State returns a copy of the joint state.
func (s *Subsystem) State() []int {
	state := make([]int, len(s.state))
	copy(state, s.state)
	return state
}

func (s *Subsystem) String() string {
	return fmt.Sprintf("Subsystem(state=%v, nodes=%v)", s.state, s.nodes)
}

// mechanismOrFull substitutes the full node set for a nil mechanism.
func (s *Subsystem) mechanismOrFull(mechanism []int) []int {
	if mechanism == nil {
		return s.nodes
	}
	return mechanism
}

// PriorRepertoire returns the a priori repertoire of mechanism: the
// maximum-entropy (uniform) distribution over its joint-state space. A nil
// mechanism means the full node set.
func (s *Subsystem) PriorRepertoire(mechanism []int) Repertoire {
	return UniformRepertoire(s.mechanismOrFull(mechanism))
}

// PosteriorRepertoire returns the a posteriori repertoire of mechanism: the
// cause repertoire of the mechanism over itself, conditioned on the fixed
// current state. The distribution comes from the injected causal model. A nil
// mechanism means the full node set.
func (s *Subsystem) PosteriorRepertoire(mechanism []int) Repertoire {
	mechanism = s.mechanismOrFull(mechanism)
	nodes := make([]int, len(mechanism))
	copy(nodes, mechanism)
	return Repertoire{Nodes: nodes, Probs: s.model.CauseRepertoire(mechanism)}
}

// PartitionedPosteriorRepertoire treats each group of the partition as an
// independent mechanism, computes its posterior repertoire, and combines them
// into a distribution over the full joint-state space via Repertoire.Product.
//
// The partition must cover exactly the subsystem's node set; otherwise
// ErrPartitionMismatch is returned.
func (s *Subsystem) PartitionedPosteriorRepertoire(p Partition) (Repertoire, error) {
	if !equalInts(p.Indices(), s.nodes) {
		return Repertoire{}, fmt.Errorf("%w: partition %v, nodes %v",
			ErrPartitionMismatch, p, s.nodes)
	}

	combined := s.PosteriorRepertoire(p.Group(0))
	for i := 1; i < p.Len(); i++ {
		combined = combined.Product(s.PosteriorRepertoire(p.Group(i)))
	}
	return combined, nil
}

// EffectiveInformation measures, in bits, how much the causal structure
// constrains mechanism's past: the relative entropy of the posterior
// repertoire with respect to the prior. Zero exactly when the causal model
// tells us nothing beyond the uniform prior. A nil mechanism means the full
// node set.
func (s *Subsystem) EffectiveInformation(mechanism []int) float64 {
	return RelativeEntropy(
		s.PosteriorRepertoire(mechanism).Probs,
		s.PriorRepertoire(mechanism).Probs,
	)
}

// EffectiveInformationPartition measures the effective information across a
// partition: the relative entropy of the whole-system posterior with respect
// to the partitioned posterior.
//
// The total partition is special-cased to the whole-system effective
// information; a literal computation would always yield 0 for it.
//
// The partition must cover exactly the subsystem's node set; otherwise
// ErrPartitionMismatch is returned.
func (s *Subsystem) EffectiveInformationPartition(p Partition) (float64, error) {
	if !equalInts(p.Indices(), s.nodes) {
		return 0, fmt.Errorf("%w: partition %v, nodes %v",
			ErrPartitionMismatch, p, s.nodes)
	}

	if p.IsTotal() {
		return s.EffectiveInformation(nil), nil
	}

	partitioned, err := s.PartitionedPosteriorRepertoire(p)
	if err != nil {
		return 0, err
	}
	return RelativeEntropy(s.PosteriorRepertoire(nil).Probs, partitioned.Probs), nil
}

// FindMIP scores every candidate partition and returns the
// minimum-information partition: the global minimum under the MIP ordering
// (normalized effective information ascending, raw effective information
// breaking ties). When two candidates tie on both keys the first one in
// enumeration order is kept.
func (s *Subsystem) FindMIP() (MIP, error) {
	var best MIP
	for i, p := range Bipartitions(s.nodes) {
		ei, err := s.EffectiveInformationPartition(p)
		if err != nil {
			return MIP{}, err
		}
		candidate := MIP{EI: ei, Partition: p, Subsystem: s}
		if i == 0 || candidate.Less(best) {
			best = candidate
		}
	}
	return best, nil
}

// Phi returns the integrated information of the system: the raw
// (un-normalized) effective information of its minimum-information partition.
func (s *Subsystem) Phi() (float64, error) {
	mip, err := s.FindMIP()
	if err != nil {
		return 0, err
	}
	return mip.EI, nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
