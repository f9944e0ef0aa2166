package phi

import "sort"

// Repertoire is a probability distribution over the joint-state space of a
// mechanism (a sorted subset of the system's node indices). Nodes are binary,
// so a mechanism of m nodes has 2^m joint states.
//
// Joint states are flattened little-endian: bit b of an index gives the state
// of the b-th node in Nodes, so the first node of the mechanism varies
// fastest. StateIndex converts a per-node state vector to this index.
type Repertoire struct {
	Nodes []int     // Mechanism, sorted ascending
	Probs []float64 // Probability per joint-state index, length 2^len(Nodes)
}

// StateIndex flattens a per-node state vector (values 0 or 1, in mechanism
// order) into a joint-state index.
func StateIndex(state []int) int {
	idx := 0
	for i, v := range state {
		if v != 0 {
			idx |= 1 << i
		}
	}
	return idx
}

// UniformRepertoire returns the maximum-entropy distribution over mechanism:
// every joint state equally likely. It depends only on the mechanism's size,
// never on state or causal structure.
func UniformRepertoire(mechanism []int) Repertoire {
	size := 1 << len(mechanism)
	probs := make([]float64, size)
	for i := range probs {
		probs[i] = 1.0 / float64(size)
	}
	nodes := make([]int, len(mechanism))
	copy(nodes, mechanism)
	return Repertoire{Nodes: nodes, Probs: probs}
}

// Product combines two repertoires over disjoint mechanisms under the
// independence assumption: the probability of a joint state of the union is
// the product of the probabilities of its projections onto each mechanism.
//
// The mechanisms must be disjoint.
func (r Repertoire) Product(other Repertoire) Repertoire {
	union := make([]int, 0, len(r.Nodes)+len(other.Nodes))
	union = append(union, r.Nodes...)
	union = append(union, other.Nodes...)
	sort.Ints(union)

	// Position of each union node within its source mechanism. A node comes
	// from exactly one side because the mechanisms are disjoint.
	type source struct {
		left bool
		pos  int
	}
	sources := make([]source, len(union))
	for b, node := range union {
		if pos, ok := indexOf(r.Nodes, node); ok {
			sources[b] = source{left: true, pos: pos}
		} else {
			pos, _ := indexOf(other.Nodes, node)
			sources[b] = source{left: false, pos: pos}
		}
	}

	probs := make([]float64, 1<<len(union))
	for idx := range probs {
		li, ri := 0, 0
		for b := range union {
			bit := (idx >> b) & 1
			if sources[b].left {
				li |= bit << sources[b].pos
			} else {
				ri |= bit << sources[b].pos
			}
		}
		probs[idx] = r.Probs[li] * other.Probs[ri]
	}

	return Repertoire{Nodes: union, Probs: probs}
}

func indexOf(nodes []int, node int) (int, bool) {
	for i, n := range nodes {
		if n == node {
			return i, true
		}
	}
	return 0, false
}
