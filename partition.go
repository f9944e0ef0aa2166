package phi

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a sorted, non-empty subset of the system's node indices.
type Group []int

// Partition splits the full node set into disjoint groups whose union is the
// whole set. Groups are stored in canonical order (sorted by smallest member),
// so two partitions built from the same groups in any order compare equal.
//
// A Partition is an immutable value: construct it once with NewPartition and
// read it through the accessors.
type Partition struct {
	groups []Group
}

// NewPartition builds a partition from the given groups. Each group is copied
// and sorted; the groups themselves are placed in canonical order.
func NewPartition(groups ...Group) Partition {
	canonical := make([]Group, len(groups))
	for i, g := range groups {
		c := make(Group, len(g))
		copy(c, g)
		sort.Ints(c)
		canonical[i] = c
	}
	// Groups are disjoint, so ordering by smallest member is total.
	sort.Slice(canonical, func(i, j int) bool {
		return canonical[i][0] < canonical[j][0]
	})
	return Partition{groups: canonical}
}

// Len returns the number of groups in the partition.
func (p Partition) Len() int {
	return len(p.groups)
}

// Group returns the i-th group in canonical order.
func (p Partition) Group(i int) Group {
	g := make(Group, len(p.groups[i]))
	copy(g, p.groups[i])
	return g
}

// Indices reconstructs the full node set by merging and sorting all groups.
// For any partition produced by Bipartitions(nodes) this equals nodes exactly.
func (p Partition) Indices() []int {
	var indices []int
	for _, g := range p.groups {
		indices = append(indices, g...)
	}
	sort.Ints(indices)
	return indices
}

// IsTotal reports whether this is the total (unitary) partition, i.e. a
// single group containing the whole node set.
func (p Partition) IsTotal() bool {
	return len(p.groups) == 1
}

// Normalization returns the factor used to compare candidate partitions on an
// equal footing:
//
//	total partition:      n               (node count)
//	k ≥ 2 groups:         (k-1) · min(group size)
//
// Every group has at least one member, so the factor is always ≥ 1.
func (p Partition) Normalization() int {
	if p.IsTotal() {
		return len(p.groups[0])
	}
	min := len(p.groups[0])
	for _, g := range p.groups[1:] {
		if len(g) < min {
			min = len(g)
		}
	}
	return (len(p.groups) - 1) * min
}

// Equal reports whether both partitions consist of the same groups.
func (p Partition) Equal(other Partition) bool {
	if len(p.groups) != len(other.groups) {
		return false
	}
	for i, g := range p.groups {
		o := other.groups[i]
		if len(g) != len(o) {
			return false
		}
		for j, n := range g {
			if n != o[j] {
				return false
			}
		}
	}
	return true
}

func (p Partition) String() string {
	parts := make([]string, len(p.groups))
	for i, g := range p.groups {
		nodes := make([]string, len(g))
		for j, n := range g {
			nodes[j] = fmt.Sprintf("%d", n)
		}
		parts[i] = "{" + strings.Join(nodes, ",") + "}"
	}
	return "Partition(" + strings.Join(parts, " ") + ")"
}

// Bipartitions enumerates every way to split nodes into two disjoint groups,
// treating (A,B) and (B,A) as the same split. The degenerate split with one
// empty side is emitted once, as the total partition.
//
// For n nodes (n ≥ 1) the result contains exactly 2^(n-1) partitions: one
// total partition and 2^(n-1)-1 genuine bipartitions. The sequence is
// deterministic and rebuilt on every call; consumers must not depend on its
// order.
//
// General partitions with more than two groups are not enumerated.
func Bipartitions(nodes []int) []Partition {
	n := len(nodes)
	partitions := make([]Partition, 0, 1<<(n-1))

	// Pin the last node to side B so each unordered pair appears once.
	// The mask selects which of the first n-1 nodes join side A.
	for mask := 0; mask < 1<<(n-1); mask++ {
		var a, b Group
		for i := 0; i < n-1; i++ {
			if mask&(1<<i) != 0 {
				a = append(a, nodes[i])
			} else {
				b = append(b, nodes[i])
			}
		}
		b = append(b, nodes[n-1])

		if len(a) == 0 {
			partitions = append(partitions, NewPartition(b))
		} else {
			partitions = append(partitions, NewPartition(a, b))
		}
	}

	return partitions
}
