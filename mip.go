package phi

import "fmt"

// MIP pairs the effective information measured across one candidate partition
// with the partition itself and the subsystem it was computed for. Immutable
// once constructed.
type MIP struct {
	EI        float64
	Partition Partition
	Subsystem *Subsystem
}

// NormalizedEI returns the effective information divided by the partition's
// normalization factor. This is the primary key when searching for the
// minimum-information partition.
func (m MIP) NormalizedEI() float64 {
	return m.EI / float64(m.Partition.Normalization())
}

// Less orders candidates by normalized effective information ascending. When
// more than one partition reaches the same minimum normalized value, the one
// generating the lowest un-normalized effective information wins.
func (m MIP) Less(other MIP) bool {
	mn, on := m.NormalizedEI(), other.NormalizedEI()
	if mn != on {
		return mn < on
	}
	return m.EI < other.EI
}

// Equal reports whether both candidates carry the same effective information
// and the same partition.
func (m MIP) Equal(other MIP) bool {
	return m.EI == other.EI && m.Partition.Equal(other.Partition)
}

func (m MIP) String() string {
	return fmt.Sprintf("MIP(ei=%v, %v)", m.EI, m.Partition)
}
