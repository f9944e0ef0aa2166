package phi

import (
	"context"
	"fmt"
	"sync"
)

// StateResult contains the Φ analysis of one joint state.
type StateResult struct {
	State []int   // Joint state, one binary value per node
	Phi   float64 // Integrated information at that state
	MIP   MIP     // The minimum-information partition that produced it
}

// ModelFactory builds the causal model for one candidate state. The returned
// model must be scoped to exactly that state, the way NewSubsystem expects.
type ModelFactory func(state []int) CausalModel

// SweepConfig controls a whole-state-space sweep.
type SweepConfig struct {
	Workers int // States scored concurrently (≤ 1 means sequential)
}

// DefaultSweepConfig returns a sequential sweep.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{Workers: 1}
}

// SweepStates computes Φ and the MIP for every joint state of nodes, using
// factory to build the per-state causal model. For n nodes there are 2^n
// states; results arrive ordered by joint-state index (little-endian, as in
// Repertoire) regardless of how many workers score them.
//
// Each per-state computation is independent and pure, so parallelism changes
// only wall-clock time, never the results.
func SweepStates(ctx context.Context, nodes []int, factory ModelFactory, cfg SweepConfig) ([]StateResult, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("sweep over empty node set")
	}

	total := 1 << len(nodes)
	results := make([]StateResult, total)

	if cfg.Workers <= 1 {
		for idx := 0; idx < total; idx++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := sweepOne(nodes, idx, factory)
			if err != nil {
				return nil, err
			}
			results[idx] = r
		}
		return results, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	indices := make(chan int)

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				r, err := sweepOne(nodes, idx, factory)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				results[idx] = r
				mu.Unlock()
			}
		}()
	}

feed:
	for idx := 0; idx < total; idx++ {
		select {
		case indices <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(indices)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// sweepOne scores a single joint state identified by its little-endian index.
func sweepOne(nodes []int, idx int, factory ModelFactory) (StateResult, error) {
	state := make([]int, len(nodes))
	for i := range nodes {
		state[i] = (idx >> i) & 1
	}

	sub, err := NewSubsystem(nodes, state, factory(state))
	if err != nil {
		return StateResult{}, fmt.Errorf("state %v: %w", state, err)
	}
	mip, err := sub.FindMIP()
	if err != nil {
		return StateResult{}, fmt.Errorf("state %v: %w", state, err)
	}

	return StateResult{State: state, Phi: mip.EI, MIP: mip}, nil
}
