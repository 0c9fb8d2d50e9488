package trajectory

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/kimmseo/cvqkd-routing/node"
	"github.com/kimmseo/cvqkd-routing/skrmodel"
)

// Trajectory is the ordered sequence of N SampledStates for a single node:
// element i represents time window.TimeAt(i). Built once by Build and
// immutable thereafter.
type Trajectory struct {
	samples []node.SampledState
}

// Len returns the number of samples in the trajectory.
func (t Trajectory) Len() int {
	return len(t.samples)
}

// At returns the sample at index i. Callers are expected to have already
// bounds-checked i against Len(); index-out-of-range panics exactly as a
// slice index would, since the oracle (package oracle) derives indices from
// the same TimeWindow the trajectory was built with.
func (t Trajectory) At(i int) node.SampledState {
	return t.samples[i]
}

// Cache maps node.ID to that node's Trajectory for one planning run. A
// Cache is built once by Build and is read-only thereafter; the TDSP solver
// (package tdsp) may issue concurrent oracle calls against the same Cache
// across goroutines once it is fully constructed.
type Cache struct {
	mu         sync.RWMutex
	byNodeID   map[int]Trajectory
	window     node.TimeWindow
	builtCount int
}

// Get returns the Trajectory for id and whether it was found. A missing
// entry is not an error at this layer: the oracle treats it as "+Inf,
// unreachable", matching the oracle's own failure-mode policy.
func (c *Cache) Get(id int) (Trajectory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	traj, ok := c.byNodeID[id]

	return traj, ok
}

// Window returns the TimeWindow this cache was built over.
func (c *Cache) Window() node.TimeWindow {
	return c.window
}

// Len returns the number of nodes this cache holds trajectories for.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.builtCount
}

// Build evaluates prop across the window's grid for every node and returns
// the resulting Cache. Nodes are sampled in parallel, one goroutine per
// node up to runtime.GOMAXPROCS(0) concurrently, since propagation is
// embarrassingly parallel across nodes. The first
// propagation error encountered aborts the remaining work and is returned;
// ctx cancellation does the same.
//
// Ground-station nodes are sampled once (their site does not move) and the
// resulting position/velocity broadcast across all N samples with each
// sample's own UTC stamp, since a stationary site has nothing to propagate.
func Build(ctx context.Context, nodes []node.Node, window node.TimeWindow, prop skrmodel.Propagator) (*Cache, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, node.ErrEmptyNodeSet
	}

	n := window.SampleCount()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		sem      = make(chan struct{}, maxParallelism())
		resultMu sync.Mutex
		results  = make(map[int]Trajectory, len(nodes))
		firstErr error
	)

	for _, n0 := range nodes {
		nd := n0 // capture per-iteration copy
		wg.Add(1)

		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-runCtx.Done():
				return
			}
			defer func() { <-sem }()

			if runCtx.Err() != nil {
				return
			}

			traj, err := sampleNode(nd, window, n, prop)

			resultMu.Lock()
			defer resultMu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("trajectory: node %d: %w", nd.ID, err)
					cancel()
				}

				return
			}
			results[nd.ID] = traj
		}()
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Cache{byNodeID: results, window: window, builtCount: len(results)}, nil
}

// sampleNode evaluates prop across the window's N grid points for a single
// node.
func sampleNode(n node.Node, window node.TimeWindow, sampleCount int, prop skrmodel.Propagator) (Trajectory, error) {
	samples := make([]node.SampledState, sampleCount)

	if n.Kind == node.GroundStation {
		pos, _, err := prop.Propagate(n.Descriptor, window.TimeAt(0))
		if err != nil {
			return Trajectory{}, err
		}
		for i := 0; i < sampleCount; i++ {
			samples[i] = node.SampledState{Position: pos, UTC: window.TimeAt(i)}
		}

		return Trajectory{samples: samples}, nil
	}

	for i := 0; i < sampleCount; i++ {
		t := window.TimeAt(i)

		pos, vel, err := prop.Propagate(n.Descriptor, t)
		if err != nil {
			return Trajectory{}, err
		}
		samples[i] = node.SampledState{Position: pos, Velocity: vel, UTC: t}
	}

	return Trajectory{samples: samples}, nil
}

// maxParallelism bounds the number of concurrent Propagate calls to the
// number of available processors, so Build does not spawn unbounded
// goroutines for large constellations.
func maxParallelism() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}

	return 1
}
