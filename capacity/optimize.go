package capacity

import (
	"github.com/kimmseo/cvqkd-routing/node"
	"github.com/kimmseo/cvqkd-routing/tdsp"
)

// OracleFactory builds a tdsp.Oracle bound to a specific candidate data
// volume. The transfer-time oracle (package oracle) takes dataBits as an
// argument, so a fresh Oracle closure is needed per probed D; Optimize
// calls the factory once per binary-search iteration.
type OracleFactory func(dataBits float64) tdsp.Oracle

// Optimize binary-searches for the maximum data volume D that tdsp.Solve
// can deliver from srcID to dstID within window, returning the volume and
// its witnessing path. ok is false if even the smallest positive volume is
// infeasible.
//
// Grounded on
// original_source/src/max-capacity-path/link-capacity-path.c's
// get_max_link_path: low <= high, mid = (low+high)/2, advance low past a
// successful mid, retreat high past a failed one, keep the last successful
// attempt. The original steps by a fixed integer kilobyte; here the step
// is Options.Epsilon.
func Optimize(nodes []node.Node, srcID, dstID int, window node.TimeWindow, factory OracleFactory, opts ...Option) (dMax float64, path tdsp.Path, ok bool) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	upper := cfg.UpperBound
	if cfg.AutoDoubleUpperBound {
		for doublings := 0; doublings < cfg.MaxDoublings; doublings++ {
			_, found := tdsp.Solve(nodes, srcID, dstID, upper, window, factory(upper))
			if cfg.OnProbe != nil {
				cfg.OnProbe(upper, found)
			}
			if !found {
				break
			}
			upper *= 2
		}
	}

	lo, hi := 0.0, upper
	var bestD float64
	var bestPath tdsp.Path
	found := false

	for lo <= hi {
		mid := (lo + hi) / 2.0

		p, solved := tdsp.Solve(nodes, srcID, dstID, mid, window, factory(mid))
		if cfg.OnProbe != nil {
			cfg.OnProbe(mid, solved)
		}

		if solved {
			bestD = mid
			bestPath = p
			found = true
			lo = mid + cfg.Epsilon
		} else {
			hi = mid - cfg.Epsilon
		}
	}

	if !found {
		return 0, nil, false
	}

	return bestD, bestPath, true
}
