package cvqkd

import (
	"context"
	"fmt"
	"math"

	"github.com/kimmseo/cvqkd-routing/capacity"
	"github.com/kimmseo/cvqkd-routing/node"
	"github.com/kimmseo/cvqkd-routing/oracle"
	"github.com/kimmseo/cvqkd-routing/skrmodel"
	"github.com/kimmseo/cvqkd-routing/tdsp"
	"github.com/kimmseo/cvqkd-routing/trajectory"
)

// PlanResult is the outcome of a planning run: either a feasible maximum
// volume and its witnessing path, or Feasible=false with the other fields
// at their zero value.
type PlanResult struct {
	Feasible      bool
	MaxVolumeBits float64
	Path          tdsp.Path
}

// PlanMaxCapacity is the engine's one public entry point: it
// validates nodes/window/endpoints, builds a trajectory.Cache via prop,
// binds oracle.TransferTime to that cache through an skrmodel.Adapter over
// model and topo, and drives capacity.Optimize to find the maximum volume
// deliverable from srcID to dstID within window.
//
// opts configure the underlying capacity.Optimize search (epsilon, upper
// bound, auto-doubling); see package capacity.
func PlanMaxCapacity(
	ctx context.Context,
	nodes []node.Node,
	srcID, dstID int,
	window node.TimeWindow,
	prop skrmodel.Propagator,
	model skrmodel.Model,
	topo skrmodel.Topocentric,
	opts ...capacity.Option,
) (PlanResult, error) {
	if err := window.Validate(); err != nil {
		return PlanResult{}, err
	}
	if len(nodes) == 0 {
		return PlanResult{}, node.ErrEmptyNodeSet
	}
	if srcID == dstID {
		return PlanResult{}, ErrSameEndpoint
	}

	nodeByID := make(map[int]node.Node, len(nodes))
	for _, n := range nodes {
		if _, dup := nodeByID[n.ID]; dup {
			return PlanResult{}, fmt.Errorf("%w: id %d", node.ErrDuplicateNodeID, n.ID)
		}
		nodeByID[n.ID] = n
	}

	if _, ok := nodeByID[srcID]; !ok {
		return PlanResult{}, fmt.Errorf("%w: source id %d", ErrUnknownNode, srcID)
	}
	if _, ok := nodeByID[dstID]; !ok {
		return PlanResult{}, fmt.Errorf("%w: destination id %d", ErrUnknownNode, dstID)
	}

	cache, err := trajectory.Build(ctx, nodes, window, prop)
	if err != nil {
		return PlanResult{}, fmt.Errorf("cvqkd: building trajectory cache: %w", err)
	}

	adapter := skrmodel.NewAdapter(model, topo)
	factory := capacity.OracleFactory(func(dataBits float64) tdsp.Oracle {
		return boundOracle(cache, nodeByID, adapter, window, dataBits)
	})

	dMax, path, ok := capacity.Optimize(nodes, srcID, dstID, window, factory, opts...)
	if !ok {
		return PlanResult{Feasible: false}, nil
	}

	return PlanResult{Feasible: true, MaxVolumeBits: dMax, Path: path}, nil
}

// boundOracle closes over a trajectory.Cache and an skrmodel.Adapter to
// produce a tdsp.Oracle for one candidate data volume: at each sample
// index, the rate between the two endpoints' cached states is computed
// through the adapter, and the resulting per-index RateFunc is handed to
// oracle.TransferTime.
func boundOracle(cache *trajectory.Cache, nodeByID map[int]node.Node, adapter skrmodel.Adapter, window node.TimeWindow, dataBits float64) tdsp.Oracle {
	return func(srcID, dstID int, _, departAt float64) float64 {
		srcTraj, ok := cache.Get(srcID)
		if !ok {
			return math.Inf(1)
		}
		dstTraj, ok := cache.Get(dstID)
		if !ok {
			return math.Inf(1)
		}

		srcNode := nodeByID[srcID]
		dstNode := nodeByID[dstID]

		rateFn := oracle.RateFunc(func(i int) float64 {
			return adapter.Rate(srcNode.Kind, dstNode.Kind, srcTraj.At(i), dstTraj.At(i), srcNode.Site, dstNode.Site, window.TimeAt(i))
		})

		return oracle.TransferTime(window, rateFn, dataBits, departAt)
	}
}
