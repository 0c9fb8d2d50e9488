package tdsp

import (
	"math"

	"github.com/kimmseo/cvqkd-routing/node"
	"github.com/kimmseo/cvqkd-routing/pqueue"
)

// Solve computes the earliest-arrival path carrying dataBits from srcID to
// dstID within window, treating oracle as the time-dependent edge weight.
// It reports ok=false if srcID or dstID is not in nodes, or if no path
// exists within the window.
//
// Every node's tentative arrival starts at +Inf except the source, which
// starts at window.Start. The frontier is a pqueue.Queue keyed on
// tentative arrival; ties are broken by insertion order because the queue
// never reorders equal keys (see package pqueue). A popped entry is
// discarded as stale if its key no longer matches the node's current
// tentative value.
func Solve(nodes []node.Node, srcID, dstID int, dataBits float64, window node.TimeWindow, oracle Oracle) (Path, bool) {
	states := make(map[int]*State, len(nodes))
	idxByID := make(map[int]int, len(nodes))
	idByIdx := make([]int, len(nodes))

	for i, n := range nodes {
		states[n.ID] = &State{NodeID: n.ID, Kind: n.Kind, Tentative: math.Inf(1)}
		idxByID[n.ID] = i
		idByIdx[i] = n.ID
	}

	src, ok := states[srcID]
	if !ok {
		return nil, false
	}
	if _, ok := states[dstID]; !ok {
		return nil, false
	}

	src.Tentative = window.Start

	pq := pqueue.New()
	for _, n := range nodes {
		pq.Push(idxByID[n.ID], states[n.ID].Tentative)
	}

	for !pq.IsEmpty() {
		idx, key, _ := pq.PopMin()
		uID := idByIdx[idx]
		u := states[uID]

		if key != u.Tentative {
			continue // stale entry: a cheaper relaxation already superseded it
		}

		if math.IsInf(key, 1) {
			return nil, false
		}

		if uID == dstID {
			return reconstructPath(states, srcID, dstID), true
		}

		for _, v := range nodes {
			if v.ID == srcID || v.ID == uID {
				continue
			}

			candidate := oracle(uID, v.ID, dataBits, u.Tentative)
			vState := states[v.ID]
			if candidate < vState.Tentative {
				vState.Tentative = candidate
				vState.Predecessor = uID
				vState.HasPredecessor = true
				pq.Push(idxByID[v.ID], candidate)
			}
		}
	}

	return nil, false
}

// reconstructPath walks predecessors from dstID back to srcID and reverses
// the result into departure order.
func reconstructPath(states map[int]*State, srcID, dstID int) Path {
	var reversed Path

	for id := dstID; ; {
		s := states[id]
		reversed = append(reversed, node.PathHop{NodeID: s.NodeID, Kind: s.Kind, Arrival: s.Tentative})
		if id == srcID {
			break
		}

		id = s.Predecessor
	}

	path := make(Path, len(reversed))
	for i, hop := range reversed {
		path[len(reversed)-1-i] = hop
	}

	return path
}
