package node

import (
	"errors"
	"fmt"
	"math"

	"github.com/kimmseo/cvqkd-routing/geometry"
)

// Sentinel errors for node-universe and window construction.
var (
	// ErrInvalidWindow indicates a TimeWindow whose bounds or step are
	// not well formed: dt must be positive and t_end must exceed t_start.
	ErrInvalidWindow = errors.New("node: invalid time window")

	// ErrEmptyNodeSet indicates a planning run was asked to operate over
	// zero nodes.
	ErrEmptyNodeSet = errors.New("node: empty node set")

	// ErrDuplicateNodeID indicates two nodes in the same run share an ID.
	ErrDuplicateNodeID = errors.New("node: duplicate node id")
)

// Kind tags a Node as one of exactly two routable endpoint types. The SKR
// adapter (package skrmodel) dispatches on the pair of Kinds; there are
// exactly four cases.
type Kind uint8

const (
	// Satellite is a node whose position/velocity come from orbital
	// propagation (catalogue-numbered, positive ID).
	Satellite Kind = iota

	// GroundStation is a node fixed to a site on Earth's surface
	// (assigned-slot, negative ID).
	GroundStation
)

// String renders a Kind for logs and test failure messages.
func (k Kind) String() string {
	switch k {
	case Satellite:
		return "satellite"
	case GroundStation:
		return "ground_station"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// GroundSite carries the geodetic location of a GroundStation node.
// Satellites leave this nil; see Node.Site.
type GroundSite struct {
	LatDeg float64
	LonDeg float64
	AltKM  float64
}

// Node is the identity of one routable endpoint: a positive catalogue
// number for satellites, or a negative assigned slot for ground stations.
// Descriptor is an opaque pointer passed through, unexamined, to the
// external Propagator (package skrmodel); this package never interprets
// it. Site is non-nil only for GroundStation nodes.
//
// The set of Nodes is fixed for the duration of one planning run; IDs are
// unique within that run (ErrDuplicateNodeID enforces this at the
// boundary — see package cvqkd's PlanMaxCapacity).
type Node struct {
	ID         int
	Kind       Kind
	Descriptor any
	Site       *GroundSite
}

// TimeWindow is the planning interval [Start, End] sampled every Step UTC
// days. Invariant: End > Start, Step > 0, and the sample count fits a
// signed 32-bit integer.
type TimeWindow struct {
	Start float64
	End   float64
	Step  float64
}

// NewTimeWindow validates and constructs a TimeWindow. It is the only
// constructor: zero-value TimeWindows are never valid for use by trajectory
// or oracle packages.
func NewTimeWindow(start, end, step float64) (TimeWindow, error) {
	w := TimeWindow{Start: start, End: end, Step: step}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}

	return w, nil
}

// Validate reports ErrInvalidWindow if the window's bounds or step violate
// this type's invariant, or if the sample count would overflow int32.
func (w TimeWindow) Validate() error {
	if w.Step <= 0 {
		return fmt.Errorf("%w: step %g must be > 0", ErrInvalidWindow, w.Step)
	}
	if w.End <= w.Start {
		return fmt.Errorf("%w: end %g must exceed start %g", ErrInvalidWindow, w.End, w.Start)
	}

	n := w.sampleCountFloat()
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: sample count %g overflows int32", ErrInvalidWindow, n)
	}

	return nil
}

func (w TimeWindow) sampleCountFloat() float64 {
	return math.Ceil((w.End-w.Start)/w.Step) + 1
}

// SampleCount returns N, the number of samples in the window: the number of
// SampledStates a Trajectory holds for this window.
func (w TimeWindow) SampleCount() int {
	return int(w.sampleCountFloat())
}

// TimeAt returns the UTC time represented by sample index i: Start + i*Step.
func (w TimeWindow) TimeAt(i int) float64 {
	return w.Start + float64(i)*w.Step
}

// IndexAtOrAfter returns the index of the first sample at or after t:
// ceil((t - Start) / Step). It is not bounds-checked against N; callers
// compare the result against SampleCount().
func (w TimeWindow) IndexAtOrAfter(t float64) int {
	return int(math.Ceil((t - w.Start) / w.Step))
}

// SampledState is one node's kinematic snapshot at a single sample index:
// position, velocity, and the UTC time it represents. Ground-station
// samples leave Velocity at its zero value; only Position (the site's
// instantaneous location) and UTC matter for them.
type SampledState struct {
	Position geometry.Vector
	Velocity geometry.Vector
	UTC      float64
}

// PathHop is one entry of a successful planning run's result: a node
// identity and the UTC instant the path's traversal reaches it. The first
// hop is always the source at the window's start time; arrival times are
// strictly non-decreasing along the path.
type PathHop struct {
	NodeID  int
	Kind    Kind
	Arrival float64
}
