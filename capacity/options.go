package capacity

import (
	"errors"
	"fmt"
)

// ErrBadEpsilon indicates a non-positive Epsilon was supplied.
var ErrBadEpsilon = errors.New("capacity: epsilon must be > 0")

// ErrBadUpperBound indicates a non-positive initial UpperBound was
// supplied.
var ErrBadUpperBound = errors.New("capacity: upper bound must be > 0")

// Options configures Optimize. The zero value is not valid; construct via
// DefaultOptions and override with the With* functions.
type Options struct {
	// Epsilon is the binary search's resolution in bits: the search
	// narrows D_lo/D_hi to within Epsilon of each other before stopping.
	Epsilon float64

	// UpperBound is the initial D_hi. Defaults are sized for the
	// gigabyte-scale envelope a low-Earth-orbit constellation implies; callers with a
	// known smaller or larger planning regime should override it.
	UpperBound float64

	// AutoDoubleUpperBound, when true, doubles UpperBound (and retries)
	// whenever the initial upper bound itself turns out to be
	// deliverable, so the search never silently caps out below the
	// window's true capacity.
	AutoDoubleUpperBound bool

	// MaxDoublings bounds the warm-up pass so a pathologically
	// high-capacity window cannot double forever.
	MaxDoublings int

	// OnProbe, if non-nil, is called after every binary-search trial with
	// the candidate data volume and whether tdsp.Solve found a path for
	// it. It exists so callers (cmd/maxcap in particular) can recover the
	// original link-capacity-path.c trace of trial sizes without Optimize
	// itself importing a logging package.
	OnProbe func(dataBits float64, feasible bool)
}

// Option is a functional option for Options.
type Option func(*Options)

// WithEpsilon overrides the search resolution. Panics via ErrBadEpsilon if
// e is not strictly positive.
func WithEpsilon(e float64) Option {
	return func(o *Options) {
		if e <= 0 {
			panic(fmt.Errorf("%w: got %g", ErrBadEpsilon, e))
		}
		o.Epsilon = e
	}
}

// WithUpperBound overrides the initial D_hi. Panics via ErrBadUpperBound
// if u is not strictly positive.
func WithUpperBound(u float64) Option {
	return func(o *Options) {
		if u <= 0 {
			panic(fmt.Errorf("%w: got %g", ErrBadUpperBound, u))
		}
		o.UpperBound = u
	}
}

// WithAutoDoubleUpperBound toggles the upper-bound warm-up pass.
func WithAutoDoubleUpperBound(enabled bool) Option {
	return func(o *Options) {
		o.AutoDoubleUpperBound = enabled
	}
}

// WithMaxDoublings bounds the warm-up pass's retry count.
func WithMaxDoublings(n int) Option {
	return func(o *Options) {
		o.MaxDoublings = n
	}
}

// WithOnProbe installs a callback invoked after each binary-search trial.
func WithOnProbe(fn func(dataBits float64, feasible bool)) Option {
	return func(o *Options) {
		o.OnProbe = fn
	}
}

// DefaultOptions returns sensible defaults: Epsilon of 0.1 kilobit (100
// bits, a fine enough resolution for kilobit-scale key volumes), an initial
// upper bound of 8e9 bits (1 gigabyte), auto-doubling enabled, capped at
// 10 doublings.
func DefaultOptions() Options {
	return Options{
		Epsilon:              100,
		UpperBound:           8e9,
		AutoDoubleUpperBound: true,
		MaxDoublings:         10,
	}
}
