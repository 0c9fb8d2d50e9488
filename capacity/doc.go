// Package capacity implements the binary-search capacity optimizer: given
// a source, a destination, and a planning window, it finds the maximum
// data volume D that the TDSP solver (package tdsp) can deliver within the
// window, and returns the witnessing path.
//
// The search is grounded on
// original_source/src/max-capacity-path/link-capacity-path.c's
// get_max_link_path, generalized from an integer kilobyte step to a
// configurable epsilon via the same functional-options idiom used
// throughout this module, and given an optional upper-bound warm-up pass
// for when the static starting bound undershoots the window's true
// capacity.
package capacity
