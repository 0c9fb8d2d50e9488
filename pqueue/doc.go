// Package pqueue implements the indexed min-heap the TDSP solver (package
// tdsp) uses as its frontier: a binary heap keyed on tentative arrival
// time, with lazy-deletion semantics instead of decrease-key.
//
// Pushing a new key for a node already in the heap does not remove the old
// entry; PopMin returns entries in non-decreasing key order including
// stale ones, and it is the caller's responsibility to discard a popped
// entry whose key no longer matches the node's current tentative value
// (a stale-entry frontier over dense integer indices, with an explicit
// FIFO tie-break).
package pqueue
