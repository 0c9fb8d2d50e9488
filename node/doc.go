// Package node defines the identity, kind, and time-sampling types shared by
// every routing component: the node universe, the planning window, a single
// sampled kinematic state, and a path hop in the final result.
//
// Node modeling follows a tagged variant, not inheritance: a Node carries a
// Kind (Satellite or GroundStation) that downstream packages switch on,
// never a type hierarchy. There are exactly two kinds and exactly four
// kind-pair dispatch cases in the SKR adapter (package skrmodel).
package node
