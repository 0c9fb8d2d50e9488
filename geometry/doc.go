// Package geometry provides the 3-D vector primitives and the line-of-sight
// occlusion test shared by the trajectory cache and SKR adapter: dot and
// cross products, magnitude, Euclidean distance, and LOSClear, which tests
// whether the straight segment between two positions is blocked by Earth
// plus a fixed atmospheric margin.
package geometry
