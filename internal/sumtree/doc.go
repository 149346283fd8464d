// Package sumtree implements the inverted binary sum tree: a perfect-or
// near-perfect binary tree built bottom-up from a non-empty leaf sequence,
// where every internal node's payload is the monoidal sum of its children.
//
// Unlike a classic "inverted tree" built from owning pointers with shared
// parent references, nodes live in a flat arena (a single slice) and
// left/right/parent links are indices into that slice. This keeps
// traversal cache-friendly and makes the O(log N) leaf-to-root walk in
// Update a simple loop over integers rather than a pointer chase through
// shared ownership, per this module's explicit preference for
// arena-of-indices over an ownership graph.
//
// Read Tree.Update first: it is the one operation every other part of
// this module (the event-rate tree, and through it the rejection-free
// selector) ultimately calls.
package sumtree
