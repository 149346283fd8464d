package sumtree

import "fmt"

// Summable is the payload constraint for a Tree's node data: a monoid,
// total on any pair of values, that always combines two values into one
// of the same type. The sum of two leaf payloads is an internal-node
// payload in eventtree's nodeData case; Summable itself only needs the
// algebra, not that distinction.
type Summable[T any] interface {
	Sum(other T) T
}

const noIndex = -1

// node is one arena slot. left, right, and parent are indices into the
// owning Tree's nodes slice, or noIndex when absent (no child / no
// parent, i.e. root).
type node[T Summable[T]] struct {
	data   T
	left   int
	right  int
	parent int
}

// Tree is an inverted binary sum tree: leaves addressable by insertion
// index [0, N), every non-leaf node's data equal to the monoidal sum of
// its children (a missing child behaves as the identity, i.e. is simply
// skipped). Built once at construction; no leaves are added or removed
// afterward.
type Tree[T Summable[T]] struct {
	nodes    []node[T]
	leafIdxs []int // nodes[leafIdxs[i]] is leaf i, in insertion order
	rootIdx  int
}

// New builds a Tree from a non-empty sequence of leaf payloads. Panics if
// leaves is empty: an empty tree has no root and no meaningful sum, and
// every caller in this module (eventtree.Tree) already requires at least
// one event.
func New[T Summable[T]](leaves []T) *Tree[T] {
	if len(leaves) == 0 {
		panic("sumtree: New called with no leaves")
	}

	t := &Tree[T]{
		nodes:    make([]node[T], 0, 2*len(leaves)),
		leafIdxs: make([]int, len(leaves)),
	}

	level := make([]int, len(leaves))
	for i, data := range leaves {
		idx := t.appendNode(data, noIndex, noIndex)
		t.leafIdxs[i] = idx
		level[i] = idx
	}

	for len(level) > 1 {
		var next []int
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := noIndex
			if i+1 < len(level) {
				right = level[i+1]
			}
			parentData := t.combine(left, right)
			parentIdx := t.appendNode(parentData, left, right)
			t.nodes[left].parent = parentIdx
			if right != noIndex {
				t.nodes[right].parent = parentIdx
			}
			next = append(next, parentIdx)
		}
		level = next
	}
	t.rootIdx = level[0]

	return t
}

func (t *Tree[T]) appendNode(data T, left, right int) int {
	t.nodes = append(t.nodes, node[T]{data: data, left: left, right: right, parent: noIndex})
	return len(t.nodes) - 1
}

// combine returns the monoidal sum of two child node indices, either of
// which may be noIndex (treated as the monoid identity, i.e. dropped).
func (t *Tree[T]) combine(left, right int) T {
	switch {
	case left == noIndex:
		return t.nodes[right].data
	case right == noIndex:
		return t.nodes[left].data
	default:
		return t.nodes[left].data.Sum(t.nodes[right].data)
	}
}

// Leaves returns the N leaf payloads in insertion order.
func (t *Tree[T]) Leaves() []T {
	out := make([]T, len(t.leafIdxs))
	for i, idx := range t.leafIdxs {
		out[i] = t.nodes[idx].data
	}
	return out
}

// Root returns the root's payload: the monoidal sum of every leaf.
func (t *Tree[T]) Root() T {
	return t.nodes[t.rootIdx].data
}

// Update sets leaf i's payload and resums every ancestor up to the root.
// Complexity O(log N). Panics if i is out of range: an out-of-range leaf
// index is a programmer error, not a runtime condition this module can
// recover from.
func (t *Tree[T]) Update(i int, value T) {
	if i < 0 || i >= len(t.leafIdxs) {
		panic(fmt.Sprintf("sumtree: leaf index %d out of range [0, %d)", i, len(t.leafIdxs)))
	}
	idx := t.leafIdxs[i]
	t.nodes[idx].data = value

	for idx != t.rootIdx {
		idx = t.nodes[idx].parent
		t.nodes[idx].data = t.combine(t.nodes[idx].left, t.nodes[idx].right)
	}
}

// Descend walks from the root to a leaf. At each internal node with both
// children present, choose is given the left and right subtree payloads
// and must return true to go left, false to go right; a node missing one
// child is followed without consulting choose. Descend returns the leaf
// index reached. This is the shared mechanism behind eventtree.Tree's
// weighted lookup; it knows nothing about rates, only tree shape.
func (t *Tree[T]) Descend(choose func(left, right T) bool) int {
	idx := t.rootIdx
	for {
		n := &t.nodes[idx]
		if n.left == noIndex && n.right == noIndex {
			return t.leafIndexOf(idx)
		}
		if n.left == noIndex {
			idx = n.right
			continue
		}
		if n.right == noIndex {
			idx = n.left
			continue
		}
		if choose(t.nodes[n.left].data, t.nodes[n.right].data) {
			idx = n.left
		} else {
			idx = n.right
		}
	}
}

// leafIndexOf maps an arena index known to be a leaf back to its
// insertion-order position. Leaves are appended to the arena first and in
// insertion order, so this is a direct offset.
func (t *Tree[T]) leafIndexOf(arenaIdx int) int {
	return arenaIdx
}
