package eventtree

import (
	"fmt"

	"github.com/lotto-kmc/lotto/internal/sumtree"
	"github.com/lotto-kmc/lotto/kmcerr"
)

// Tree adapts a sumtree.Tree with event identifiers at the leaves,
// providing the total rate, a weighted-random lookup by cumulative
// rate, and per-event rate update.
type Tree[EventID comparable] struct {
	tree          *sumtree.Tree[nodeData[EventID]]
	idToLeafIndex map[EventID]int
}

// New builds a Tree from parallel id/rate slices. ids must be unique and
// the same length as rates; every rate must be non-negative. Returns an
// error (not a panic) because these are caller-supplied construction
// parameters.
func New[EventID comparable](ids []EventID, rates []float64) (*Tree[EventID], error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("eventtree: %w: ids must not be empty", kmcerr.ErrInvalidConfiguration)
	}
	if len(ids) != len(rates) {
		return nil, fmt.Errorf("eventtree: %w: ids has %d entries but rates has %d", kmcerr.ErrInvalidConfiguration, len(ids), len(rates))
	}

	idToLeafIndex := make(map[EventID]int, len(ids))
	leaves := make([]nodeData[EventID], len(ids))
	for i, id := range ids {
		if rates[i] < 0 {
			return nil, fmt.Errorf("eventtree: %w: rate for event %v is negative (%v)", kmcerr.ErrInvalidConfiguration, id, rates[i])
		}
		if _, exists := idToLeafIndex[id]; exists {
			return nil, fmt.Errorf("eventtree: %w: duplicate event id %v", kmcerr.ErrInvalidConfiguration, id)
		}
		idToLeafIndex[id] = i
		leaves[i] = leafData(id, rates[i])
	}

	return &Tree[EventID]{
		tree:          sumtree.New(leaves),
		idToLeafIndex: idToLeafIndex,
	}, nil
}

// TotalRate returns the sum of every event's current rate.
func (t *Tree[EventID]) TotalRate() float64 {
	return t.tree.Root().rate
}

// IDs returns every leaf's event ID in insertion order. Exposed for
// callers (and tests) that need to inspect tree contents directly.
func (t *Tree[EventID]) IDs() []EventID {
	leaves := t.tree.Leaves()
	ids := make([]EventID, len(leaves))
	for i, leaf := range leaves {
		ids[i] = leaf.id
	}
	return ids
}

// Rates returns every leaf's current rate in insertion order.
func (t *Tree[EventID]) Rates() []float64 {
	leaves := t.tree.Leaves()
	rates := make([]float64, len(leaves))
	for i, leaf := range leaves {
		rates[i] = leaf.rate
	}
	return rates
}

// LeafIndex returns id's position in insertion order, and whether id is
// known to the tree at all.
func (t *Tree[EventID]) LeafIndex(id EventID) (int, bool) {
	idx, ok := t.idToLeafIndex[id]
	return idx, ok
}

// IDAt returns the event ID of the leaf at insertion-order position i.
// Panics if i is out of range, same as sumtree.Tree.Update -- this is an
// internal accessor used only with indices this package itself produced.
func (t *Tree[EventID]) IDAt(i int) EventID {
	return t.tree.Leaves()[i].id
}

// UpdateRate writes a new rate for id and resums the tree in O(log N).
// Returns an OutOfDomain error if id was not part of the tree at
// construction, and an InvalidConfiguration-shaped error if newRate is
// negative.
func (t *Tree[EventID]) UpdateRate(id EventID, newRate float64) error {
	if newRate < 0 {
		return fmt.Errorf("eventtree: %w: new rate for event %v is negative (%v)", kmcerr.ErrInvalidConfiguration, id, newRate)
	}
	leafIdx, ok := t.idToLeafIndex[id]
	if !ok {
		return fmt.Errorf("eventtree: %w: unknown event id %v", kmcerr.ErrOutOfDomain, id)
	}
	current := t.tree.Leaves()[leafIdx]
	t.tree.Update(leafIdx, current.updateRate(newRate))
	return nil
}

// QueryTree performs the weighted lookup: it returns the smallest leaf i
// such that the cumulative rate of leaves [0, i] is >= u. Precondition
// 0 < u <= TotalRate(); violating it is a PreconditionViolated failure,
// reported as a panic since it reflects an internal invariant break (the
// caller-visible entry points -- the two selectors -- always derive u
// from TotalRate() themselves) rather than a value the library's direct
// caller passed in.
func (t *Tree[EventID]) QueryTree(u float64) EventID {
	total := t.TotalRate()
	if u <= 0 || u > total {
		panic(fmt.Sprintf("eventtree: query value %v out of range (0, %v]", u, total))
	}

	running := u
	leafIdx := t.tree.Descend(func(left, right nodeData[EventID]) bool {
		if running <= left.rate {
			return true
		}
		running -= left.rate
		return false
	})
	return t.tree.Leaves()[leafIdx].id
}
