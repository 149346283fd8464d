package rejectionfree

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/lotto-kmc/lotto/internal/eventtree"
	"github.com/lotto-kmc/lotto/kmcerr"
	"github.com/lotto-kmc/lotto/selector"
)

// Selector implements rejection-free KMC event selection. It owns an
// event-rate tree built once at construction and an impact table
// describing which events' rates go stale when a given event fires.
//
// Not safe for concurrent use (see package selector's doc comment).
type Selector[EventID comparable] struct {
	selector.Base[EventID]

	tree        *eventtree.Tree[EventID]
	impactTable map[EventID][]EventID

	// staleLeaves holds the leaf indices whose rates are stale since the
	// last SelectEvent call; it is refreshed at the start of the next
	// call. Backed by a sparse set (not a raw slice) so repeated ids in
	// an impact table entry collapse to one recomputation instead of
	// one per occurrence.
	staleLeaves  *sparsesets.Set
	stalePending bool
}

// New constructs a rejection-free selector. ids must be non-empty;
// violating that is an InvalidConfiguration failure. Initial rates are
// evaluated immediately via calc.CalculateRate. impactTable
// entries missing from the map default to an empty impacted-event list;
// every id referenced as an impacted event must itself be one of ids,
// or New returns an InvalidConfiguration error.
func New[EventID comparable](calc selector.RateCalculator[EventID], ids []EventID, impactTable map[EventID][]EventID) (*Selector[EventID], error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("rejectionfree: %w: event id list must not be empty", kmcerr.ErrInvalidConfiguration)
	}

	base := selector.NewBase[EventID](calc)
	rates, err := base.CalculateRates(ids)
	if err != nil {
		return nil, err
	}

	tree, err := eventtree.New(ids, rates)
	if err != nil {
		return nil, fmt.Errorf("rejectionfree: %w", err)
	}

	filled := make(map[EventID][]EventID, len(ids))
	for _, id := range ids {
		filled[id] = nil
	}
	for id, impacted := range impactTable {
		if _, known := filled[id]; !known {
			return nil, fmt.Errorf("rejectionfree: %w: impact table key %v is not in the event id list", kmcerr.ErrInvalidConfiguration, id)
		}
		for _, impactedID := range impacted {
			if _, known := tree.LeafIndex(impactedID); !known {
				return nil, fmt.Errorf("rejectionfree: %w: impact table entry for %v names unknown event %v", kmcerr.ErrInvalidConfiguration, id, impactedID)
			}
		}
		filled[id] = append([]EventID(nil), impacted...)
	}

	return &Selector[EventID]{
		Base:        base,
		tree:        tree,
		impactTable: filled,
		staleLeaves: sparsesets.New(len(ids)),
	}, nil
}

// SelectEvent performs the ordered steps of rejection-free selection:
// refresh rates left stale by the previous call, read the total rate,
// draw a Poisson time step, draw a weighted query value, descend the
// tree, and mark the newly selected event's impacted events as stale
// for the next call.
func (s *Selector[EventID]) SelectEvent() (EventID, float64, error) {
	var zero EventID

	if err := s.refreshStaleRates(); err != nil {
		return zero, 0, err
	}

	totalRate := s.tree.TotalRate()
	if totalRate <= 0 {
		panic(fmt.Sprintf("rejectionfree: total rate is %v at selection; the Markov chain is dead", totalRate))
	}

	timeStep := s.CalculateTimeStep(totalRate)
	queryValue := totalRate * s.SampleUnitInterval()
	selectedID := s.tree.QueryTree(queryValue)

	s.setImpactedAsStale(selectedID)

	return selectedID, timeStep, nil
}

// refreshStaleRates recomputes the rate of every leaf index left stale by
// the previous SelectEvent call, then clears the stale set.
func (s *Selector[EventID]) refreshStaleRates() error {
	if !s.stalePending {
		return nil
	}
	for _, leafIdx := range s.staleLeaves.Content() {
		id := s.tree.IDAt(leafIdx)
		rate, err := s.CalculateRate(id)
		if err != nil {
			return err
		}
		if err := s.tree.UpdateRate(id, rate); err != nil {
			return fmt.Errorf("rejectionfree: %w", err)
		}
	}
	s.staleLeaves.Clear()
	s.stalePending = false
	return nil
}

// setImpactedAsStale records the impacted events of selectedID so the
// next SelectEvent call refreshes exactly those. Panics if the stale set
// is already pending: refreshStaleRates always runs first in
// SelectEvent, so reaching here with stalePending still true is a broken
// internal invariant, not a caller-attributable failure.
func (s *Selector[EventID]) setImpactedAsStale(selectedID EventID) {
	if s.stalePending {
		panic("rejectionfree: pending stale set must be unset before recording a new selection")
	}
	for _, impactedID := range s.impactTable[selectedID] {
		leafIdx, _ := s.tree.LeafIndex(impactedID) // validated at construction
		s.staleLeaves.Insert(leafIdx)
	}
	s.stalePending = true
}

// IDs returns every leaf's event ID in insertion order. Exposed so
// tests can inspect selector state directly.
func (s *Selector[EventID]) IDs() []EventID {
	return s.tree.IDs()
}

// Rates returns every leaf's current rate in insertion order. Exposed
// so tests can inspect selector state directly.
func (s *Selector[EventID]) Rates() []float64 {
	return s.tree.Rates()
}

// LeafIndex returns id's position in insertion order, and whether id is
// known. Exposed so tests can inspect selector state directly.
func (s *Selector[EventID]) LeafIndex(id EventID) (int, bool) {
	return s.tree.LeafIndex(id)
}
