// Package rejectionfree implements rejection-free KMC event selection:
// an event-rate tree is maintained incrementally using an impact table
// describing which events' rates may change when a given event fires.
// Every SelectEvent call selects exactly one event -- there is no
// rejection loop -- and records which events are now stale so their
// rates are refreshed lazily, on the next call, rather than eagerly.
//
// Start with Selector.SelectEvent: its ordered steps are the entire
// algorithm.
package rejectionfree
