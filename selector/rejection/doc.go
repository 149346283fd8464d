// Package rejection implements rejection-KMC event selection: draw a
// uniform candidate event, accept it with probability rate/upperBound,
// otherwise repeat. No tree is maintained; this is the right choice when
// per-event rate evaluation is cheap but the event count N is large
// enough that building and updating a cumulative-rate tree isn't worth
// it.
//
// The accept/reject loop is intentionally unbounded -- see Selector.SelectEvent.
package rejection
