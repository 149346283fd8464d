// Package eventtree composes sumtree.Tree with event identifiers at the
// leaves: it is the event-rate tree both selectors query for total rate
// and weighted-random event selection.
//
// nodeData is a tagged variant: a leaf carries an event ID and its
// rate; an internal node carries only a summed rate. Go has no
// Option<T>, so the "maybe id" is a plain hasID bool alongside the
// zero-valued id field -- the same pattern the standard library uses
// for sql.NullString.
package eventtree
