// Package randsrc provides the seeded pseudo-random source shared by every
// selector in this module.
//
// A Generator wraps a single math/rand stream and tracks the seed it was
// last initialized with, so a caller can record the seed and later replay
// the exact same draw sequence (selector.Base.Reseed forwards here).
//
// Not safe for concurrent use: a Generator is owned by exactly one
// selector, matching the single-threaded, strictly sequential model this
// module assumes throughout.
package randsrc
