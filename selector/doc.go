// Package selector defines the shared machinery behind both KMC event
// selectors: the RateCalculator capability a caller implements, and Base,
// which every selector embeds for rate lookups, the Poisson time-step
// formula, and a reseedable generator.
//
// Start with RateCalculator and Base; then see selector/rejection and
// selector/rejectionfree for the two concrete selection algorithms.
//
// Not safe for concurrent use: a selector (and the Base it embeds) is
// single-threaded and strictly sequential, matching this module's
// concurrency model throughout.
package selector
