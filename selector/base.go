package selector

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lotto-kmc/lotto/internal/randsrc"
	"github.com/lotto-kmc/lotto/kmcerr"
)

// Base holds the utilities shared by both concrete selectors: rate
// lookups through an injected RateCalculator, the Poisson time-step
// formula, and a reseedable generator. Selectors embed Base rather than
// wrap it, so its methods are promoted directly onto them.
type Base[EventID comparable] struct {
	calc RateCalculator[EventID]
	gen  *randsrc.Generator
	log  *logrus.Entry
}

// NewBase constructs a Base around calc, seeding its generator from
// non-deterministic entropy (see Reseed for deterministic replay).
func NewBase[EventID comparable](calc RateCalculator[EventID]) Base[EventID] {
	return Base[EventID]{
		calc: calc,
		gen:  randsrc.New(),
		log:  logrus.WithField("component", "selector"),
	}
}

// CalculateRate returns the rate calculator's current rate for id. A
// negative rate is a PreconditionViolated failure attributable to the
// calculator, so it is returned as an error rather than a panic.
func (b *Base[EventID]) CalculateRate(id EventID) (float64, error) {
	rate, err := b.calc.CalculateRate(id)
	if err != nil {
		return 0, fmt.Errorf("selector: rate calculator failed for event %v: %w", id, err)
	}
	if rate < 0 {
		return 0, fmt.Errorf("selector: %w: rate calculator returned negative rate %v for event %v", kmcerr.ErrPrecondition, rate, id)
	}
	return rate, nil
}

// CalculateRates is the batch form used at tree construction.
func (b *Base[EventID]) CalculateRates(ids []EventID) ([]float64, error) {
	rates := make([]float64, len(ids))
	for i, id := range ids {
		rate, err := b.CalculateRate(id)
		if err != nil {
			return nil, err
		}
		rates[i] = rate
	}
	return rates, nil
}

// CalculateTimeStep draws the Poisson process time step -ln(u)/totalRate,
// u uniform on (0, 1]. Panics if totalRate <= 0: every caller computes
// totalRate internally (from the event-rate tree or from the rejection
// envelope) immediately before this call, so a non-positive value here
// reflects a broken internal invariant, not a value the library's direct
// caller passed in.
func (b *Base[EventID]) CalculateTimeStep(totalRate float64) float64 {
	if totalRate <= 0 {
		panic(fmt.Sprintf("selector: CalculateTimeStep called with non-positive total rate %v", totalRate))
	}
	u := b.gen.SampleUnitInterval()
	return -math.Log(u) / totalRate
}

// SampleUnitInterval exposes the underlying generator's (0, 1] draw to
// derived selectors that need it directly (rejection-free's query value,
// rejection's acceptance test).
func (b *Base[EventID]) SampleUnitInterval() float64 {
	return b.gen.SampleUnitInterval()
}

// SampleIntegerRange exposes the underlying generator's closed-range
// integer draw to derived selectors (rejection's candidate index).
func (b *Base[EventID]) SampleIntegerRange(max uint64) uint64 {
	return b.gen.SampleIntegerRange(max)
}

// Reseed re-initializes the generator deterministically. Two selectors
// reseeded with the same value, given identical configuration, produce
// identical (EventID, Δt) sequences.
func (b *Base[EventID]) Reseed(seed int64) {
	b.gen.Reseed(seed)
}

// Seed returns the generator's current seed, enabling deterministic
// replay.
func (b *Base[EventID]) Seed() int64 {
	return b.gen.Seed()
}

// Logger returns the field logger derived selectors should log through,
// so every selector's log lines carry the same "component" field.
func (b *Base[EventID]) Logger() *logrus.Entry {
	return b.log
}
