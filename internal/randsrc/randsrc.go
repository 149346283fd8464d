package randsrc

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
)

// Generator is a seeded uniform integer and real sampler. It wraps a single
// math/rand stream and remembers the seed it was last initialized with.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// New seeds a Generator from the platform's non-deterministic entropy
// source. Use Reseed for a deterministic, replayable stream.
func New() *Generator {
	g := &Generator{}
	g.Reseed(entropySeed())
	return g
}

// Reseed re-initializes the generator's stream and records the seed, so a
// later call to Seed returns the same value and a fresh Generator seeded
// the same way reproduces the same draw sequence.
func (g *Generator) Reseed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the value this generator was last (re)seeded with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SampleIntegerRange returns a uniform integer in the closed interval
// [0, max]. Uses rejection sampling against the top of the uint64 range so
// the result is unbiased regardless of how max divides 2^64.
func (g *Generator) SampleIntegerRange(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	if max == math.MaxUint64 {
		return g.rng.Uint64()
	}
	n := max + 1
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v := g.rng.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// SampleUnitInterval returns a uniform real in the half-open interval
// (0, 1]. Never returns exactly 0: rand.Float64 is documented to return
// [0, 1), so 1-that value lands in (0, 1]. This matters because the
// Poisson time-step formula takes -ln(u), which diverges at u = 0.
func (g *Generator) SampleUnitInterval() float64 {
	return 1.0 - g.rng.Float64()
}

// entropySeed reads a seed from the OS entropy source. Falling back to it
// only in New; deterministic replay always goes through Reseed.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable on any real
		// platform; a fixed fallback keeps New usable in that edge case
		// without panicking.
		return 0
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
