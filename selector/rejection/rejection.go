package rejection

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lotto-kmc/lotto/kmcerr"
	"github.com/lotto-kmc/lotto/selector"
)

// Selector implements rejection-KMC event selection. It owns no tree:
// selection draws a uniformly random candidate event and accepts it
// with probability rate/rateUpperBound, repeating on rejection.
//
// Not safe for concurrent use (see package selector's doc comment).
type Selector[EventID comparable] struct {
	selector.Base[EventID]

	rateUpperBound float64
	ids            []EventID
	metrics        *metrics
}

// New constructs a rejection selector. rateUpperBound must be strictly
// positive and ids must be non-empty; both violations are
// InvalidConfiguration failures surfaced from the constructor.
func New[EventID comparable](calc selector.RateCalculator[EventID], rateUpperBound float64, ids []EventID) (*Selector[EventID], error) {
	if rateUpperBound <= 0 {
		return nil, fmt.Errorf("rejection: %w: rate upper bound must be positive, got %v", kmcerr.ErrInvalidConfiguration, rateUpperBound)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("rejection: %w: event id list must not be empty", kmcerr.ErrInvalidConfiguration)
	}

	idsCopy := make([]EventID, len(ids))
	copy(idsCopy, ids)

	return &Selector[EventID]{
		Base:           selector.NewBase[EventID](calc),
		rateUpperBound: rateUpperBound,
		ids:            idsCopy,
	}, nil
}

// SelectEvent repeatedly draws a candidate event and a uniform(0,1]
// acceptance threshold until one is accepted, accumulating the Poisson
// time step at every attempt (including rejected ones), and returns the
// accepted event and the total elapsed time.
//
// This loop has no iteration cap by design: capping it would bias event
// selection toward whichever event happens to be drawn before the cap is
// hit, corrupting the statistics the caller relies on. If the expected
// rate is small relative to rateUpperBound, this call may run for a
// long time; call Instrument to observe iteration counts if that's a
// concern.
func (s *Selector[EventID]) SelectEvent() (EventID, float64, error) {
	var zero EventID
	totalRateEnvelope := s.rateUpperBound * float64(len(s.ids))
	var accumulatedTimeStep float64

	for {
		accumulatedTimeStep += s.CalculateTimeStep(totalRateEnvelope)
		if s.metrics != nil {
			s.metrics.iterations.Inc()
		}

		candidateIdx := s.SampleIntegerRange(uint64(len(s.ids) - 1))
		candidateID := s.ids[candidateIdx]

		rate, err := s.CalculateRate(candidateID)
		if err != nil {
			return zero, 0, err
		}
		if rate > s.rateUpperBound {
			return zero, 0, fmt.Errorf("rejection: %w: rate %v for event %v exceeds upper bound %v",
				kmcerr.ErrPrecondition, rate, candidateID, s.rateUpperBound)
		}

		u := s.SampleUnitInterval()
		if rate/s.rateUpperBound >= u {
			if s.metrics != nil {
				s.metrics.timeSteps.Observe(accumulatedTimeStep)
			}
			s.Logger().Debugf("rejection: selected event %v after accumulating %v ticks", candidateID, accumulatedTimeStep)
			return candidateID, accumulatedTimeStep, nil
		}
	}
}

// metrics groups the optional prometheus instrumentation described in
// the design notes: "provide optional instrumentation (iteration
// counter) for observability if desired". Off by default; see
// Instrument.
type metrics struct {
	iterations prometheus.Counter
	timeSteps  prometheus.Histogram
}

// Instrument registers prometheus metrics for this selector's iteration
// count and accepted time steps with reg, and turns on their collection.
// Calling Instrument is optional and has no effect on selection
// behavior -- only on observability.
func (s *Selector[EventID]) Instrument(reg prometheus.Registerer) error {
	m := &metrics{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lotto_rejection_iterations_total",
			Help: "Number of candidate draws attempted across all SelectEvent calls, including rejected ones.",
		}),
		timeSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "lotto_rejection_accepted_time_step_seconds",
			Help: "Accumulated Poisson time step for each accepted SelectEvent call.",
		}),
	}
	if err := reg.Register(m.iterations); err != nil {
		return fmt.Errorf("rejection: registering iterations counter: %w", err)
	}
	if err := reg.Register(m.timeSteps); err != nil {
		return fmt.Errorf("rejection: registering time step histogram: %w", err)
	}
	s.metrics = m
	return nil
}
