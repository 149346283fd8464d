package selector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotto-kmc/lotto/kmcerr"
)

type constantCalculator struct {
	rate float64
	err  error
}

func (c constantCalculator) CalculateRate(id int) (float64, error) {
	return c.rate, c.err
}

func TestCalculateRate_PropagatesCalculatorError(t *testing.T) {
	wantErr := errors.New("boom")
	base := NewBase[int](constantCalculator{err: wantErr})

	_, err := base.CalculateRate(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestCalculateRate_RejectsNegativeRate(t *testing.T) {
	base := NewBase[int](constantCalculator{rate: -1})

	_, err := base.CalculateRate(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kmcerr.ErrPrecondition)
}

func TestCalculateRates_BatchMatchesIndividual(t *testing.T) {
	base := NewBase[int](constantCalculator{rate: 2.5})

	rates, err := base.CalculateRates([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, rates)
}

func TestCalculateTimeStep_PanicsOnNonPositiveTotalRate(t *testing.T) {
	base := NewBase[int](constantCalculator{rate: 1})

	assert.Panics(t, func() { base.CalculateTimeStep(0) })
	assert.Panics(t, func() { base.CalculateTimeStep(-1) })
}

func TestCalculateTimeStep_NonNegative(t *testing.T) {
	base := NewBase[int](constantCalculator{rate: 1})
	base.Reseed(0)

	for i := 0; i < 1000; i++ {
		dt := base.CalculateTimeStep(1.0)
		assert.GreaterOrEqual(t, dt, 0.0)
	}
}

func TestReseed_MakesSeedObservable(t *testing.T) {
	base := NewBase[int](constantCalculator{rate: 1})
	base.Reseed(123)
	assert.Equal(t, int64(123), base.Seed())
}

func TestReseed_Determinism(t *testing.T) {
	b1 := NewBase[int](constantCalculator{rate: 1})
	b2 := NewBase[int](constantCalculator{rate: 1})
	b1.Reseed(7)
	b2.Reseed(7)

	for i := 0; i < 10; i++ {
		assert.Equal(t, b1.CalculateTimeStep(3.0), b2.CalculateTimeStep(3.0))
	}
}
