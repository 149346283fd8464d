package stattest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Mean returns the arithmetic mean of values.
func Mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StandardErrorOfMean returns the standard error of the mean of n
// samples drawn from a distribution with the given standard deviation.
func StandardErrorOfMean(standardDeviation float64, n int) float64 {
	return standardDeviation / math.Sqrt(float64(n))
}

// CheckDeviationOfMean fails t if sampleMean deviates from trueMean by
// more than sigmaTolerance standard errors.
func CheckDeviationOfMean(t *testing.T, sampleMean, trueMean, standardError, sigmaTolerance float64) {
	t.Helper()
	assert.LessOrEqual(t, math.Abs(sampleMean-trueMean), sigmaTolerance*standardError,
		"sample mean %v deviates from true mean %v by more than %v standard errors (se=%v)",
		sampleMean, trueMean, sigmaTolerance, standardError)
}

// CheckUniformSamples fails t if samples aren't consistent with a
// uniform distribution on [minValue, maxValue]: every sample in bounds,
// and the sample mean within sigmaTolerance standard errors of the
// distribution's true mean.
func CheckUniformSamples(t *testing.T, minValue, maxValue float64, samples []float64, sigmaTolerance float64) {
	t.Helper()
	require := assert.New(t)
	require.Greater(maxValue, minValue)

	minSample, maxSample := samples[0], samples[0]
	for _, s := range samples {
		if s < minSample {
			minSample = s
		}
		if s > maxSample {
			maxSample = s
		}
	}
	require.GreaterOrEqual(minSample, minValue)
	require.LessOrEqual(maxSample, maxValue)

	trueMean := (minValue + maxValue) / 2.0
	trueStandardDeviation := (maxValue - minValue) / math.Sqrt(12.0)
	sampleMean := Mean(samples)
	standardError := StandardErrorOfMean(trueStandardDeviation, len(samples))
	CheckDeviationOfMean(t, sampleMean, trueMean, standardError, sigmaTolerance)
}

// CheckExponentialSamples fails t if samples aren't consistent with an
// exponential distribution of mean a (equivalently, a*ln(1/x) for x
// uniform on (0, 1)): every sample non-negative, and the sample mean
// within sigmaTolerance standard errors of a (an exponential
// distribution's mean and standard deviation are both equal to its
// scale parameter).
func CheckExponentialSamples(t *testing.T, a float64, samples []float64, sigmaTolerance float64) {
	t.Helper()
	require := assert.New(t)
	require.Greater(a, 0.0)

	minSample := samples[0]
	for _, s := range samples {
		if s < minSample {
			minSample = s
		}
	}
	require.GreaterOrEqual(minSample, 0.0)

	trueMean := a
	trueStandardDeviation := a
	sampleMean := Mean(samples)
	standardError := StandardErrorOfMean(trueStandardDeviation, len(samples))
	CheckDeviationOfMean(t, sampleMean, trueMean, standardError, sigmaTolerance)
}
