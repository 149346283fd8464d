// Package stattest provides statistical assertions shared by the
// selector packages' Monte Carlo tests: sample mean, standard error of
// the mean, and tolerance checks for the uniform and exponential
// (log-inverse) distributions that appear throughout this library's
// testable properties.
//
// Start with CheckDeviationOfMean for the general case, or
// CheckUniformSamples / CheckExponentialSamples for the two
// distribution shapes this library actually samples from.
package stattest
