// stats/stats.go
// Package stats provides the descriptive statistics used to summarize
// benchmark samples: the sample mean, the Bessel-corrected standard
// deviation, and z-score confidence intervals around the mean.
package stats

import (
	"errors"
	"fmt"
	"math"
)

// z-scores for the confidence levels the report format recognizes. Any
// other level reuses the 95% score. This is a fixed approximation shared
// across implementations, not a general quantile function; changing it
// would change report reproducibility.
const (
	z95 = 1.96
	z99 = 2.576
)

// CalculateStatistics returns the arithmetic mean and the sample standard
// deviation of values. The standard deviation uses Bessel's correction
// (n-1 divisor); a single sample has a standard deviation of zero.
func CalculateStatistics(values []float64) (mean, stdev float64, err error) {
	if len(values) == 0 {
		return 0, 0, errors.New("stats: cannot calculate statistics on an empty sample")
	}

	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / n

	if len(values) < 2 {
		return mean, 0, nil
	}

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	stdev = math.Sqrt(sq / (n - 1))

	return mean, stdev, nil
}

// ConfidenceInterval returns the bounds mean ± z·(stdev/√n) for the given
// confidence level, where stdev/√n is the standard error of the mean.
// Recognized levels are 0.95 and 0.99.
func ConfidenceInterval(mean, stdev float64, n int, confidence float64) (lower, upper float64, err error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("stats: sample size must be positive, got %d", n)
	}

	z := z95
	if confidence == 0.99 {
		z = z99
	}

	se := stdev / math.Sqrt(float64(n))
	margin := z * se
	return mean - margin, mean + margin, nil
}
