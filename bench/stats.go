package bench

import "math"

// Mean returns the arithmetic mean of xs. Callers guarantee xs is
// non-empty; the zero-run case is short-circuited as skipped upstream.
func Mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation of xs (divide by N,
// not N-1): the samples are the full measured population, not a draw
// from one.
func StdDev(xs []float64) float64 {
	mean := Mean(xs)

	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(xs)))
}
