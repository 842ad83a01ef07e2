// Package bench runs the trial matrix: one timed trial per (image,
// technique) pair, executed strictly one at a time.
package bench

// Result holds the outcome of one (image, technique) pair.
type Result struct {
	Image     string    `json:"image"`
	Technique string    `json:"technique"`
	Runs      []float64 `json:"runs_seconds"`
	Skipped   bool      `json:"skipped"`
	Failed    bool      `json:"failed"`
}

// Total returns the summed run time in seconds.
func (r Result) Total() float64 {
	var sum float64
	for _, d := range r.Runs {
		sum += d
	}

	return sum
}
