// Package report formats trial results into the newest-first text log.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/weiihann/resizebench/bench"
)

// Block formats one result as a self-contained log block. Successful pairs
// get their run times, total, and population statistics to four decimal
// places; skipped and failed pairs get a single marker line. Every block
// ends with a blank line so prepended blocks never run together.
func Block(r bench.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - %s\n", r.Image, r.Technique)

	switch {
	case r.Skipped:
		b.WriteString("SKIPPED\n")
	case r.Failed:
		b.WriteString("TEST FAILED\n")
	default:
		vals := make([]string, len(r.Runs))
		for i, d := range r.Runs {
			vals[i] = fmt.Sprintf("%.4f", d)
		}

		b.WriteString(strings.Join(vals, " "))
		b.WriteString("\n")

		fmt.Fprintf(&b, "total time: %.4f\n", r.Total())
		fmt.Fprintf(&b, "average: %.4f, s.d.: %.4f\n",
			bench.Mean(r.Runs), bench.StdDev(r.Runs))
	}

	b.WriteString("\n")

	return b.String()
}

// Generate writes all result blocks to w, newest first. results is in
// completion order, so it is walked backwards.
func Generate(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	for i := len(results) - 1; i >= 0; i-- {
		if _, err := io.WriteString(w, Block(results[i])); err != nil {
			return fmt.Errorf("write block: %w", err)
		}
	}

	return nil
}

// GenerateJSON writes results as JSON to w, in completion order.
func GenerateJSON(w io.Writer, results []bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}
