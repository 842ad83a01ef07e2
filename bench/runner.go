package bench

import (
	"context"
	"log/slog"
	"time"

	"github.com/weiihann/resizebench/display"
	"github.com/weiihann/resizebench/imageset"
	"github.com/weiihann/resizebench/technique"
)

// Runner executes the trials for a single pair. Each run's clock covers
// load, compute, and materialization on the display context; clearing the
// surface between runs is not timed.
type Runner struct {
	UI      *display.Context
	Surface *display.Surface
	Logger  *slog.Logger
}

// NewRunner creates a Runner that renders through ui onto surface.
func NewRunner(ui *display.Context, surface *display.Surface, logger *slog.Logger) *Runner {
	return &Runner{
		UI:      ui,
		Surface: surface,
		Logger:  logger.With(slog.String("component", "runner")),
	}
}

// Run executes the pair runs times and returns its Result. runs == 0 is a
// planned skip: no timing, no failure. A pair fails if any run errors or
// produces no image; failed runs never abort the remaining runs.
func (r *Runner) Run(
	ctx context.Context,
	sample imageset.Sample,
	tech technique.Technique,
	runs int,
	scale float64,
) Result {
	result := Result{
		Image:     sample.Name,
		Technique: tech.Label,
	}

	logger := r.Logger.With(
		slog.String("image", sample.Name),
		slog.String("technique", tech.Name),
	)

	if runs == 0 {
		result.Skipped = true
		logger.Info("pair skipped")

		return result
	}

	logger.Info("pair started", slog.Int("runs", runs))

	for i := 0; i < runs; i++ {
		start := time.Now()

		img, err := tech.Fn(ctx, sample.Path, scale)
		if err == nil && img != nil {
			// Block until the render finished: the elapsed time must
			// include materialization, not just the resize call.
			r.UI.Sync(func() {
				r.Surface.Show(img)
			})
		} else {
			result.Failed = true
			logger.Warn("run failed", slog.Int("run", i))
		}

		result.Runs = append(result.Runs, time.Since(start).Seconds())

		r.UI.Sync(func() {
			r.Surface.Clear()
		})
	}

	logger.Info("pair finished",
		slog.Duration("total", time.Duration(result.Total()*float64(time.Second))),
		slog.Bool("failed", result.Failed),
	)

	return result
}
