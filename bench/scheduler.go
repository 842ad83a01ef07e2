package bench

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/weiihann/resizebench/display"
	"github.com/weiihann/resizebench/imageset"
	"github.com/weiihann/resizebench/technique"
)

// MatrixConfig describes one full benchmark matrix.
type MatrixConfig struct {
	Samples    []imageset.Sample
	Techniques []technique.Technique
	Runs       int
	Scale      float64
}

// Scheduler drives the trial matrix through a single worker. Results are
// handed to the sink as they complete; the sink is responsible for getting
// them onto the display context.
type Scheduler struct {
	runner  *Runner
	ui      *display.Context
	trigger *display.Trigger
	log     *display.Log
	sink    func(Result)
	logger  *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler wires a Scheduler. sink is called once per pair, from the
// worker goroutine, in matrix order.
func NewScheduler(
	runner *Runner,
	ui *display.Context,
	trigger *display.Trigger,
	log *display.Log,
	sink func(Result),
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		runner:  runner,
		ui:      ui,
		trigger: trigger,
		log:     log,
		sink:    sink,
		logger:  logger.With(slog.String("component", "scheduler")),
	}
}

// Start launches the matrix and returns a channel closed when the trailing
// completion unit has run. Starting while a matrix is running is an error.
//
// The full matrix plus the completion unit is enqueued before the worker is
// released, so the completion unit runs last no matter how long individual
// trials take. Trials execute one at a time, images outer, techniques
// inner, in declaration order. There is no cancellation: once released,
// the matrix runs to completion.
func (s *Scheduler) Start(ctx context.Context, cfg MatrixConfig) (<-chan struct{}, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()

		return nil, fmt.Errorf("matrix already running")
	}

	s.running = true
	s.mu.Unlock()

	// Disarm the trigger and drop the previous report before any trial
	// can produce output.
	s.ui.Sync(func() {
		s.trigger.Disable()
		s.log.Clear()
	})

	pairs := len(cfg.Samples) * len(cfg.Techniques)
	jobs := make(chan func(), pairs+1)

	for _, sample := range cfg.Samples {
		for _, tech := range cfg.Techniques {
			sample, tech := sample, tech
			jobs <- func() {
				runs := PlanRuns(cfg.Runs, sample, tech)
				s.sink(s.runner.Run(ctx, sample, tech, runs, cfg.Scale))
			}
		}
	}

	done := make(chan struct{})

	jobs <- func() {
		s.ui.Post(func() {
			s.trigger.Enable()
		})

		s.mu.Lock()
		s.running = false
		s.mu.Unlock()

		s.logger.Info("matrix complete", slog.Int("pairs", pairs))
		close(done)
	}

	close(jobs)

	s.logger.Info("matrix started",
		slog.Int("pairs", pairs),
		slog.Int("runs_per_pair", cfg.Runs),
		slog.Float64("scale", cfg.Scale),
	)

	// Released only now that everything is queued.
	go func() {
		for job := range jobs {
			job()
		}
	}()

	return done, nil
}

// Running reports whether a matrix is in flight.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}
