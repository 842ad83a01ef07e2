// Package main provides the CLI entry point for resizebench, a harness
// that times image downscaling techniques against sample images.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/weiihann/resizebench/bench"
	"github.com/weiihann/resizebench/display"
	"github.com/weiihann/resizebench/imageset"
	"github.com/weiihann/resizebench/report"
	"github.com/weiihann/resizebench/technique"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "resizebench",
		Short: "Image downscaling benchmark harness",
		Long: `Resizebench times six downscaling techniques against two sample
images, running each pair a fixed number of times on a strictly serial
queue and reporting per-run timings, means, and standard deviations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		runs       int
		scale      float64
		seed       int64
		imagesDir  string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full trial matrix",
		Long: `Generate (or load) the two sample images and run every technique
against each of them, printing the report log to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatrix(cmd.Context(), logger, runConfig{
				runs:       runs,
				scale:      scale,
				seed:       seed,
				imagesDir:  imagesDir,
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&runs, "runs", 10,
		"Timed runs per (image, technique) pair")
	flags.Float64Var(&scale, "scale", 0.1,
		"Downscale factor applied by every trial")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed for sample generation (0 = use current time)")
	flags.StringVar(&imagesDir, "images", "",
		"Directory of pre-generated sample images (skip generation)")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of the text log")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List samples, techniques, and the planned run matrix",
		RunE: func(_ *cobra.Command, _ []string) error {
			samples := []imageset.Sample{
				{Name: imageset.SmallName, Width: imageset.SmallWidth, Height: imageset.SmallHeight},
				{Name: imageset.LargeName, Width: imageset.LargeWidth, Height: imageset.LargeHeight},
			}

			for _, s := range samples {
				fmt.Printf("%s (%dx%d)\n", s.Name, s.Width, s.Height)

				for _, t := range technique.All() {
					fmt.Printf("  %-16s %-26s runs=%d\n",
						t.Name, t.Label, bench.PlanRuns(10, s, t))
				}
			}

			return nil
		},
	}
}

type runConfig struct {
	runs       int
	scale      float64
	seed       int64
	imagesDir  string
	outputJSON bool
}

func runMatrix(ctx context.Context, logger *slog.Logger, cfg runConfig) error {
	if cfg.runs < 0 {
		return fmt.Errorf("--runs must not be negative")
	}

	// Step 1: Resolve the sample images (generate unless a directory of
	// pre-generated ones was given).
	var (
		samples []imageset.Sample
		err     error
	)

	if cfg.imagesDir != "" {
		samples, err = imageset.Load(cfg.imagesDir)
		if err != nil {
			return fmt.Errorf("load samples: %w", err)
		}
	} else {
		seed := cfg.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		dir, err := os.MkdirTemp("", "resizebench-images-*")
		if err != nil {
			return fmt.Errorf("create image dir: %w", err)
		}

		defer os.RemoveAll(dir)

		samples, err = imageset.Generate(dir, seed)
		if err != nil {
			return fmt.Errorf("generate samples: %w", err)
		}

		logger.InfoContext(ctx, "samples generated",
			slog.String("dir", dir),
			slog.Int64("seed", seed),
		)
	}

	// Step 2: Build the display context and the state it owns.
	ui := display.NewContext()
	defer ui.Close()

	maxW, maxH := 1, 1
	for _, s := range samples {
		maxW = max(maxW, s.Width)
		maxH = max(maxH, s.Height)
	}

	surface := display.NewSurface(maxW, maxH)
	trigger := display.NewTrigger()
	log := display.NewLog()

	// Step 3: Wire the runner and scheduler. The sink hands each finished
	// result to the display context, whole blocks at a time.
	var results []bench.Result

	sink := func(res bench.Result) {
		results = append(results, res)
		block := report.Block(res)

		ui.Post(func() {
			log.Prepend(block)
		})
	}

	runner := bench.NewRunner(ui, surface, logger)
	sched := bench.NewScheduler(runner, ui, trigger, log, sink, logger)

	// Step 4: Run the matrix to completion.
	done, err := sched.Start(ctx, bench.MatrixConfig{
		Samples:    samples,
		Techniques: technique.All(),
		Runs:       cfg.runs,
		Scale:      cfg.scale,
	})
	if err != nil {
		return fmt.Errorf("start matrix: %w", err)
	}

	<-done

	// Step 5: Read the finished log from the display context and print it.
	var (
		output string
		armed  bool
	)

	ui.Sync(func() {
		output = log.String()
		armed = trigger.Enabled()
	})

	if !armed {
		return fmt.Errorf("trigger not re-armed after matrix completion")
	}

	if cfg.outputJSON {
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	logger.InfoContext(ctx, "benchmark complete",
		slog.Int("pairs", len(results)),
	)

	return nil
}
