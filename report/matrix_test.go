package report

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/weiihann/resizebench/bench"
	"github.com/weiihann/resizebench/display"
	"github.com/weiihann/resizebench/imageset"
	"github.com/weiihann/resizebench/technique"
)

// Drives a full matrix through the real scheduler, runner, and display
// context, with the report sink wired the way the CLI wires it.
func TestMatrixReport(t *testing.T) {
	ui := display.NewContext()
	defer ui.Close()

	trigger := display.NewTrigger()
	log := display.NewLog()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := bench.NewRunner(ui, display.NewSurface(8, 8), logger)

	sink := func(res bench.Result) {
		block := Block(res)

		ui.Post(func() {
			log.Prepend(block)
		})
	}

	sched := bench.NewScheduler(runner, ui, trigger, log, sink, logger)

	ok := func(context.Context, string, float64) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	}
	fail := func(context.Context, string, float64) (image.Image, error) {
		return nil, errors.New("filter unavailable")
	}

	techniques := []technique.Technique{
		{Name: "draw", Label: "nearest draw", Fn: ok},
		{Name: "simd", Label: "simd scaler", Fn: fail},
		{Name: "pipeline", Label: "filter pipeline", Fn: ok},
	}

	samples := []imageset.Sample{
		{Name: imageset.SmallName, Path: "unused"},
		{Name: imageset.LargeName, Path: "unused"},
	}

	done, err := sched.Start(context.Background(), bench.MatrixConfig{
		Samples:    samples,
		Techniques: techniques,
		Runs:       3,
		Scale:      0.1,
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	<-done

	var output string
	ui.Sync(func() {
		output = log.String()
	})

	if got := strings.Count(output, " - "); got != 6 {
		t.Fatalf("report has %d blocks, want one per pair (6): %q", got, output)
	}

	failed := imageset.SmallName + " - simd scaler\nTEST FAILED\n\n"
	if !strings.Contains(output, failed) {
		t.Errorf("missing failure block %q in %q", failed, output)
	}

	skipped := imageset.LargeName + " - filter pipeline\nSKIPPED\n\n"
	if !strings.Contains(output, skipped) {
		t.Errorf("missing skipped block %q in %q", skipped, output)
	}

	if !strings.Contains(output, "average: ") {
		t.Errorf("missing statistics line in %q", output)
	}

	// Newest first: the large sample runs after the small one, so its
	// blocks must sit above.
	idxLarge := strings.Index(output, imageset.LargeName+" - nearest draw")
	idxSmall := strings.Index(output, imageset.SmallName+" - nearest draw")

	if idxLarge < 0 || idxSmall < 0 {
		t.Fatalf("missing success blocks in %q", output)
	}
	if idxLarge > idxSmall {
		t.Errorf("expected later pair's block first, got %q", output)
	}
}
