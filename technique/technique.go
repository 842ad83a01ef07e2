// Package technique implements the six downscaling techniques under one
// uniform adapter contract: given a source file and a scale factor, each
// returns a resized image or an error. Callers treat any error as the same
// "technique failed" outcome; the cause is never inspected.
package technique

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Func is the adapter contract shared by every technique.
type Func func(ctx context.Context, src string, scale float64) (image.Image, error)

// Technique pairs a stable name and display label with its adapter.
type Technique struct {
	Name  string
	Label string
	Fn    Func
}

// All returns the six techniques in matrix order. The mapping from name to
// function is fixed here at registration time; nothing dispatches on the
// name afterwards.
func All() []Technique {
	linear := newPipeline(0)
	gamma := newPipeline(2.2)

	return []Technique{
		{Name: "draw", Label: "nearest draw", Fn: drawNearest},
		{Name: "redraw", Label: "imaging redraw", Fn: imagingRedraw},
		{Name: "thumbnail", Label: "thumbnail", Fn: thumbnail},
		{Name: "pipeline", Label: "filter pipeline", Fn: linear.resize},
		{Name: "pipeline-gamma", Label: "filter pipeline (gamma)", Fn: gamma.resize},
		{Name: "simd", Label: "simd scaler", Fn: rezScale},
	}
}

// Names returns the technique names in matrix order.
func Names() []string {
	all := All()
	names := make([]string, len(all))

	for i, t := range all {
		names[i] = t.Name
	}

	return names
}

// targetBounds computes the destination rectangle for a scale factor,
// rejecting degenerate results below one pixel.
func targetBounds(src image.Rectangle, scale float64) (image.Rectangle, error) {
	if scale <= 0 {
		return image.Rectangle{}, fmt.Errorf("scale %v is not positive", scale)
	}

	w := int(float64(src.Dx()) * scale)
	h := int(float64(src.Dy()) * scale)

	if w < 1 || h < 1 {
		return image.Rectangle{}, fmt.Errorf(
			"scale %v yields degenerate %dx%d target", scale, w, h,
		)
	}

	return image.Rect(0, 0, w, h), nil
}

// loadRGBA decodes src and normalizes it to RGBA, the pixel format most of
// the scalers want.
func loadRGBA(src string) (*image.RGBA, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}

	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}

	rgba := image.NewRGBA(img.Bounds())
	xdraw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, xdraw.Src)

	return rgba, nil
}
