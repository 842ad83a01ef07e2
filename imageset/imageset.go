// Package imageset generates and resolves the two sample images every
// benchmark run downscales. Generation is deterministic for a given seed so
// that repeated runs measure the same pixels.
package imageset

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	mrand "math/rand"
	"os"
	"path/filepath"
)

// Sample identifies one bundled benchmark image by logical name and
// resolved file location.
type Sample struct {
	Name   string
	Path   string
	Width  int
	Height int
}

// Dimensions of the two samples. The large one exists to make the heavier
// techniques visibly expensive, not to be pretty.
const (
	SmallName   = "gradient-small"
	SmallWidth  = 1024
	SmallHeight = 768

	LargeName   = "noise-large"
	LargeWidth  = 4000
	LargeHeight = 3000
)

// Names returns the logical sample names in matrix order.
func Names() []string {
	return []string{SmallName, LargeName}
}

// Generate writes both sample PNGs into dir and returns them in matrix
// order. Existing files are overwritten.
func Generate(dir string, seed int64) ([]Sample, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir %s: %w", dir, err)
	}

	small := Sample{
		Name:   SmallName,
		Path:   filepath.Join(dir, SmallName+".png"),
		Width:  SmallWidth,
		Height: SmallHeight,
	}
	if err := writePNG(small.Path, gradient(small.Width, small.Height)); err != nil {
		return nil, fmt.Errorf("generate %s: %w", small.Name, err)
	}

	large := Sample{
		Name:   LargeName,
		Path:   filepath.Join(dir, LargeName+".png"),
		Width:  LargeWidth,
		Height: LargeHeight,
	}
	if err := writePNG(large.Path, noise(large.Width, large.Height, seed)); err != nil {
		return nil, fmt.Errorf("generate %s: %w", large.Name, err)
	}

	return []Sample{small, large}, nil
}

// Load resolves pre-generated samples in dir by logical name. Every sample
// file must exist; dimensions are read from the PNG headers.
func Load(dir string) ([]Sample, error) {
	samples := make([]Sample, 0, 2)

	for _, name := range Names() {
		path := filepath.Join(dir, name+".png")

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open sample %s: %w", name, err)
		}

		cfg, err := png.DecodeConfig(f)
		f.Close()

		if err != nil {
			return nil, fmt.Errorf("decode sample %s: %w", name, err)
		}

		samples = append(samples, Sample{
			Name:   name,
			Path:   path,
			Width:  cfg.Width,
			Height: cfg.Height,
		})
	}

	return samples, nil
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 255,
			})
		}
	}

	return img
}

func noise(w, h int, seed int64) *image.RGBA {
	rng := mrand.New(mrand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	rng.Read(img.Pix)

	// Opaque alpha keeps every technique on the same compositing path.
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()

		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
