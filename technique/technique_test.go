package technique

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}

	path := filepath.Join(t.TempDir(), "sample.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test image: %v", err)
	}

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("close test image: %v", err)
	}

	return path
}

func TestAllOrder(t *testing.T) {
	want := []string{
		"draw", "redraw", "thumbnail", "pipeline", "pipeline-gamma", "simd",
	}

	got := Names()
	if len(got) != len(want) {
		t.Fatalf("len(Names) = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	for _, tech := range All() {
		if tech.Fn == nil {
			t.Errorf("technique %s has no function", tech.Name)
		}
		if tech.Label == "" {
			t.Errorf("technique %s has no label", tech.Name)
		}
	}
}

func TestTechniquesDownscale(t *testing.T) {
	src := writeTestPNG(t, 64, 48)

	for _, tech := range All() {
		t.Run(tech.Name, func(t *testing.T) {
			img, err := tech.Fn(context.Background(), src, 0.25)
			if err != nil {
				t.Fatalf("resize failed: %v", err)
			}
			if img == nil {
				t.Fatal("resize returned no image")
			}

			b := img.Bounds()
			if b.Dx() != 16 || b.Dy() != 12 {
				t.Errorf("result is %dx%d, want 16x12", b.Dx(), b.Dy())
			}
		})
	}
}

func TestTechniquesMissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.png")

	for _, tech := range All() {
		t.Run(tech.Name, func(t *testing.T) {
			if _, err := tech.Fn(context.Background(), missing, 0.25); err == nil {
				t.Error("expected error for missing source file")
			}
		})
	}
}

func TestTechniquesDegenerateScale(t *testing.T) {
	src := writeTestPNG(t, 64, 48)

	for _, tech := range All() {
		t.Run(tech.Name, func(t *testing.T) {
			for _, scale := range []float64{0, -0.5, 0.001} {
				if _, err := tech.Fn(context.Background(), src, scale); err == nil {
					t.Errorf("scale %v: expected error", scale)
				}
			}
		})
	}
}

func TestTargetBounds(t *testing.T) {
	src := image.Rect(0, 0, 100, 50)

	bounds, err := targetBounds(src, 0.1)
	if err != nil {
		t.Fatalf("targetBounds failed: %v", err)
	}
	if bounds.Dx() != 10 || bounds.Dy() != 5 {
		t.Errorf("bounds = %dx%d, want 10x5", bounds.Dx(), bounds.Dy())
	}

	if _, err := targetBounds(src, 0); err == nil {
		t.Error("expected error for zero scale")
	}
	if _, err := targetBounds(image.Rect(0, 0, 4, 4), 0.1); err == nil {
		t.Error("expected error for sub-pixel target")
	}
}
