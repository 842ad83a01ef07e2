package display

import (
	"image"
	"image/draw"
)

// Surface is the fixed framebuffer trial output is rendered to. Rendering
// into it forces a lazily-computed image to actually produce its pixels,
// which is what makes stopping the trial clock after Show valid.
type Surface struct {
	fb      *image.RGBA
	showing bool
}

// NewSurface allocates a framebuffer of the given size.
func NewSurface(w, h int) *Surface {
	return &Surface{fb: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Show draws img into the framebuffer at the origin.
func (s *Surface) Show(img image.Image) {
	draw.Draw(s.fb, img.Bounds().Sub(img.Bounds().Min), img, img.Bounds().Min, draw.Src)
	s.showing = true
}

// Clear blanks the framebuffer. This is the untimed end-of-run cue.
func (s *Surface) Clear() {
	for i := range s.fb.Pix {
		s.fb.Pix[i] = 0
	}

	s.showing = false
}

// Showing reports whether an image is currently displayed.
func (s *Surface) Showing() bool {
	return s.showing
}
