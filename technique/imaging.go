package technique

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// imagingRedraw redraws the source through the imaging package's box
// filter, the way a 2D graphics context would re-render it at a new size.
func imagingRedraw(_ context.Context, src string, scale float64) (image.Image, error) {
	img, err := imaging.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}

	bounds, err := targetBounds(img.Bounds(), scale)
	if err != nil {
		return nil, err
	}

	return imaging.Resize(img, bounds.Dx(), bounds.Dy(), imaging.Box), nil
}
