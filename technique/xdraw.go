package technique

import (
	"context"
	"image"

	"golang.org/x/image/draw"
)

// drawNearest scales by drawing the source straight into a smaller bitmap
// with nearest-neighbor sampling. The cheapest technique in the matrix.
func drawNearest(_ context.Context, src string, scale float64) (image.Image, error) {
	img, err := loadRGBA(src)
	if err != nil {
		return nil, err
	}

	bounds, err := targetBounds(img.Bounds(), scale)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(bounds)
	draw.NearestNeighbor.Scale(dst, bounds, img, img.Bounds(), draw.Src, nil)

	return dst, nil
}
