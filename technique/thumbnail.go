package technique

import (
	"context"
	"image"

	"github.com/nfnt/resize"
)

// thumbnail downscales through the resize package's thumbnailing entry
// point, which caps the image to a bounding box and never upscales.
func thumbnail(_ context.Context, src string, scale float64) (image.Image, error) {
	img, err := loadRGBA(src)
	if err != nil {
		return nil, err
	}

	bounds, err := targetBounds(img.Bounds(), scale)
	if err != nil {
		return nil, err
	}

	return resize.Thumbnail(
		uint(bounds.Dx()), uint(bounds.Dy()), img, resize.Bilinear,
	), nil
}
