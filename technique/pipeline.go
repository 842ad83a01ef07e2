package technique

import (
	"context"
	"fmt"
	"image"

	"github.com/oov/downscale"
)

// pipeline is a tiled area-averaging filter pipeline. The two instances
// built by All (linear and gamma-corrected) are the only ones in the
// process; they are constructed explicitly and closed over by their
// adapters rather than living as lazy package globals.
type pipeline struct {
	gamma float64
}

func newPipeline(gamma float64) *pipeline {
	return &pipeline{gamma: gamma}
}

func (p *pipeline) resize(ctx context.Context, src string, scale float64) (image.Image, error) {
	img, err := loadRGBA(src)
	if err != nil {
		return nil, err
	}

	bounds, err := targetBounds(img.Bounds(), scale)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(bounds)

	if p.gamma > 0 {
		err = downscale.RGBAGamma(ctx, dst, img, p.gamma)
	} else {
		err = downscale.RGBA(ctx, dst, img)
	}

	if err != nil {
		return nil, fmt.Errorf("downscale %s: %w", src, err)
	}

	return dst, nil
}
