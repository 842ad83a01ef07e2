package technique

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/bamiaux/rez"
)

// rezScale runs the SIMD-assembly scaler. rez wants planar input, so the
// adapter does the plane setup itself: the decoded RGBA is repacked into a
// 4:4:4 YCbCr buffer before conversion.
func rezScale(_ context.Context, src string, scale float64) (image.Image, error) {
	img, err := loadRGBA(src)
	if err != nil {
		return nil, err
	}

	bounds, err := targetBounds(img.Bounds(), scale)
	if err != nil {
		return nil, err
	}

	in := toYCbCr(img)
	out := image.NewYCbCr(bounds, image.YCbCrSubsampleRatio444)

	if err := rez.Convert(out, in, rez.NewBicubicFilter()); err != nil {
		return nil, fmt.Errorf("rez convert %s: %w", src, err)
	}

	return out, nil
}

func toYCbCr(img *image.RGBA) *image.YCbCr {
	b := img.Bounds()
	out := image.NewYCbCr(b, image.YCbCrSubsampleRatio444)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			yy, cb, cr := color.RGBToYCbCr(
				img.Pix[i], img.Pix[i+1], img.Pix[i+2],
			)

			yi := out.YOffset(x, y)
			ci := out.COffset(x, y)
			out.Y[yi] = yy
			out.Cb[ci] = cb
			out.Cr[ci] = cr
		}
	}

	return out
}
