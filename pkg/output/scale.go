package output

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned for non-positive factors or factors that shrink
// the image to nothing
var ErrInvalidScale = errors.New("invalid scale factor")

// Scale resizes img by factor. Whole-number enlargements keep hard pixel
// edges; every other factor is resampled with Catmull-Rom.
func Scale(img image.Image, factor float64) (*image.RGBA, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, factor)
	}

	src := img.Bounds()
	w := int(math.Round(float64(src.Dx()) * factor))
	h := int(math.Round(float64(src.Dy()) * factor))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %g shrinks %dx%d to nothing", ErrInvalidScale, factor, src.Dx(), src.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	var scaler draw.Scaler = draw.CatmullRom
	if factor >= 1 && factor == math.Trunc(factor) {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst, nil
}
