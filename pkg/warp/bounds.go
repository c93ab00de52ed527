package warp

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/raster"
)

// ComplexBounds is the smallest axis-aligned rectangle enclosing every pixel.
func ComplexBounds(pixels []ComplexPixel) plane.ComplexBounds {
	if len(pixels) == 0 {
		return plane.ComplexBounds{}
	}

	re := lo.Map(pixels, func(p ComplexPixel, _ int) float64 { return p.At.Re })
	im := lo.Map(pixels, func(p ComplexPixel, _ int) float64 { return p.At.Im })

	return plane.ComplexBounds{
		TopLeft:     plane.Complex{Re: floats.Min(re), Im: floats.Max(im)},
		BottomRight: plane.Complex{Re: floats.Max(re), Im: floats.Min(im)},
	}
}

// PixelBounds is one past the largest X and Y of any pixel. It measures from
// the origin, so it is larger than the occupied area when no pixel lies on
// the first row or column.
func PixelBounds(pixels []raster.Pixel) plane.ImageBounds {
	var bounds plane.ImageBounds
	for _, p := range pixels {
		bounds.Width = max(bounds.Width, p.At.X+1)
		bounds.Height = max(bounds.Height, p.At.Y+1)
	}

	return bounds
}
