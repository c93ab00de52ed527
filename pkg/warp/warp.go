// Package warp moves the pixels of an image through a transform of the complex plane.
//
// Each pixel position is read as a point of the image's default viewport (see
// plane.BoundsFor), moved by the transform, and mapped back onto a pixel grid
// spanning exactly the moved points. The result is then put back into raster
// order. Since the transform may spread or squeeze pixels, the result may have
// uncovered positions or several pixels at one position.
package warp

import (
	"github.com/samber/lo"

	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/raster"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

// ComplexPixel is a pixel whose position has been read as a complex number.
type ComplexPixel struct {
	At    plane.Complex
	Color raster.RGB
}

type Warper struct {
	// Transform moves each point. Nil uses transforms.Warp.
	Transform transforms.Transform
}

// Warp returns the transformed copy of img, sorted into raster order, along
// with the bounds of the moved points in the plane. img is not modified.
//
// An image without pixels warps to an image without pixels or bounds.
func (w Warper) Warp(img raster.Image) (raster.Image, plane.ComplexBounds) {
	if len(img.Pixels) == 0 {
		return raster.Image{}, plane.ComplexBounds{}
	}

	transform := w.Transform
	if transform == nil {
		transform = transforms.Warp
	}

	moved := Apply(transform, ToComplex(img))
	cb := ComplexBounds(moved)
	pixels := ToPixels(moved, img.Bounds, cb)

	return raster.Sort(raster.Image{
		Bounds: PixelBounds(pixels),
		Pixels: pixels,
	}), cb
}

// ToComplex reads each pixel of img as a point of the image's default viewport.
func ToComplex(img raster.Image) []ComplexPixel {
	cb := plane.BoundsFor(img.Bounds)

	return lo.Map(img.Pixels, func(p raster.Pixel, _ int) ComplexPixel {
		return ComplexPixel{At: plane.ToComplex(p.At, img.Bounds, cb), Color: p.Color}
	})
}

// Apply moves every pixel by t. Pixels are independent of one another.
func Apply(t transforms.Transform, pixels []ComplexPixel) []ComplexPixel {
	return lo.Map(pixels, func(p ComplexPixel, _ int) ComplexPixel {
		return ComplexPixel{At: plane.FromComplex128(t.Next(p.At.Complex128())), Color: p.Color}
	})
}

// ToPixels maps each point from cb onto a grid of the given bounds.
func ToPixels(pixels []ComplexPixel, bounds plane.ImageBounds, cb plane.ComplexBounds) []raster.Pixel {
	return lo.Map(pixels, func(p ComplexPixel, _ int) raster.Pixel {
		return raster.Pixel{At: plane.ToPixel(p.At, bounds, cb), Color: p.Color}
	})
}
