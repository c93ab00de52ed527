package plane

import (
	"math"

	"github.com/samber/lo"
)

// BoundsFor is the default viewport of an image: centered on the origin with
// one unit per pixel.
func BoundsFor(bounds ImageBounds) ComplexBounds {
	halfWidth := float64(bounds.Width) / 2.0
	halfHeight := float64(bounds.Height) / 2.0

	return ComplexBounds{
		TopLeft:     Complex{Re: -halfWidth, Im: halfHeight},
		BottomRight: Complex{Re: halfWidth, Im: -halfHeight},
	}
}

// Viewport is the square window extending radius in each direction from center.
// A negative radius is treated as its magnitude.
func Viewport(center Complex, radius float64) ComplexBounds {
	radius = math.Abs(radius)

	return ComplexBounds{
		TopLeft:     Complex{Re: center.Re - radius, Im: center.Im + radius},
		BottomRight: Complex{Re: center.Re + radius, Im: center.Im - radius},
	}
}

// ToComplex linearly interpolates p from the pixel grid onto the viewport.
//
// Real parts increase with X; imaginary parts decrease with Y.
func ToComplex(p Pixel, bounds ImageBounds, cb ComplexBounds) Complex {
	re := cb.TopLeft.Re + cb.Width()*float64(p.X)/float64(bounds.Width)
	im := cb.TopLeft.Im - cb.Height()*float64(p.Y)/float64(bounds.Height)

	return Complex{Re: re, Im: im}
}

// ToPixel is the inverse of ToComplex. Fractional positions truncate toward
// zero, so only points which land exactly on grid positions round-trip.
func ToPixel(c Complex, bounds ImageBounds, cb ComplexBounds) Pixel {
	return Pixel{
		X: unscale(c.Re-cb.TopLeft.Re, cb.Width(), bounds.Width),
		Y: unscale(cb.TopLeft.Im-c.Im, cb.Height(), bounds.Height),
	}
}

// unscale converts an offset into a viewport of the given span back to a pixel
// offset. A collapsed span puts everything in the first row or column.
func unscale(offset, span float64, size int) int {
	if span == 0 {
		return 0
	}

	return int(offset * float64(size) / span)
}

// Grid enumerates every pixel of bounds in raster order.
func Grid(bounds ImageBounds) []Pixel {
	if bounds.Empty() {
		return nil
	}

	return lo.Times(bounds.Width*bounds.Height, func(i int) Pixel {
		return Pixel{X: i % bounds.Width, Y: i / bounds.Width}
	})
}
