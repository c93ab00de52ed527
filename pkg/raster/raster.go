// Package raster holds images as explicit sequences of colored pixels.
//
// Unlike image.Image, a raster Image may hold pixels in any order, may leave
// positions uncovered, and may hold more than one pixel for the same position.
// Operations never modify the Image they are given.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/willbeason/mandelbrot/pkg/plane"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

type Pixel struct {
	At    plane.Pixel
	Color RGB
}

type Image struct {
	Bounds plane.ImageBounds
	Pixels []Pixel
}

// Clone returns a copy of img which shares no memory with it.
func (img Image) Clone() Image {
	pixels := make([]Pixel, len(img.Pixels))
	copy(pixels, img.Pixels)

	return Image{Bounds: img.Bounds, Pixels: pixels}
}

// InBounds reports whether every pixel lies within the image bounds.
func (img Image) InBounds() bool {
	for _, p := range img.Pixels {
		if !img.Bounds.Contains(p.At) {
			return false
		}
	}

	return true
}

// FromImage reads every pixel of src in raster order. Alpha is discarded.
// The result is positioned at the origin regardless of src.Bounds().Min.
func FromImage(src image.Image) Image {
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()

	result := Image{
		Bounds: plane.ImageBounds{Width: b.Dx(), Height: b.Dy()},
		Pixels: make([]Pixel, 0, b.Dx()*b.Dy()),
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := nrgba.PixOffset(x+b.Min.X, y+b.Min.Y)
			s := nrgba.Pix[i : i+4 : i+4]
			result.Pixels = append(result.Pixels, Pixel{
				At:    plane.Pixel{X: x, Y: y},
				Color: RGB{R: s[0], G: s[1], B: s[2]},
			})
		}
	}

	return result
}

// ToNRGBA draws the pixels of img in sequence order. Positions without a
// pixel are left transparent, and where pixels share a position the last one
// is visible. Pixels outside the bounds are dropped.
func ToNRGBA(img Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Bounds.Width, img.Bounds.Height))

	for _, p := range img.Pixels {
		if !img.Bounds.Contains(p.At) {
			continue
		}
		dst.SetNRGBA(p.At.X, p.At.Y, p.Color.NRGBA())
	}

	return dst
}
