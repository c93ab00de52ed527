// Package plane maps between pixel space and the complex plane.
//
// Pixel space has its origin at the top-left corner with y increasing downward.
// The complex plane is oriented the usual way, with im increasing upward, so the
// mapping flips the vertical axis.
package plane

// Pixel is a position in an image. X and Y are never negative for pixels that
// belong to an image.
type Pixel struct {
	X, Y int
}

// Complex is a point in the complex plane.
type Complex struct {
	Re, Im float64
}

func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// ImageBounds is the size of a pixel grid. Every pixel associated with the
// bounds satisfies X < Width and Y < Height.
type ImageBounds struct {
	Width, Height int
}

// Empty is true for grids with no pixels.
func (b ImageBounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Contains reports whether p lies on the grid.
func (b ImageBounds) Contains(p Pixel) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Width && p.Y < b.Height
}

// Index is the raster-order position of p within a grid of this width.
func (b ImageBounds) Index(p Pixel) int {
	return p.Y*b.Width + p.X
}

// ComplexBounds is an axis-aligned rectangle of the complex plane.
//
// TopLeft.Re <= BottomRight.Re and TopLeft.Im >= BottomRight.Im.
type ComplexBounds struct {
	TopLeft, BottomRight Complex
}

func (cb ComplexBounds) Width() float64 {
	return cb.BottomRight.Re - cb.TopLeft.Re
}

func (cb ComplexBounds) Height() float64 {
	return cb.TopLeft.Im - cb.BottomRight.Im
}

// Valid reports whether the corners are ordered correctly.
func (cb ComplexBounds) Valid() bool {
	return cb.TopLeft.Re <= cb.BottomRight.Re && cb.TopLeft.Im >= cb.BottomRight.Im
}
