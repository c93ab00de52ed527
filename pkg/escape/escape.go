// Package escape computes escape times of points under the Mandelbrot iteration.
package escape

import (
	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

const (
	// MaxIterations bounds the number of steps taken for any point.
	MaxIterations = 256

	// InSet is the escape time reported for points which never leave the disk.
	InSet = uint8(MaxIterations - 1)

	// radius of the disk points must stay within.
	radius = 1.0
)

var step = transforms.Mandelbrot{}

// Time is the index of the first iteration of z ← z² + c, starting from zero,
// at which z leaves the closed unit disk. Points that remain for every
// iteration report InSet.
//
// Indices run from 0 to MaxIterations-1, so a point escaping on the final
// iteration also reports InSet and cannot be told apart from one that never
// escapes.
func Time(c plane.Complex) uint8 {
	return timeWithin(c.Complex128(), MaxIterations)
}

// timeWithin is Time with at most limit iterations, where 1 <= limit <= 256.
// Points that never escape report limit-1.
func timeWithin(c complex128, limit int) uint8 {
	return iterate(0, c, 0, limit)
}

func iterate(z, c complex128, i, limit int) uint8 {
	if i >= limit {
		return uint8(limit - 1)
	}

	z = step.Next(z, c)
	if !local(z) {
		return uint8(i)
	}

	return iterate(z, c, i+1, limit)
}

func local(z complex128) bool {
	re, im := real(z), imag(z)
	return re*re+im*im <= radius*radius
}
