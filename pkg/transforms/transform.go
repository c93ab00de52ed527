// Package transforms holds the maps applied to points of the complex plane.
package transforms

// A Transform moves a single point of the plane.
type Transform interface {
	Next(z complex128) complex128
}

// Identity leaves points where they are.
type Identity struct{}

func (Identity) Next(z complex128) complex128 {
	return z
}

var (
	_ Transform = Identity{}
	_ Transform = Linear{}
)
