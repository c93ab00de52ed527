package plane

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsFor(t *testing.T) {
	cb := BoundsFor(ImageBounds{Width: 4000, Height: 3000})

	assert.Equal(t, Complex{Re: -2000, Im: 1500}, cb.TopLeft)
	assert.Equal(t, Complex{Re: 2000, Im: -1500}, cb.BottomRight)
	assert.True(t, cb.Valid())
	assert.Equal(t, 4000.0, cb.Width())
	assert.Equal(t, 3000.0, cb.Height())
}

func TestBoundsFor_OddSizes(t *testing.T) {
	cb := BoundsFor(ImageBounds{Width: 7, Height: 3})

	assert.Equal(t, Complex{Re: -3.5, Im: 1.5}, cb.TopLeft)
	assert.Equal(t, Complex{Re: 3.5, Im: -1.5}, cb.BottomRight)
	assert.True(t, cb.Valid())
}

func TestToComplex(t *testing.T) {
	bounds := ImageBounds{Width: 4000, Height: 3000}
	cb := BoundsFor(bounds)

	tests := []struct {
		name  string
		pixel Pixel
		want  Complex
	}{
		{"top left", Pixel{X: 0, Y: 0}, Complex{Re: -2000, Im: 1500}},
		{"center", Pixel{X: 2000, Y: 1500}, Complex{Re: 0, Im: 0}},
		{"last pixel", Pixel{X: 3999, Y: 2999}, Complex{Re: 1999, Im: -1499}},
		{"quarter", Pixel{X: 1000, Y: 750}, Complex{Re: -1000, Im: 750}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToComplex(tt.pixel, bounds, cb))
		})
	}
}

func TestToPixel_RoundTrip(t *testing.T) {
	sizes := []ImageBounds{
		{Width: 1, Height: 1},
		{Width: 2, Height: 2},
		{Width: 7, Height: 3},
		{Width: 8, Height: 6},
		{Width: 16, Height: 9},
	}

	for _, bounds := range sizes {
		t.Run(fmt.Sprintf("%dx%d", bounds.Width, bounds.Height), func(t *testing.T) {
			cb := BoundsFor(bounds)
			for _, p := range Grid(bounds) {
				got := ToPixel(ToComplex(p, bounds, cb), bounds, cb)
				require.Equal(t, p, got)
			}
		})
	}
}

func TestToPixel_Corner(t *testing.T) {
	bounds := ImageBounds{Width: 4000, Height: 3000}
	cb := BoundsFor(bounds)

	c := ToComplex(Pixel{}, bounds, cb)
	assert.Equal(t, Complex{Re: -2000, Im: 1500}, c)
	assert.Equal(t, Pixel{}, ToPixel(c, bounds, cb))
}

func TestToPixel_Truncates(t *testing.T) {
	bounds := ImageBounds{Width: 4, Height: 4}
	cb := BoundsFor(bounds)

	// Just short of the next grid position in both directions.
	got := ToPixel(Complex{Re: -1.01, Im: 0.01}, bounds, cb)
	assert.Equal(t, Pixel{X: 0, Y: 1}, got)
}

func TestToPixel_CollapsedViewport(t *testing.T) {
	bounds := ImageBounds{Width: 3, Height: 3}
	point := Complex{Re: 1, Im: 1}
	cb := ComplexBounds{TopLeft: point, BottomRight: point}

	assert.Equal(t, Pixel{}, ToPixel(point, bounds, cb))
}

func TestViewport(t *testing.T) {
	cb := Viewport(Complex{Re: -0.5, Im: 0.25}, 1.5)

	assert.Equal(t, Complex{Re: -2, Im: 1.75}, cb.TopLeft)
	assert.Equal(t, Complex{Re: 1, Im: -1.25}, cb.BottomRight)
	assert.True(t, cb.Valid())

	assert.Equal(t, cb, Viewport(Complex{Re: -0.5, Im: 0.25}, -1.5))
}

func TestGrid(t *testing.T) {
	got := Grid(ImageBounds{Width: 3, Height: 2})

	want := []Pixel{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}
	assert.Equal(t, want, got)

	assert.Empty(t, Grid(ImageBounds{Width: 0, Height: 5}))
}

func TestImageBounds(t *testing.T) {
	b := ImageBounds{Width: 3, Height: 2}

	assert.True(t, b.Contains(Pixel{X: 2, Y: 1}))
	assert.False(t, b.Contains(Pixel{X: 3, Y: 1}))
	assert.False(t, b.Contains(Pixel{X: 0, Y: 2}))
	assert.False(t, b.Contains(Pixel{X: -1, Y: 0}))
	assert.Equal(t, 5, b.Index(Pixel{X: 2, Y: 1}))
	assert.True(t, ImageBounds{}.Empty())
	assert.False(t, b.Empty())
}
