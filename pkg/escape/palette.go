package escape

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/willbeason/mandelbrot/pkg/raster"
)

// A Palette turns an escape time into a color.
type Palette func(t uint8) raster.RGB

const (
	PaletteAffine = "affine"
	PaletteGray   = "gray"
	PaletteHue    = "hue"
)

// PaletteNames lists the palettes accepted by ParsePalette.
var PaletteNames = []string{PaletteAffine, PaletteGray, PaletteHue}

func ParsePalette(name string) (Palette, error) {
	switch name {
	case PaletteAffine, "":
		return Affine, nil
	case PaletteGray:
		return Gray, nil
	case PaletteHue:
		return Hue, nil
	default:
		return nil, fmt.Errorf("unknown palette %q, want one of %v", name, PaletteNames)
	}
}

// Affine scales each channel by a fixed factor, wrapping at 256.
// Points in the set are white.
func Affine(t uint8) raster.RGB {
	if t == InSet {
		return raster.RGB{R: 0xff, G: 0xff, B: 0xff}
	}

	i := uint32(t)
	return raster.RGB{R: uint8(i), G: uint8(i * 2), B: uint8(i * 3)}
}

func Gray(t uint8) raster.RGB {
	return raster.RGB{R: t, G: t, B: t}
}

// Hue walks once around the color wheel as escape time increases.
// Points in the set are black.
func Hue(t uint8) raster.RGB {
	if t == InSet {
		return raster.RGB{}
	}

	c := colorful.Hsv(360.0*float64(t)/MaxIterations, 0.85, 1.0)
	r, g, b := c.Clamped().RGB255()

	return raster.RGB{R: r, G: g, B: b}
}
