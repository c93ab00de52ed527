// Package render assembles escape-time images over a viewport of the complex plane.
package render

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/raster"
)

var ErrEmptyBounds = errors.New("image must have positive width and height")

type Assembler struct {
	// Workers is the number of goroutines evaluating rows. Values below one use
	// every CPU.
	Workers int

	// Palette colors each escape time. Nil uses escape.Affine.
	Palette escape.Palette
}

// Assemble renders every pixel of bounds, mapped onto cb, in raster order.
func (a Assembler) Assemble(ctx context.Context, bounds plane.ImageBounds, cb plane.ComplexBounds) (raster.Image, error) {
	times, err := Times(ctx, bounds, cb, a.Workers)
	if err != nil {
		return raster.Image{}, err
	}

	palette := a.Palette
	if palette == nil {
		palette = escape.Affine
	}

	grid := plane.Grid(bounds)
	pixels := make([]raster.Pixel, len(grid))
	for i, p := range grid {
		pixels[i] = raster.Pixel{At: p, Color: palette(times[i])}
	}

	return raster.Image{Bounds: bounds, Pixels: pixels}, nil
}

// Times computes the escape time of every pixel of bounds in raster order.
//
// Rows are handed out to workers as they become free. Each worker writes only
// the section of the result belonging to its current row, so the result order
// does not depend on which worker finishes first.
func Times(ctx context.Context, bounds plane.ImageBounds, cb plane.ComplexBounds, workers int) ([]uint8, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyBounds, bounds.Width, bounds.Height)
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	times := make([]uint8, bounds.Width*bounds.Height)
	rows := make(chan int)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(rows)
		for y := 0; y < bounds.Height; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for y := range rows {
				row := times[y*bounds.Width : (y+1)*bounds.Width]
				for x := range row {
					c := plane.ToComplex(plane.Pixel{X: x, Y: y}, bounds, cb)
					row[x] = escape.Time(c)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return times, nil
}
