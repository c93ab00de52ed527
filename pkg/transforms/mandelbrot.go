package transforms

// Mandelbrot is the quadratic map z² + c.
type Mandelbrot struct{}

func (Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c
}
