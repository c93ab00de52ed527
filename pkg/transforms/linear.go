package transforms

// Warp is the multiplier applied to images by the transform pipeline:
// a slight counter-clockwise rotation with a small enlargement.
var Warp = Linear{Multiply: complex(1.0, 0.1)}

type Linear struct {
	Multiply complex128
	Add      complex128
}

func (l Linear) Next(z complex128) complex128 {
	return z*l.Multiply + l.Add
}
