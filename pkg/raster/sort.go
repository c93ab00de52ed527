package raster

import (
	"slices"
)

// Sort restores raster order: ascending by Y*Width+X using img's own width.
// Pixels sharing a position keep their relative order; none are dropped.
func Sort(img Image) Image {
	sorted := img.Clone()

	slices.SortStableFunc(sorted.Pixels, func(a, b Pixel) int {
		return img.Bounds.Index(a.At) - img.Bounds.Index(b.At)
	})

	return sorted
}

// Sorted reports whether img is already in raster order.
func Sorted(img Image) bool {
	return slices.IsSortedFunc(img.Pixels, func(a, b Pixel) int {
		return img.Bounds.Index(a.At) - img.Bounds.Index(b.At)
	})
}
