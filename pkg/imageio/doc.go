// Package imageio reads and writes raster images on disk.
//
// Any format with a registered decoder may be read: PNG, JPEG and GIF from
// the standard library, BMP and TIFF through imaging, and WebP. Output is
// always PNG so that written pixels are exact.
//
// # Errors
//
// Failures wrap one of the sentinel errors below so callers can tell input
// problems from output problems with errors.Is:
//   - ErrNotFound and ErrUnreadable: the input path cannot be opened or read
//   - ErrDecode: the input is not a supported image
//   - ErrEmptyImage: the image to write has no area
//   - ErrEncode and ErrWrite: the output cannot be produced
//
// A failed Write never leaves a file at the output path.
package imageio
