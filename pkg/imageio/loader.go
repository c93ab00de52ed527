package imageio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/willbeason/mandelbrot/pkg/raster"
)

var (
	ErrNotFound   = errors.New("image not found")
	ErrUnreadable = errors.New("image unreadable")
	ErrDecode     = errors.New("failed to decode image")
)

// Load reads the image at path into raster order.
func Load(path string) (raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return raster.Image{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return raster.Image{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return raster.Image{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if info.IsDir() {
		return raster.Image{}, fmt.Errorf("%w: %s is a directory", ErrUnreadable, path)
	}

	img, err := imaging.Decode(f)
	if err != nil {
		return raster.Image{}, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	return raster.FromImage(img), nil
}

// IsInputError reports whether err came from reading or decoding an input image.
func IsInputError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnreadable) || errors.Is(err, ErrDecode)
}
