package imageio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/willbeason/mandelbrot/pkg/raster"
)

var (
	ErrEmptyImage = errors.New("image has no pixels to write")
	ErrEncode     = errors.New("failed to encode image")
	ErrWrite      = errors.New("failed to write image")
)

// Write encodes img as PNG at path, replacing any existing file.
//
// The image is first written to a temporary file beside path and renamed into
// place once complete, so readers of path never see a partial image.
func Write(path string, img raster.Image) (err error) {
	if img.Bounds.Empty() {
		return fmt.Errorf("%w: %s is %dx%d", ErrEmptyImage, path, img.Bounds.Width, img.Bounds.Height)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = imgio.PNGEncoder()(tmp, raster.ToNRGBA(img)); err != nil {
		return fmt.Errorf("%w %s: %w", ErrEncode, path, err)
	}

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// IsOutputError reports whether err came from encoding or writing an output image.
func IsOutputError(err error) bool {
	return errors.Is(err, ErrEmptyImage) || errors.Is(err, ErrEncode) || errors.Is(err, ErrWrite)
}
