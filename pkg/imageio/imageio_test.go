package imageio

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/raster"
)

// createTestImage writes a solid image in the given format and returns its path.
func createTestImage(t *testing.T, name string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch filepath.Ext(name) {
	case ".jpg":
		require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 100}))
	default:
		require.NoError(t, png.Encode(f, img))
	}

	return path
}

func TestLoad_PNG(t *testing.T) {
	path := createTestImage(t, "red.png", 3, 2, color.RGBA{255, 0, 0, 255})

	img, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, plane.ImageBounds{Width: 3, Height: 2}, img.Bounds)
	require.Len(t, img.Pixels, 6)
	assert.True(t, raster.Sorted(img))
	for _, p := range img.Pixels {
		assert.Equal(t, raster.RGB{R: 255}, p.Color)
	}
}

func TestLoad_JPEG(t *testing.T) {
	path := createTestImage(t, "gray.jpg", 8, 8, color.RGBA{128, 128, 128, 255})

	img, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, plane.ImageBounds{Width: 8, Height: 8}, img.Bounds)
	for _, p := range img.Pixels {
		// JPEG is lossy; a flat gray block should stay close.
		assert.InDelta(t, 128, int(p.Color.R), 3)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsInputError(err))
	assert.False(t, IsOutputError(err))
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())

	assert.ErrorIs(t, err, ErrUnreadable)
	assert.NotErrorIs(t, err, ErrDecode)
	assert.True(t, IsInputError(err))
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrDecode)
	assert.True(t, IsInputError(err))
}

func TestWrite_RoundTrip(t *testing.T) {
	src := raster.Image{
		Bounds: plane.ImageBounds{Width: 2, Height: 2},
		Pixels: []raster.Pixel{
			{At: plane.Pixel{X: 0, Y: 0}, Color: raster.RGB{R: 1, G: 2, B: 3}},
			{At: plane.Pixel{X: 1, Y: 0}, Color: raster.RGB{R: 4, G: 5, B: 6}},
			{At: plane.Pixel{X: 0, Y: 1}, Color: raster.RGB{R: 7, G: 8, B: 9}},
			{At: plane.Pixel{X: 1, Y: 1}, Color: raster.RGB{R: 10, G: 11, B: 12}},
		},
	}
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, Write(path, src))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWrite_Overwrites(t *testing.T) {
	path := createTestImage(t, "existing.png", 5, 5, color.White)
	src := raster.Image{
		Bounds: plane.ImageBounds{Width: 1, Height: 1},
		Pixels: []raster.Pixel{{Color: raster.RGB{G: 200}}},
	}

	require.NoError(t, Write(path, src))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestWrite_UncoveredPixelsTransparent(t *testing.T) {
	src := raster.Image{
		Bounds: plane.ImageBounds{Width: 2, Height: 1},
		Pixels: []raster.Pixel{{At: plane.Pixel{X: 1}, Color: raster.RGB{B: 50}}},
	}
	path := filepath.Join(t.TempDir(), "sparse.png")

	require.NoError(t, Write(path, src))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)

	_, _, _, a := decoded.At(0, 0).RGBA()
	assert.Zero(t, a)
	_, _, b, a := decoded.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(50*0x101), b)
}

func TestWrite_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := Write(path, raster.Image{})

	assert.ErrorIs(t, err, ErrEmptyImage)
	assert.True(t, IsOutputError(err))
	assert.NoFileExists(t, path)
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	src := raster.Image{
		Bounds: plane.ImageBounds{Width: 1, Height: 1},
		Pixels: []raster.Pixel{{}},
	}

	err := Write(path, src)

	assert.ErrorIs(t, err, ErrWrite)
	assert.False(t, IsInputError(err))
	assert.NoFileExists(t, path)
}
