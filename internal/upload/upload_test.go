package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProcessor(dir, 5<<20)
	require.NoError(t, err)

	t.Run("Stores a small image unscaled", func(t *testing.T) {
		url, err := p.Process(pngBytes(t, 400, 300))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, ".jpg"))

		f, err := os.Open(filepath.Join(dir, filepath.Base(url)))
		require.NoError(t, err)
		defer f.Close()

		img, err := jpeg.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 400, img.Bounds().Dx())
		assert.Equal(t, 300, img.Bounds().Dy())
	})

	t.Run("Scales a large image down to the bound", func(t *testing.T) {
		url, err := p.Process(pngBytes(t, 1600, 1000))
		require.NoError(t, err)

		f, err := os.Open(filepath.Join(dir, filepath.Base(url)))
		require.NoError(t, err)
		defer f.Close()

		img, err := jpeg.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 800, img.Bounds().Dx())
		assert.Equal(t, 500, img.Bounds().Dy())
	})

	t.Run("Rejects non-image content", func(t *testing.T) {
		_, err := p.Process(strings.NewReader("definitely not an image"))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Rejects oversized uploads", func(t *testing.T) {
		tiny, err := NewProcessor(t.TempDir(), 64)
		require.NoError(t, err)

		_, err = tiny.Process(pngBytes(t, 400, 300))
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProcessor(dir, 5<<20)
	require.NoError(t, err)

	url, err := p.Process(pngBytes(t, 100, 100))
	require.NoError(t, err)

	t.Run("Removes the stored file", func(t *testing.T) {
		require.NoError(t, p.Delete(url))
		_, err := os.Stat(filepath.Join(dir, filepath.Base(url)))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Missing file is not an error", func(t *testing.T) {
		assert.NoError(t, p.Delete("/uploads/never-existed.jpg"))
	})
}
