// Package upload accepts product images, re-encodes them to a bounded
// size and stores them under generated filenames.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"

	_ "image/png"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var (
	ErrUnsupportedType = errors.New("invalid file type, only JPEG, PNG and WebP are allowed")
	ErrTooLarge        = errors.New("file too large")
)

// maxDim bounds the longest edge of a stored image.
const maxDim = 800

const jpegQuality = 85

// Processor writes processed images into a directory served under the
// /uploads URL prefix.
type Processor struct {
	dir      string
	maxBytes int64
}

func NewProcessor(dir string, maxBytes int64) (*Processor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Processor{dir: dir, maxBytes: maxBytes}, nil
}

// Process validates, resizes and stores one uploaded image, returning
// the public URL of the stored file.
func (p *Processor) Process(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return "", ErrTooLarge
	}

	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png", "image/webp":
	default:
		return "", ErrUnsupportedType
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img := fit(src)

	filename := uuid.New().String() + ".jpg"
	f, err := os.Create(filepath.Join(p.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close image file: %w", err)
	}

	return "/uploads/" + filename, nil
}

// Delete removes the stored file behind a URL previously returned by
// Process. A missing file is not an error.
func (p *Processor) Delete(url string) error {
	filename := filepath.Base(url)
	if filename == "." || filename == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(p.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete image %s: %w", filename, err)
	}
	return nil
}

// fit scales the image down to maxDim on its longest edge, never
// enlarging.
func fit(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	if w > h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
