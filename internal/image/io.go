package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrInvalidScale is returned when an upscale factor is less than 1.
	ErrInvalidScale = errors.New("image: invalid scale factor")
)

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to the file at path in the given format.
func Save(path string, img image.Image, f Format) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
