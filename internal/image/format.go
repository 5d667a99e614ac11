// Package image exports rt canvases to raster file formats.
//
// Any image.Image can be encoded; rt.Canvas implements image.Image with the
// same channel quantization as its PPM output, so raster files and PPM text
// agree pixel for pixel.
package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a raster file format.
type Format uint8

const (
	// FormatPNG is lossless PNG (image/png).
	FormatPNG Format = iota

	// FormatBMP is uncompressed Windows bitmap (golang.org/x/image/bmp).
	FormatBMP

	// FormatTIFF is deflate-compressed TIFF (golang.org/x/image/tiff).
	FormatTIFF

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatNames maps formats to their canonical names.
var formatNames = [formatCount]string{
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatNames[f]
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// FormatFromPath selects a format from the extension of path.
// Unknown extensions return ErrUnsupportedFormat.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
