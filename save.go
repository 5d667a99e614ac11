package rt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	intImage "github.com/gogpu/rt/internal/image"
)

// Save writes the canvas to a file. The extension selects the format:
// ".ppm" writes PPM text (see PPM); ".png", ".bmp", ".tif" and ".tiff"
// write 8-bit raster images with the same channel quantization.
func (c *Canvas) Save(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return c.SavePPM(path)
	}

	format, err := intImage.FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("rt: save %s: %w", path, err)
	}
	if err := intImage.Save(path, c, format); err != nil {
		return fmt.Errorf("rt: save %s: %w", path, err)
	}

	Logger().Info("canvas saved", "path", path, "format", format.String())
	return nil
}

// SavePPM writes the canvas to a file as PPM text.
func (c *Canvas) SavePPM(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("rt: create file: %w", err)
	}

	if err := c.WritePPM(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("rt: close file: %w", err)
	}

	Logger().Info("canvas saved", "path", path, "format", "ppm")
	return nil
}
