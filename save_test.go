package rt

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	intImage "github.com/gogpu/rt/internal/image"
	"golang.org/x/image/bmp"
)

func TestSave_PPM(t *testing.T) {
	c := newTestCanvas(t, 3, 2)
	c.WritePixel(1, 1, NewColor(1.5, -0.5, 0.5))

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != c.PPM() {
		t.Errorf("saved file = %q, want %q", data, c.PPM())
	}
}

func TestSave_PNGMatchesPPM(t *testing.T) {
	c := newTestCanvas(t, 3, 2)
	c.WritePixel(1, 1, NewColor(1.5, -0.5, 0.5))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 127 {
		t.Errorf("pixel = (%d, %d, %d), want (255, 0, 127)", r>>8, g>>8, b>>8)
	}
}

func TestSave_BMP(t *testing.T) {
	c := newTestCanvas(t, 4, 4, WithBackground(Blue))

	path := filepath.Join(t.TempDir(), "out.BMP")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("bmp.DecodeConfig() error: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 4 {
		t.Errorf("saved size = %dx%d, want 4x4", cfg.Width, cfg.Height)
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	c := newTestCanvas(t, 2, 2)
	err := c.Save(filepath.Join(t.TempDir(), "out.gif"))
	if !errors.Is(err, intImage.ErrUnsupportedFormat) {
		t.Errorf("Save() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSavePPM_BadPath(t *testing.T) {
	c := newTestCanvas(t, 2, 2)
	if err := c.SavePPM(filepath.Join(t.TempDir(), "missing", "out.ppm")); err == nil {
		t.Error("SavePPM() into a missing directory should fail")
	}
}
