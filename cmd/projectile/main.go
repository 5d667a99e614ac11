// Command projectile launches a projectile under gravity and wind, plots its
// trajectory on a canvas and saves the result.
//
// The output format follows the file extension: .ppm, .png, .bmp or .tiff.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/rt"
	intImage "github.com/gogpu/rt/internal/image"
	"github.com/gogpu/rt/internal/projectile"
)

func main() {
	var (
		width    = flag.Int("width", 900, "canvas width")
		height   = flag.Int("height", 550, "canvas height")
		speed    = flag.Float64("speed", 11.25, "launch speed")
		gravity  = flag.Float64("gravity", 0.1, "downward acceleration per tick")
		wind     = flag.Float64("wind", 0.01, "headwind deceleration per tick")
		maxTicks = flag.Int("max-ticks", 100000, "give up after this many ticks")
		scale    = flag.Int("scale", 1, "integer upscale factor, at least 1 (ignored for .ppm)")
		output   = flag.String("output", "projectile.ppm", "output file")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	rt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	dir, err := rt.NewVector(1, 1.8, 0).Normalize()
	if err != nil {
		log.Fatalf("Launch direction: %v", err)
	}

	p := projectile.Projectile{
		Position: rt.NewPoint(0, 1, 0),
		Velocity: dir.Mul(*speed),
	}
	env := projectile.Environment{
		Gravity: rt.NewVector(0, -*gravity, 0),
		Wind:    rt.NewVector(-*wind, 0, 0),
	}

	path, err := projectile.Trajectory(env, p, *maxTicks)
	if err != nil {
		log.Fatalf("Failed to simulate: %v", err)
	}

	c, err := rt.NewCanvas(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	plotted := projectile.Plot(c, path, rt.NewColor(1, 0.8, 0.6))
	rt.Logger().Info("trajectory plotted", "ticks", len(path), "pixels", plotted)

	if err := save(c, *output, *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
}

// save writes c to path. Raster formats are upscaled by factor first;
// PPM output is always written at canvas size.
func save(c *rt.Canvas, path string, factor int) error {
	if factor < 1 {
		return fmt.Errorf("%w: %d", intImage.ErrInvalidScale, factor)
	}
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		if factor > 1 {
			rt.Logger().Warn("scale ignored for ppm output", "scale", factor)
		}
		return c.Save(path)
	}
	if factor == 1 {
		return c.Save(path)
	}

	format, err := intImage.FormatFromPath(path)
	if err != nil {
		return err
	}
	img, err := intImage.Upscale(c, factor)
	if err != nil {
		return err
	}
	return intImage.Save(path, img, format)
}
