package rt

import (
	"fmt"
	"image"
	"image/color"
)

// Canvas is a fixed-size rectangular buffer of colors stored row-major.
// Pixels keep full float precision until the canvas is encoded.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// NewCanvas creates a canvas with every pixel set to black, or to the
// color given by WithBackground. Non-positive dimensions return an error
// wrapping ErrInvalidDimensions.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
	if o.background != Black {
		c.Fill(o.background)
	}
	return c, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// InBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel sets the color of a single pixel.
// It panics with a *PixelBoundsError if (x, y) is outside the canvas.
func (c *Canvas) WritePixel(x, y int, col Color) {
	c.pixels[c.index(x, y)] = col
}

// PixelAt returns the color of a single pixel.
// It panics with a *PixelBoundsError if (x, y) is outside the canvas.
func (c *Canvas) PixelAt(x, y int) Color {
	return c.pixels[c.index(x, y)]
}

// Fill sets every pixel of the canvas to a color.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

func (c *Canvas) index(x, y int) int {
	if !c.InBounds(x, y) {
		panic(&PixelBoundsError{X: x, Y: y, Width: c.width, Height: c.height})
	}
	return y*c.width + x
}

// At implements the image.Image interface.
// Coordinates outside the canvas report black, as image.Image requires.
func (c *Canvas) At(x, y int) color.Color {
	if !c.InBounds(x, y) {
		return Black
	}
	return c.pixels[y*c.width+x]
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
