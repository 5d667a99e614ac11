package rt

import "math"

// Color represents a linear color with red, green and blue components.
// Components are unbounded: values outside [0, 1] survive all arithmetic
// and are only clamped when the color is encoded.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from red, green and blue components.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the componentwise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the componentwise difference of two colors.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Mul returns the color scaled by a scalar.
func (c Color) Mul(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Hadamard returns the componentwise product of two colors.
// This is how a surface color filters incoming light.
func (c Color) Hadamard(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Equal reports whether c and o are equal within Epsilon on every channel.
func (c Color) Equal(o Color) bool {
	return FloatsEqual(c.R, o.R) && FloatsEqual(c.G, o.G) && FloatsEqual(c.B, o.B)
}

// RGBA implements the color.Color interface.
// Channels are quantized exactly as in PPM output and the result is opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(channel8(c.R))
	g = uint32(channel8(c.G))
	b = uint32(channel8(c.B))
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// channel8 scales a channel to [0, 255], clamps it, and truncates toward zero.
func channel8(v float64) uint8 {
	return uint8(clamp255(v * maxChannel))
}

// clamp255 restricts a value to [0, 255] range. NaN maps to 0.
func clamp255(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
	Red   = NewColor(1, 0, 0)
	Green = NewColor(0, 1, 0)
	Blue  = NewColor(0, 0, 1)
)
