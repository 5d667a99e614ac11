package rt

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default black canvas
//	c, err := rt.NewCanvas(800, 600)
//
//	// Canvas cleared to white
//	c, err := rt.NewCanvas(800, 600, rt.WithBackground(rt.White))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background Color
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: Black,
	}
}

// WithBackground sets the color every pixel starts with.
func WithBackground(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}
