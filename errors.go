package rt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rt package.
var (
	// ErrDivisionByZero is returned when a tuple is divided by zero or a
	// zero-length vector is normalized.
	ErrDivisionByZero = errors.New("rt: division by zero")

	// ErrNotFinite is returned when a division would produce an infinite
	// or NaN component.
	ErrNotFinite = errors.New("rt: non-finite result")

	// ErrInvalidDimensions is returned when a canvas is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("rt: invalid canvas dimensions")
)

// PixelBoundsError is the panic value of pixel accessors called with
// coordinates outside the canvas.
type PixelBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *PixelBoundsError) Error() string {
	return fmt.Sprintf("rt: pixel (%d, %d) out of bounds for %dx%d canvas", e.X, e.Y, e.Width, e.Height)
}
