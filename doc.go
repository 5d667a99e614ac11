// Package rt provides the numeric kernel of a software ray tracer.
//
// # Overview
//
// rt is a small Pure Go library with a closed algebra over 3-D points,
// vectors and colors, and a Canvas that accumulates color writes and
// serializes them as a plain-text PPM image.
//
// # Quick Start
//
//	import "github.com/gogpu/rt"
//
//	c, err := rt.NewCanvas(5, 3)
//	if err != nil {
//	    return err
//	}
//	c.WritePixel(0, 0, rt.NewColor(1.5, 0, 0))
//	c.WritePixel(2, 1, rt.NewColor(0, 0.5, 0))
//
//	// Serialize to PPM ("P3") text, or save by file extension.
//	text := c.PPM()
//	err = c.Save("out.ppm")
//
// # Points and Vectors
//
// Point and Vector are distinct types sharing the same X, Y, Z layout. The
// homogeneous coordinate w is implied by the type: 1 for Point, 0 for
// Vector. Only the physically meaningful combinations have methods:
//
//	p.Add(v)  // Point + Vector = Point
//	p.Sub(q)  // Point - Point  = Vector
//	v.Add(u)  // Vector + Vector = Vector
//
// Point + Point has no method and does not compile.
//
// # Degenerate Math
//
// Division by zero and normalizing a zero-length vector return
// [ErrDivisionByZero] instead of NaN or infinite components.
//
// # Colors
//
// Colors are unbounded float triples. Values outside [0, 1] are legal
// during intermediate math and are clamped only when the canvas is encoded.
//
// # Coordinate System
//
// Canvas coordinates follow standard raster conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package rt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
