package rt

import "gonum.org/v1/gonum/spatial/r3"

// Point represents a position in 3D space (homogeneous w = 1).
// Unlike Vector, a Point cannot be added to another Point.
type Point r3.Vec

// Origin is the point (0, 0, 0).
var Origin = Point{}

// NewPoint is a convenience function to create a Point.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add translates the point by a vector.
func (p Point) Add(v Vector) Point {
	return Point(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// SubVector translates the point by the inverse of a vector.
func (p Point) SubVector(v Vector) Point {
	return Point(r3.Sub(r3.Vec(p), r3.Vec(v)))
}

// Neg reflects the point through the origin.
func (p Point) Neg() Point {
	return Point(r3.Scale(-1, r3.Vec(p)))
}

// Mul returns the point with every coordinate scaled by s.
func (p Point) Mul(s float64) Point {
	return Point(r3.Scale(s, r3.Vec(p)))
}

// Div returns the point with every coordinate divided by s.
// It returns ErrDivisionByZero if s is zero and ErrNotFinite if a
// coordinate of the result is infinite or NaN.
func (p Point) Div(s float64) (Point, error) {
	if s == 0 {
		return Point{}, ErrDivisionByZero
	}
	q := Point{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
	if !finite(q.X, q.Y, q.Z) {
		return Point{}, ErrNotFinite
	}
	return q, nil
}

// Equal reports whether p and q are equal within Epsilon on every coordinate.
func (p Point) Equal(q Point) bool {
	return FloatsEqual(p.X, q.X) && FloatsEqual(p.Y, q.Y) && FloatsEqual(p.Z, q.Z)
}

// Tuple returns the homogeneous form of the point.
func (p Point) Tuple() Tuple {
	return Tuple{X: p.X, Y: p.Y, Z: p.Z, W: 1}
}
