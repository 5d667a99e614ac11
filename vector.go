package rt

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector represents a free displacement in 3D space (homogeneous w = 0).
// Unlike Point, which is a position, a Vector has only direction and magnitude.
type Vector r3.Vec

// NewVector is a convenience function to create a Vector.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector(r3.Add(r3.Vec(v), r3.Vec(w)))
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector(r3.Sub(r3.Vec(v), r3.Vec(w)))
}

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector(r3.Scale(-1, r3.Vec(v)))
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector(r3.Scale(s, r3.Vec(v)))
}

// Div returns the vector divided by a scalar.
// It returns ErrDivisionByZero if s is zero and ErrNotFinite if a
// component of the result is infinite or NaN.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, ErrDivisionByZero
	}
	w := Vector{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
	if !finite(w.X, w.Y, w.Z) {
		return Vector{}, ErrNotFinite
	}
	return w, nil
}

// Dot returns the dot product of two vectors over x, y and z.
func (v Vector) Dot(w Vector) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(w))
}

// Cross returns the right-handed cross product v × w.
func (v Vector) Cross(w Vector) Vector {
	return Vector(r3.Cross(r3.Vec(v), r3.Vec(w)))
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return r3.Norm(r3.Vec(v))
}

// Normalize returns a unit vector in the same direction.
// It returns ErrDivisionByZero if v has zero length and ErrNotFinite if
// a component of v is infinite or NaN.
//
// The vector is first divided by its largest component, so subnormal and
// near-overflow vectors normalize with full precision.
func (v Vector) Normalize() (Vector, error) {
	if v.IsZero() {
		return Vector{}, ErrDivisionByZero
	}
	if !finite(v.X, v.Y, v.Z) {
		return Vector{}, ErrNotFinite
	}

	u, err := v.Div(math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))))
	if err != nil {
		return Vector{}, err
	}
	return u.Div(u.Magnitude())
}

// IsZero returns true if the vector is the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Equal reports whether v and w are equal within Epsilon on every component.
func (v Vector) Equal(w Vector) bool {
	return FloatsEqual(v.X, w.X) && FloatsEqual(v.Y, w.Y) && FloatsEqual(v.Z, w.Z)
}

// Tuple returns the homogeneous form of the vector.
func (v Vector) Tuple() Tuple {
	return Tuple{X: v.X, Y: v.Y, Z: v.Z, W: 0}
}
