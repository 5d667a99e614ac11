package rt

// Tuple is the homogeneous (x, y, z, w) form shared by Point and Vector.
// Points carry w = 1 and vectors w = 0.
type Tuple struct {
	X, Y, Z, W float64
}

// IsPoint reports whether the tuple describes a point.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple describes a vector.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Point returns the tuple as a Point. ok is false if t is not a point.
func (t Tuple) Point() (p Point, ok bool) {
	if !t.IsPoint() {
		return Point{}, false
	}
	return Point{X: t.X, Y: t.Y, Z: t.Z}, true
}

// Vector returns the tuple as a Vector. ok is false if t is not a vector.
func (t Tuple) Vector() (v Vector, ok bool) {
	if !t.IsVector() {
		return Vector{}, false
	}
	return Vector{X: t.X, Y: t.Y, Z: t.Z}, true
}
