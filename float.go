package rt

import "math"

// Epsilon is the tolerance used by every approximate equality test in rt.
const Epsilon = 1e-6

// FloatsEqual reports whether a and b differ by less than Epsilon.
func FloatsEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// finite reports whether every value is neither infinite nor NaN.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Scaler is implemented by the value types that support scaling by a scalar.
type Scaler[T any] interface {
	Mul(s float64) T
}

// Scale returns t scaled by s. It is the scalar-first spelling of t.Mul(s),
// so Scale(s, v) and v.Mul(s) are always equal.
func Scale[T Scaler[T]](s float64, t T) T {
	return t.Mul(s)
}
