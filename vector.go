package arcball

import (
	"fmt"
	"math"
)

// === 3D Vector Data Type ===================================================

// Vec3 is a 3D vector. It is a small fixed-size value type; operations
// return new vectors without changing the argument(s).
type Vec3 struct {
	X, Y, Z float64
}

// Pretty Stringer for vectors.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Dot returns the dot product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v×w, perpendicular to both arguments.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. A zero-length vector has no
// direction to preserve; instead of letting a division by zero propagate
// NaNs, a fixed default axis (+z) is substituted and an error is traced.
func (v Vec3) Normalized() Vec3 {
	mag := v.Magnitude()
	if Is0(mag) {
		tracer().Errorf("normalized zero-length vector, substituting +z axis")
		return Vec3{0, 0, 1}
	}
	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}
}
