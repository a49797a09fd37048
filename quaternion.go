package arcball

import (
	"fmt"
	"math"
)

// === Quaternion Data Type ==================================================

// Quat is a rotation quaternion with vector part X, Y, Z and scalar part W.
// W is cos(θ/2) for a rotation by θ about the (normalized) vector part.
// The zero quaternion stands for "no rotation".
type Quat struct {
	X, Y, Z, W float64
}

// Canned initial view orientations for InitialRotation.
var (
	// ViewUnrotated is the untouched start orientation (identity).
	ViewUnrotated = Quat{}
	// ViewY tilts the model a quarter turn about the x axis, so that its
	// y axis points away from the viewer.
	ViewY = Quat{X: -math.Sqrt2, W: math.Sqrt2}
)

// Pretty Stringer for quaternions.
func (q Quat) String() string {
	return fmt.Sprintf("(%g,%g,%g;%g)", q.X, q.Y, q.Z, q.W)
}

// RotationMatrix converts q into the equivalent 4×4 rotation matrix,
// embedded in homogeneous coordinates. The quaternion need not be
// normalized. The derivation of the cross-term formula is in Lengyel,
// Mathematics for 3D Game Programming, pages 88–92.
//
// The zero quaternion carries no orientation at all; it converts to the
// identity matrix rather than to the degenerate all-zero rotation block.
func (q Quat) RotationMatrix() Matrix {
	n := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if n <= 0.0 {
		return Identity()
	}
	s := 2.0 / n

	xs, ys, zs := q.X*s, q.Y*s, q.Z*s
	wx, wy, wz := q.W*xs, q.W*ys, q.W*zs
	xx, xy, xz := q.X*xs, q.X*ys, q.X*zs
	yy, yz, zz := q.Y*ys, q.Y*zs, q.Z*zs

	return Matrix{
		1.0 - (yy + zz), xy + wz, xz - wy, 0.0,
		xy - wz, 1.0 - (xx + zz), yz + wx, 0.0,
		xz + wy, yz - wx, 1.0 - (xx + yy), 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

// InitialRotation returns a 4×4 matrix defining an initial view orientation.
// The canned quaternions ViewUnrotated and ViewY cover the common cases;
// any other quaternion works as well.
func InitialRotation(q Quat) Matrix {
	return q.RotationMatrix()
}
