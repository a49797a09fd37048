package arcball

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func vecApproxEq(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestQuaternionRotationRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// +90° about the z axis
	q := Quat{0, 0, math.Sin(math.Pi / 4), math.Cos(math.Pi / 4)}
	m := q.RotationMatrix()
	got := m.Apply(Vec3{1, 0, 0})
	if !vecApproxEq(got, Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("expected (1,0,0) to rotate to (0,1,0), got %v", got)
	}
}

func TestZeroQuaternionIsIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Quat{}.RotationMatrix()
	if m != Identity() {
		t.Errorf("expected identity for the zero quaternion, got %v", m)
	}
}

func TestInitialViews(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if m := InitialRotation(ViewUnrotated); m != Identity() {
		t.Errorf("expected unrotated view to be identity, got %v", m)
	}
	m := InitialRotation(ViewY)
	if got := m.Apply(Vec3{0, 1, 0}); !vecApproxEq(got, Vec3{0, 0, -1}, 1e-9) {
		t.Errorf("expected y axis to tilt to (0,0,-1), got %v", got)
	}
	if got := m.Apply(Vec3{0, 0, 1}); !vecApproxEq(got, Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("expected z axis to tilt to (0,1,0), got %v", got)
	}
}

func TestUnnormalizedQuaternion(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scaling a quaternion must not change the rotation it encodes
	q := Quat{0, 0, math.Sin(math.Pi / 4), math.Cos(math.Pi / 4)}
	scaled := Quat{q.X * 3, q.Y * 3, q.Z * 3, q.W * 3}
	if !matrixApproxEq(q.RotationMatrix(), scaled.RotationMatrix(), 1e-9) {
		t.Errorf("scaled quaternion produced a different rotation")
	}
}
