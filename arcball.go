/*
Package arcball maps 2D pointer movement within a viewport to 3D rotations.

Arcball rotation is an intuitive way of orbiting an object with the mouse,
defined in

	Arcball: A User Interface for Specifying Three-Dimensional
	Orientation Using a Mouse -- Ken Shoemake
	Graphics Interface '92
	https://www.talisman.org/~erlkonig/misc/shoemake92-arcball.pdf

Pointer positions are projected onto a notional sphere centered on the
viewport, and the rotation between two projected points yields an incremental
orientation change. The package includes the extension by Gavin Bell, which
uses a projection surface that is a hybrid of a hemisphere and a hyperbolic
sheet, making the response smoother for pointer positions outside the
rotation sphere.

# Usage

Clients create one Trackball per view and feed it pointer events. On window
resize:

	tb.SetBounds(w, h)

On pointer down and drag:

	tb.Begin(rot, x, y)      // snapshot the current orientation
	rot = tb.Drag(x, y)      // per move event: the new orientation

The returned matrix is the caller's orientation to render with; a gesture
ends simply by no longer calling Drag.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arcball

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcball'
func tracer() tracing.Trace {
	return tracing.Select("arcball")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0. Drags shorter than ε produce
// no rotation.
var Epsilon float64 = 1.0e-5

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Trackball =============================================================

// Policy selects the surface onto which pointer positions are projected.
// It is fixed when a Trackball is created and not switchable mid-session.
type Policy int

const (
	// BellProjection is Gavin Bell's hybrid of a hemisphere and a
	// hyperbolic sheet. Pointer positions outside the sphere slide along
	// the sheet, so the rotation response stays smooth instead of
	// clamping at the equator. This is the default.
	BellProjection Policy = iota
	// ClassicProjection is Shoemake's original scheme: positions outside
	// the sphere are clamped to the equatorial great circle.
	ClassicProjection
)

// Trackball maps pointer activity within a viewport to rotation matrix
// changes. The viewport extent defaults to 1×1 until SetBounds is called.
//
// A Trackball is not safe for concurrent use; a caller feeding it events
// from more than one source must serialize the calls.
type Trackball struct {
	policy   Policy
	width    float64 // viewport extent
	height   float64
	stVec    Vec3   // sphere point at gesture start
	enVec    Vec3   // sphere point at current drag position
	startRot Matrix // orientation snapshot from Begin
}

// NewTrackball creates a trackball using the given projection policy.
func NewTrackball(p Policy) *Trackball {
	return &Trackball{
		policy:   p,
		width:    1.0,
		height:   1.0,
		startRot: Identity(),
	}
}

// Debug Stringer for a trackball.
func (tb *Trackball) String() string {
	return fmt.Sprintf("trackball[%v -> %v, window %g×%g]",
		tb.stVec, tb.enVec, tb.width, tb.height)
}

// SetBounds sets the size of the window the pointer is being dragged in.
// Call it whenever the host window is resized.
func (tb *Trackball) SetBounds(width, height float64) {
	tb.width = width
	tb.height = height
}

// MapToSphere projects a pointer position onto the rotation sphere and
// returns the touch point as a unit vector. The sphere is centered on the
// viewport with a radius derived from its smaller dimension; the screen's
// y axis grows downward and is flipped here.
func (tb *Trackball) MapToSphere(x, y float64) Vec3 {
	cx := (tb.width - 1.0) * 0.5
	cy := (tb.height - 1.0) * 0.5
	sx := x - cx
	sy := cy - y
	minDim := math.Min(tb.width, tb.height) / 2.0

	length2 := sx*sx + sy*sy
	length := math.Sqrt(length2)

	var pz float64
	switch tb.policy {
	case ClassicProjection:
		radius := 0.7 * minDim
		if length < radius {
			pz = math.Sqrt(radius*radius - length2)
		} else {
			// outside the sphere: clamp to the z=0 great circle
			pz = 0.0
		}
	default: // BellProjection
		radius := 0.5 * minDim
		if length < radius/math.Sqrt2 {
			// on the sphere
			pz = math.Sqrt(radius*radius - length2)
		} else if Is0(length) {
			// zero-extent viewport with the pointer dead on its center
			pz = 0.0
		} else {
			// outside the sphere: use the hyperbola
			pz = radius * radius / (2.0 * length)
		}
	}
	return Vec3{sx, sy, pz}.Normalized()
}

// Begin starts a drag gesture at pointer position (x,y). The caller's
// current orientation is snapshotted; Matrix is a value type, so the
// caller's copy is never touched afterwards.
func (tb *Trackball) Begin(rot Matrix, x, y float64) {
	tb.startRot = rot
	tb.stVec = tb.MapToSphere(x, y)
}

// Drag continues the gesture started by Begin and returns the new
// orientation for pointer position (x,y): the start orientation with the
// incremental rotation from the start sphere point to the current one
// composed onto it (start on the left, increment on the right).
//
// Calling Drag without a prior Begin operates on stale gesture state and is
// a caller error; it is not validated here.
func (tb *Trackball) Drag(x, y float64) Matrix {
	tb.enVec = tb.MapToSphere(x, y)

	// The perpendicular of the two sphere points is the rotation axis,
	// scaled by sin θ; their dot product is cos θ.
	perp := tb.stVec.Cross(tb.enVec)

	var quat Quat
	if perp.Magnitude() > Epsilon {
		quat = Quat{perp.X, perp.Y, perp.Z, tb.stVec.Dot(tb.enVec)}
	}
	// otherwise start and end coincide: the zero quaternion, no rotation

	tracer().Debugf("drag %v -> %v, quat = %v", tb.stVec, tb.enVec, quat)
	return tb.startRot.Combine(quat.RotationMatrix())
}
