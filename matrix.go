package arcball

import "fmt"

// === 4x4 Matrix Data Type ==================================================

// Matrix is a 4×4 homogeneous transformation matrix, flattened by rows.
// Points transform as row vectors (v′ = v·M), matching the layout rendering
// APIs consume directly, so composing A then B is the product A·B.
type Matrix [16]float64

func (m Matrix) row(row int) [4]float64 {
	return [4]float64{m[row*4], m[row*4+1], m[row*4+2], m[row*4+3]}
}

func (m Matrix) col(col int) [4]float64 {
	return [4]float64{m[col], m[4+col], m[8+col], m[12+col]}
}

// v1 × v2, v.n = [a,b,c,d]
func dotProd(vec1, vec2 [4]float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	p4 := vec1[3] * vec2[3]
	return p1 + p2 + p3 + p4
}

// Identity matrix. Will transform a point onto itself.
func Identity() Matrix {
	var m Matrix
	m[0] = 1.0
	m[5] = 1.0
	m[10] = 1.0
	m[15] = 1.0
	return m
}

// Debug Stringer for a matrix.
func (m Matrix) String() string {
	s := "["
	for row := 0; row < 4; row++ {
		if row > 0 {
			s += "|"
		}
		r := m.row(row)
		s += fmt.Sprintf("%g,%g,%g,%g", r[0], r[1], r[2], r[3])
	}
	return s + "]"
}

// Combine multiplies m by n (receiver on the left) and returns the product
// as a new matrix without changing the argument(s). In the row-vector
// convention m is applied first, then n.
func (m Matrix) Combine(n Matrix) Matrix {
	var o Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			o[row*4+col] = dotProd(m.row(row), n.col(col))
		}
	}
	return o
}

// Apply transforms a 3D point in homogeneous coordinates (row vector times
// matrix). The argument is unchanged and a new vector is returned.
func (m Matrix) Apply(v Vec3) Vec3 {
	p := [4]float64{v.X, v.Y, v.Z, 1.0}
	return Vec3{
		dotProd(p, m.col(0)),
		dotProd(p, m.col(1)),
		dotProd(p, m.col(2)),
	}
}
