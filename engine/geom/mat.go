package geom

import "math"

// Mat3 is a 3x3 matrix in row-major order. It is applied to row vectors
// (v·M), so a product A·B applies A first and B second.
type Mat3 [9]float64

func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationX matches Vec3.RotateX: RotationX(a).Apply(v) == v.RotateX(a).
func RotationX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

func RotationY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

func RotationZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

func Scaling(sx, sy, sz float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	}
}

// Mul returns a·b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i*3+j] += a[i*3+k] * b[k*3+j]
			}
		}
	}
	return r
}

// Apply returns v·m.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		v.X*m[0] + v.Y*m[3] + v.Z*m[6],
		v.X*m[1] + v.Y*m[4] + v.Z*m[7],
		v.X*m[2] + v.Y*m[5] + v.Z*m[8],
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
