package geom

import "math"

// Vec3 is a 3D vector. Methods never mutate the receiver.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// V2 is a point on the z=0 plane.
func V2(x, y float64) Vec3 { return Vec3{x, y, 0} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// IsZero reports whether v is too short to carry a direction.
func (v Vec3) IsZero() bool { return v.Len() < Epsilon }

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < Epsilon {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t, v.Z + (o.Z-v.Z)*t}
}

// ApproxEqual compares component-wise within tol.
func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// RotateX rotates v about the X axis by angle radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v about the Y axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ rotates v about the Z axis by angle radians.
func (v Vec3) RotateZ(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// XAngle is the rotation about X that moves v into the XZ plane (y becomes 0, z >= 0).
func (v Vec3) XAngle() float64 { return math.Atan2(v.Y, v.Z) }

// YAngle is the angle of v inside the XZ plane, measured from +X toward +Z.
// Rotating about Y by YAngle()-π/2 brings a vector with y=0 onto +Z.
func (v Vec3) YAngle() float64 { return math.Atan2(v.Z, v.X) }

// ZAngle is the rotation about Z that brings v onto +Y (for v in the XY plane).
func (v Vec3) ZAngle() float64 { return math.Atan2(v.X, v.Y) }

func DegToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func RadToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
