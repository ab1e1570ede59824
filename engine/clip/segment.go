package clip

import "github.com/1siamBot/surrender/engine/geom"

// Segment is a line segment between two points.
type Segment struct {
	A, B geom.Vec3
}

func Seg(a, b geom.Vec3) Segment { return Segment{A: a, B: b} }

// Reversed swaps the endpoints.
func (s Segment) Reversed() Segment { return Segment{A: s.B, B: s.A} }

// ApproxEqual compares two segments endpoint by endpoint, ignoring direction.
func (s Segment) ApproxEqual(o Segment, tol float64) bool {
	if s.A.ApproxEqual(o.A, tol) && s.B.ApproxEqual(o.B, tol) {
		return true
	}
	return s.A.ApproxEqual(o.B, tol) && s.B.ApproxEqual(o.A, tol)
}
