package clip

import "github.com/1siamBot/surrender/engine/geom"

// Outcode classifies a point against the four half-planes of a rectangle.
type Outcode uint8

const (
	Left Outcode = 1 << iota
	Right
	Bottom
	Up
)

func (c Outcode) Inside() bool { return c == 0 }

// Code computes the outcode of p against r. Boundary values are inside.
// UP/BOTTOM and RIGHT/LEFT are never set together.
func Code(p geom.Vec3, r geom.Rect) Outcode {
	var code Outcode

	if p.Y > r.Max.Y {
		code |= Up
	} else if p.Y < r.Min.Y {
		code |= Bottom
	}

	if p.X > r.Max.X {
		code |= Right
	} else if p.X < r.Min.X {
		code |= Left
	}

	return code
}

// Point keeps a point iff it lies inside r.
func Point(p geom.Vec3, r geom.Rect) bool {
	return Code(p, r).Inside()
}
