package geom

// Rect is an axis-aligned rectangle on the XY plane. Z is ignored.
type Rect struct {
	Min, Max Vec3
}

func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: V2(x0, y0), Max: V2(x1, y1)}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec3 {
	return V2((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Contains is boundary inclusive.
func (r Rect) Contains(p Vec3) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Empty reports a rectangle with no area.
func (r Rect) Empty() bool {
	return r.Width() < Epsilon || r.Height() < Epsilon
}
