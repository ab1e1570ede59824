package view

import (
	"fmt"
	"math"

	"github.com/1siamBot/surrender/engine/geom"
)

// Viewport is the 2D destination rectangle in screen space. Corners follow
// the Window order with screen y growing downward, so corners[0] is (min.x, max.y).
type Viewport struct {
	corners [4]geom.Vec3
}

func NewViewport(min, max geom.Vec3) (*Viewport, error) {
	vp := &Viewport{}
	if err := vp.Resize(min, max); err != nil {
		return nil, err
	}
	return vp, nil
}

// NewScreenViewport is the screen rectangle inset by border pixels on every side.
func NewScreenViewport(width, height, border float64) (*Viewport, error) {
	return NewViewport(geom.V2(border, border), geom.V2(width-border, height-border))
}

// Resize replaces the rectangle.
func (vp *Viewport) Resize(min, max geom.Vec3) error {
	if max.X-min.X < geom.Epsilon || max.Y-min.Y < geom.Epsilon {
		return fmt.Errorf("viewport %v-%v has zero area: %w", min, max, geom.ErrDegenerate)
	}
	vp.corners = [4]geom.Vec3{
		geom.V2(min.X, max.Y),
		geom.V2(max.X, max.Y),
		geom.V2(max.X, min.Y),
		geom.V2(min.X, min.Y),
	}
	return nil
}

func (vp *Viewport) Corners() [4]geom.Vec3 { return vp.corners }

func (vp *Viewport) Min() geom.Vec3 {
	m := vp.corners[0]
	for _, c := range vp.corners[1:] {
		m.X = math.Min(m.X, c.X)
		m.Y = math.Min(m.Y, c.Y)
	}
	return geom.V2(m.X, m.Y)
}

func (vp *Viewport) Max() geom.Vec3 {
	m := vp.corners[0]
	for _, c := range vp.corners[1:] {
		m.X = math.Max(m.X, c.X)
		m.Y = math.Max(m.Y, c.Y)
	}
	return geom.V2(m.X, m.Y)
}

func (vp *Viewport) Bounds() geom.Rect { return geom.Rect{Min: vp.Min(), Max: vp.Max()} }
func (vp *Viewport) Center() geom.Vec3 { return vp.Bounds().Center() }
func (vp *Viewport) Width() float64    { return vp.Bounds().Width() }
func (vp *Viewport) Height() float64   { return vp.Bounds().Height() }
