package shapes

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
)

// CurveKind selects the curve basis.
type CurveKind uint8

const (
	Bezier CurveKind = iota
	BSpline
)

func (k CurveKind) String() string {
	if k == BSpline {
		return "bspline"
	}
	return "bezier"
}

// DefaultCurveSteps is the number of samples per curve segment.
const DefaultCurveSteps = 24

// Curve is a piecewise cubic curve over its control points. It is drawn as
// the polyline returned by Polygon.
type Curve struct {
	base
	kind  CurveKind
	pts   []geom.Vec3
	style Style
	steps int
}

// NewBezier needs 3n+1 control points: each cubic segment shares its last
// point with the next one.
func NewBezier(name string, pts []geom.Vec3, c color.RGBA) (*Curve, error) {
	if len(pts) < 4 || (len(pts)-1)%3 != 0 {
		return nil, fmt.Errorf("%w: bezier %q needs 3n+1 points, got %d", ErrInvalidShape, name, len(pts))
	}
	return newCurve(name, Bezier, pts, c), nil
}

// NewBSpline needs at least 4 control points.
func NewBSpline(name string, pts []geom.Vec3, c color.RGBA) (*Curve, error) {
	if len(pts) < 4 {
		return nil, fmt.Errorf("%w: b-spline %q needs at least 4 points, got %d", ErrInvalidShape, name, len(pts))
	}
	return newCurve(name, BSpline, pts, c), nil
}

func newCurve(name string, kind CurveKind, pts []geom.Vec3, c color.RGBA) *Curve {
	return &Curve{
		base:  newBase(name, c),
		kind:  kind,
		pts:   append([]geom.Vec3(nil), pts...),
		style: Open,
		steps: DefaultCurveSteps,
	}
}

func (c *Curve) Kind() Kind            { return KindCurve }
func (c *Curve) CurveKind() CurveKind  { return c.kind }
func (c *Curve) Style() Style          { return c.style }
func (c *Curve) Steps() int            { return c.steps }
func (c *Curve) Points() []geom.Vec3   { return append([]geom.Vec3(nil), c.pts...) }
func (c *Curve) Edges() []clip.Segment { return polyline(c.sample(), c.style != Open) }

func (c *Curve) Map(fn func(geom.Vec3) geom.Vec3) Shape {
	cp := *c
	cp.pts = mapPoints(c.pts, fn)
	return &cp
}

func (c *Curve) WithAlgorithm(a clip.Algorithm) Shape {
	cp := *c
	cp.pts = c.Points()
	cp.algo = a
	return &cp
}

// WithSteps returns a copy sampled with n steps per segment (at least 1).
func (c *Curve) WithSteps(n int) *Curve {
	cp := *c
	cp.pts = c.Points()
	cp.steps = max(1, n)
	return &cp
}

// WithStyle returns a copy drawn with s.
func (c *Curve) WithStyle(s Style) *Curve {
	cp := *c
	cp.pts = c.Points()
	cp.style = s
	return &cp
}

// Polygon samples the curve into a polygon with the curve's color, style
// and clipping algorithm.
func (c *Curve) Polygon() *Polygon {
	return &Polygon{base: c.base, pts: c.sample(), style: c.style}
}

func (c *Curve) sample() []geom.Vec3 {
	if c.kind == BSpline {
		return sampleBSpline(c.pts, c.steps)
	}
	return sampleBezier(c.pts, c.steps)
}

func sampleBezier(pts []geom.Vec3, steps int) []geom.Vec3 {
	out := []geom.Vec3{pts[0]}
	for i := 0; i+3 < len(pts); i += 3 {
		p0, p1, p2, p3 := pts[i], pts[i+1], pts[i+2], pts[i+3]
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			u := 1 - t
			b0 := u * u * u
			b1 := 3 * u * u * t
			b2 := 3 * u * t * t
			b3 := t * t * t
			out = append(out, p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2)).Add(p3.Scale(b3)))
		}
		// land exactly on the shared control point
		out[len(out)-1] = p3
	}
	return out
}

func sampleBSpline(pts []geom.Vec3, steps int) []geom.Vec3 {
	var out []geom.Vec3
	for i := 0; i+3 < len(pts); i++ {
		p0, p1, p2, p3 := pts[i], pts[i+1], pts[i+2], pts[i+3]
		first := 1
		if i == 0 {
			first = 0
		}
		for s := first; s <= steps; s++ {
			t := float64(s) / float64(steps)
			t2, t3 := t*t, t*t*t
			b0 := (1 - 3*t + 3*t2 - t3) / 6
			b1 := (3*t3 - 6*t2 + 4) / 6
			b2 := (-3*t3 + 3*t2 + 3*t + 1) / 6
			b3 := t3 / 6
			out = append(out, p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2)).Add(p3.Scale(b3)))
		}
	}
	return out
}
