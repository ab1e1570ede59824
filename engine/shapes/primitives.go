package shapes

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
)

// Point is a single position.
type Point struct {
	base
	pos geom.Vec3
}

func NewPoint(name string, pos geom.Vec3, c color.RGBA) *Point {
	return &Point{base: newBase(name, c), pos: pos}
}

func (p *Point) Kind() Kind            { return KindPoint }
func (p *Point) Pos() geom.Vec3        { return p.pos }
func (p *Point) Points() []geom.Vec3   { return []geom.Vec3{p.pos} }
func (p *Point) Edges() []clip.Segment { return nil }
func (p *Point) Map(fn func(geom.Vec3) geom.Vec3) Shape {
	return &Point{base: p.base, pos: fn(p.pos)}
}
func (p *Point) WithAlgorithm(a clip.Algorithm) Shape {
	cp := *p
	cp.algo = a
	return &cp
}

// Line is a single segment.
type Line struct {
	base
	start, end geom.Vec3
}

func NewLine(name string, start, end geom.Vec3, c color.RGBA) *Line {
	return &Line{base: newBase(name, c), start: start, end: end}
}

func (l *Line) Kind() Kind            { return KindLine }
func (l *Line) Start() geom.Vec3      { return l.start }
func (l *Line) End() geom.Vec3        { return l.end }
func (l *Line) Points() []geom.Vec3   { return []geom.Vec3{l.start, l.end} }
func (l *Line) Edges() []clip.Segment { return []clip.Segment{clip.Seg(l.start, l.end)} }
func (l *Line) Map(fn func(geom.Vec3) geom.Vec3) Shape {
	return &Line{base: l.base, start: fn(l.start), end: fn(l.end)}
}
func (l *Line) WithAlgorithm(a clip.Algorithm) Shape {
	cp := *l
	cp.algo = a
	return &cp
}

// Polygon is an ordered point list drawn open, closed or filled.
type Polygon struct {
	base
	pts   []geom.Vec3
	style Style
}

func NewPolygon(name string, pts []geom.Vec3, c color.RGBA, style Style) (*Polygon, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: polygon %q has no points", ErrInvalidShape, name)
	}
	return &Polygon{
		base:  newBase(name, c),
		pts:   append([]geom.Vec3(nil), pts...),
		style: style,
	}, nil
}

// Rectangle builds an axis-aligned polygon from two opposite corners.
func Rectangle(name string, p0, p1 geom.Vec3, c color.RGBA, style Style) *Polygon {
	return &Polygon{
		base: newBase(name, c),
		pts: []geom.Vec3{
			p0,
			geom.V3(p1.X, p0.Y, p0.Z),
			p1,
			geom.V3(p0.X, p1.Y, p1.Z),
		},
		style: style,
	}
}

func (p *Polygon) Kind() Kind          { return KindPolygon }
func (p *Polygon) Style() Style        { return p.style }
func (p *Polygon) Points() []geom.Vec3 { return append([]geom.Vec3(nil), p.pts...) }
func (p *Polygon) Edges() []clip.Segment {
	return polyline(p.pts, p.style != Open)
}
func (p *Polygon) Map(fn func(geom.Vec3) geom.Vec3) Shape {
	return &Polygon{base: p.base, pts: mapPoints(p.pts, fn), style: p.style}
}
func (p *Polygon) WithAlgorithm(a clip.Algorithm) Shape {
	cp := *p
	cp.pts = p.Points()
	cp.algo = a
	return &cp
}

// WithStyle returns a copy drawn with s.
func (p *Polygon) WithStyle(s Style) *Polygon {
	cp := *p
	cp.pts = p.Points()
	cp.style = s
	return &cp
}
