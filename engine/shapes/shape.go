package shapes

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
)

// Kind identifies a shape variant
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindPolygon
	KindCurve
	KindObject3D
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindCurve:
		return "curve"
	case KindObject3D:
		return "object3d"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Style controls how polygons and curves are outlined or filled
type Style uint8

const (
	Open Style = iota
	Closed
	Filled
)

func (s Style) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Filled:
		return "filled"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "open":
		return Open, nil
	case "closed":
		return Closed, nil
	case "filled":
		return Filled, nil
	}
	return 0, fmt.Errorf("%w: unknown style %q", ErrInvalidShape, s)
}

func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var ErrInvalidShape = errors.New("invalid shape")

// Error ties a failure to the shape that caused it.
type Error struct {
	Shape string
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("shape %q: %v", e.Shape, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Shape is implemented by Point, Line, Polygon, Curve and Object3D.
// Shapes are immutable from the outside: Map and WithAlgorithm return copies.
type Shape interface {
	Name() string
	Color() color.RGBA
	Kind() Kind
	// Points returns a copy of the control points in order.
	Points() []geom.Vec3
	// Edges returns the segments drawn for the shape.
	Edges() []clip.Segment
	// Algorithm is the line clipper this shape is clipped with.
	Algorithm() clip.Algorithm
	WithAlgorithm(a clip.Algorithm) Shape
	// Map returns a deep copy with fn applied to every control point.
	Map(fn func(geom.Vec3) geom.Vec3) Shape
}

// Styled is implemented by shapes that carry a Style.
type Styled interface {
	Shape
	Style() Style
}

type base struct {
	name  string
	color color.RGBA
	algo  clip.Algorithm
}

func (b base) Name() string              { return b.name }
func (b base) Color() color.RGBA         { return b.color }
func (b base) Algorithm() clip.Algorithm { return b.algo }

func newBase(name string, c color.RGBA) base {
	return base{name: name, color: c, algo: clip.Default}
}

func mapPoints(pts []geom.Vec3, fn func(geom.Vec3) geom.Vec3) []geom.Vec3 {
	out := make([]geom.Vec3, len(pts))
	for i, p := range pts {
		out[i] = fn(p)
	}
	return out
}

// polyline joins consecutive points, closing the loop when closed is set.
func polyline(pts []geom.Vec3, closed bool) []clip.Segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]clip.Segment, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		segs = append(segs, clip.Seg(pts[i], pts[i+1]))
	}
	if closed && len(pts) > 2 {
		segs = append(segs, clip.Seg(pts[len(pts)-1], pts[0]))
	}
	return segs
}
