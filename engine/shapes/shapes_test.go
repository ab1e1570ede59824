package shapes

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
)

var red = color.RGBA{255, 0, 0, 255}

func TestPointAndLine(t *testing.T) {
	p := NewPoint("p", geom.V2(1, 2), red)
	assert.Equal(t, KindPoint, p.Kind())
	assert.Equal(t, []geom.Vec3{geom.V2(1, 2)}, p.Points())
	assert.Empty(t, p.Edges())

	l := NewLine("l", geom.V2(0, 0), geom.V2(3, 4), red)
	assert.Equal(t, KindLine, l.Kind())
	assert.Equal(t, []clip.Segment{clip.Seg(geom.V2(0, 0), geom.V2(3, 4))}, l.Edges())
	assert.Equal(t, clip.Default, l.Algorithm())
}

func TestPolygonEdgesFollowStyle(t *testing.T) {
	pts := []geom.Vec3{geom.V2(0, 0), geom.V2(1, 0), geom.V2(1, 1)}

	open, err := NewPolygon("tri", pts, red, Open)
	require.NoError(t, err)
	assert.Len(t, open.Edges(), 2)

	closed := open.WithStyle(Closed)
	assert.Len(t, closed.Edges(), 3)
	assert.Equal(t, clip.Seg(geom.V2(1, 1), geom.V2(0, 0)), closed.Edges()[2])
	assert.Equal(t, Open, open.Style())

	_, err = NewPolygon("empty", nil, red, Open)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestRectangle(t *testing.T) {
	r := Rectangle("r", geom.V2(0, 0), geom.V2(4, 2), red, Filled)
	assert.Equal(t, []geom.Vec3{
		geom.V2(0, 0), geom.V2(4, 0), geom.V2(4, 2), geom.V2(0, 2),
	}, r.Points())
	assert.Len(t, r.Edges(), 4)
	assert.Equal(t, Filled, r.Style())
}

func TestMapReturnsDeepCopy(t *testing.T) {
	pts := []geom.Vec3{geom.V2(0, 0), geom.V2(1, 0), geom.V2(1, 1)}
	poly, err := NewPolygon("tri", pts, red, Closed)
	require.NoError(t, err)

	moved := Move(poly, geom.V3(10, 0, 0))
	assert.Equal(t, pts, poly.Points())
	assert.Equal(t, geom.V2(10, 0), moved.Points()[0])

	// callers cannot reach the internal slice
	got := poly.Points()
	got[0] = geom.V2(99, 99)
	assert.Equal(t, geom.V2(0, 0), poly.Points()[0])

	pts[1] = geom.V2(50, 50)
	assert.Equal(t, geom.V2(1, 0), poly.Points()[1])
}

func TestWithAlgorithmIsPerInstance(t *testing.T) {
	a := NewLine("a", geom.V2(0, 0), geom.V2(1, 1), red)
	b := a.WithAlgorithm(clip.CohenSutherlandAlgorithm)

	assert.Equal(t, clip.LiangBarskyAlgorithm, a.Algorithm())
	assert.Equal(t, clip.CohenSutherlandAlgorithm, b.Algorithm())

	moved := Move(b, geom.V2(1, 1))
	assert.Equal(t, clip.CohenSutherlandAlgorithm, moved.Algorithm())
}

func TestRotateAndApplyTransform(t *testing.T) {
	l := NewLine("l", geom.V2(1, 0), geom.V2(2, 0), red)

	r := Rotate(l, 0, 0, math.Pi/2, geom.Vec3{})
	assert.True(t, r.Points()[0].ApproxEqual(geom.V2(0, 1), 1e-9))
	assert.True(t, r.Points()[1].ApproxEqual(geom.V2(0, 2), 1e-9))

	m := ApplyTransform(l, geom.RotationZ(math.Pi/2))
	assert.True(t, m.Points()[1].ApproxEqual(r.Points()[1], 1e-9))

	s := Scale(l, 2, geom.V2(1, 0))
	assert.Equal(t, geom.V2(3, 0), s.Points()[1])

	assert.Equal(t, geom.V2(1.5, 0), Center(l))
}

func TestBezier(t *testing.T) {
	_, err := NewBezier("b", []geom.Vec3{geom.V2(0, 0), geom.V2(1, 1), geom.V2(2, 0)}, red)
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = NewBezier("b", make([]geom.Vec3, 5), red)
	assert.ErrorIs(t, err, ErrInvalidShape)

	pts := []geom.Vec3{
		geom.V2(0, 0), geom.V2(0, 10), geom.V2(10, 10), geom.V2(10, 0),
		geom.V2(10, -10), geom.V2(20, -10), geom.V2(20, 0),
	}
	c, err := NewBezier("b", pts, red)
	require.NoError(t, err)
	c = c.WithSteps(10)

	poly := c.Polygon()
	sampled := poly.Points()
	require.Len(t, sampled, 1+2*10)
	assert.Equal(t, pts[0], sampled[0])
	assert.Equal(t, pts[3], sampled[10])
	assert.Equal(t, pts[6], sampled[20])
	// symmetric first segment peaks at 7.5 in the middle
	assert.InDelta(t, 7.5, sampled[5].Y, 1e-9)
	assert.Len(t, c.Edges(), 20)
	assert.Equal(t, KindCurve, c.Kind())
	assert.Equal(t, Bezier, c.CurveKind())
}

func TestBSpline(t *testing.T) {
	_, err := NewBSpline("s", make([]geom.Vec3, 3), red)
	assert.ErrorIs(t, err, ErrInvalidShape)

	// collinear, evenly spaced control points give a straight line
	pts := []geom.Vec3{geom.V2(0, 0), geom.V2(1, 0), geom.V2(2, 0), geom.V2(3, 0), geom.V2(4, 0)}
	c, err := NewBSpline("s", pts, red)
	require.NoError(t, err)
	c = c.WithSteps(4)

	sampled := c.Polygon().Points()
	require.Len(t, sampled, 2*4+1)
	assert.InDelta(t, 1, sampled[0].X, 1e-9)
	assert.InDelta(t, 3, sampled[len(sampled)-1].X, 1e-9)
	for _, p := range sampled {
		assert.InDelta(t, 0, p.Y, 1e-9)
	}
}

func TestCurveKeepsAlgorithmInPolygon(t *testing.T) {
	c, err := NewBSpline("s", make([]geom.Vec3, 4), red)
	require.NoError(t, err)
	cs := c.WithAlgorithm(clip.CohenSutherlandAlgorithm).(*Curve)
	assert.Equal(t, clip.CohenSutherlandAlgorithm, cs.Polygon().Algorithm())
}

func TestCube(t *testing.T) {
	c := Cube("c", geom.V3(1, 1, 1), 2, red)
	assert.Len(t, c.Points(), 8)
	assert.Len(t, c.Edges(), 12)
	assert.Equal(t, geom.V3(2, 2, 2), Center(c))
	for _, e := range c.Edges() {
		assert.InDelta(t, 2, e.B.Sub(e.A).Len(), 1e-9)
	}
}

func TestObject3DValidatesEdges(t *testing.T) {
	_, err := NewObject3D("o", []geom.Vec3{geom.V2(0, 0)}, [][2]int{{0, 1}}, red)
	assert.ErrorIs(t, err, ErrInvalidShape)

	o, err := NewObject3D("o", []geom.Vec3{geom.V2(0, 0), geom.V2(1, 0)}, [][2]int{{0, 1}}, red)
	require.NoError(t, err)
	moved := Move(o, geom.V2(0, 1)).(*Object3D)
	assert.Equal(t, [][2]int{{0, 1}}, moved.EdgeIndices())
	assert.Equal(t, geom.V2(0, 0), o.Points()[0])
}

func TestColorForIsStable(t *testing.T) {
	assert.Equal(t, ColorFor("house"), ColorFor("house"))
	assert.Contains(t, palette, ColorFor("anything"))
}

func TestStyleText(t *testing.T) {
	var s Style
	require.NoError(t, s.UnmarshalText([]byte("Filled")))
	assert.Equal(t, Filled, s)
	assert.Error(t, s.UnmarshalText([]byte("dashed")))
	assert.Equal(t, "closed", Closed.String())
}

func TestErrorUnwraps(t *testing.T) {
	err := error(&Error{Shape: "x", Err: geom.ErrDegenerate})
	assert.ErrorIs(t, err, geom.ErrDegenerate)
	assert.Contains(t, err.Error(), `"x"`)
}
