package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/surrender/engine/geom"
)

const tol = 1e-9

func TestScreenWindowFrame(t *testing.T) {
	w, err := NewScreenWindow(800, 600, 500)
	require.NoError(t, err)

	assert.Equal(t, geom.V2(400, 300), w.Center())
	assert.True(t, w.UpVector().ApproxEqual(geom.V3(0, 1, 0), tol))
	assert.True(t, w.RightVector().ApproxEqual(geom.V3(1, 0, 0), tol))
	assert.True(t, w.NormalVector().ApproxEqual(geom.V3(0, 0, 1), tol))
	assert.Equal(t, 800.0, w.Width())
	assert.Equal(t, 600.0, w.Height())
	assert.Equal(t, geom.V2(-400, -300), w.Min())
	assert.Equal(t, geom.V2(400, 300), w.Max())
	assert.Equal(t, geom.V3(400, 300, -500), w.CenterOfProjection())
}

func TestNewWindowRejectsDegenerate(t *testing.T) {
	_, err := NewScreenWindow(0, 600, 500)
	assert.ErrorIs(t, err, geom.ErrDegenerate)

	_, err = NewWindow([4]geom.Vec3{
		geom.V2(0, 10), geom.V2(10, 12), geom.V2(10, 0), geom.V2(0, 0),
	}, 100)
	assert.ErrorIs(t, err, geom.ErrDegenerate)

	_, err = NewWindow([4]geom.Vec3{
		geom.V2(0, 10), geom.V2(10, 10), geom.V3(10, 0, 3), geom.V2(0, 0),
	}, 100)
	assert.ErrorIs(t, err, geom.ErrDegenerate)

	_, err = NewScreenWindow(10, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidFactor)
}

func TestZoom(t *testing.T) {
	w, err := NewScreenWindow(100, 50, 10)
	require.NoError(t, err)

	require.NoError(t, w.Zoom(0.5))
	assert.InDelta(t, 50, w.Width(), tol)
	assert.InDelta(t, 25, w.Height(), tol)
	assert.True(t, w.Center().ApproxEqual(geom.V2(50, 25), tol))

	assert.ErrorIs(t, w.Zoom(0), ErrInvalidFactor)
	assert.ErrorIs(t, w.Zoom(-2), ErrInvalidFactor)
}

func TestZoomRefusesCollapse(t *testing.T) {
	w, err := NewScreenWindow(200, 100, 10)
	require.NoError(t, err)

	require.NoError(t, w.Zoom(1e-6))
	before := w.Corners()

	err = w.Zoom(1e-6)
	assert.ErrorIs(t, err, geom.ErrDegenerate)
	assert.Equal(t, before, w.Corners())
	assert.True(t, w.UpVector().ApproxEqual(geom.V3(0, 1, 0), tol))

	// the window still zooms back out
	require.NoError(t, w.Zoom(1e6))
	assert.InDelta(t, 200, w.Width(), 1e-6)
}

func TestMoveAndPan(t *testing.T) {
	w, err := NewScreenWindow(100, 50, 10)
	require.NoError(t, err)

	w.Move(geom.V3(10, -5, 2))
	assert.True(t, w.Center().ApproxEqual(geom.V3(60, 20, 2), tol))

	w.Rotate(0, 0, math.Pi/2, w.Center())
	before := w.Center()
	w.Pan(10, 0)
	// right now points along +Y
	assert.True(t, w.Center().ApproxEqual(before.Add(geom.V3(0, 10, 0)), 1e-9))
}

func TestRotateKeepsFrameOrthonormal(t *testing.T) {
	w, err := NewScreenWindow(100, 50, 10)
	require.NoError(t, err)

	center := w.Center()
	w.Rotate(0.3, -1.1, 2.0, center)

	assert.True(t, w.Center().ApproxEqual(center, 1e-9))
	assert.InDelta(t, 100, w.Width(), 1e-9)
	assert.InDelta(t, 50, w.Height(), 1e-9)

	up, n, r := w.UpVector(), w.NormalVector(), w.RightVector()
	assert.InDelta(t, 1, up.Len(), 1e-9)
	assert.InDelta(t, 1, n.Len(), 1e-9)
	assert.InDelta(t, 0, up.Dot(n), 1e-9)
	assert.InDelta(t, 0, r.Dot(n), 1e-9)
	assert.NoError(t, w.validate())
}

func TestRotateAppliesXThenYThenZ(t *testing.T) {
	w, err := NewScreenWindow(2, 2, 10)
	require.NoError(t, err)

	w.Rotate(math.Pi/2, math.Pi/2, 0, geom.Vec3{})
	// (0,2,0) -> X: (0,0,2) -> Y: (2,0,0)
	assert.True(t, w.Corners()[0].ApproxEqual(geom.V3(2, 0, 0), 1e-9), "%v", w.Corners()[0])
}

func TestSetProjectionDistance(t *testing.T) {
	w, err := NewScreenWindow(10, 10, 5)
	require.NoError(t, err)
	require.NoError(t, w.SetProjectionDistance(20))
	assert.Equal(t, 20.0, w.ProjectionDistance())
	assert.ErrorIs(t, w.SetProjectionDistance(-1), ErrInvalidFactor)
}

func TestScreenViewport(t *testing.T) {
	vp, err := NewScreenViewport(800, 600, 50)
	require.NoError(t, err)

	assert.Equal(t, geom.V2(50, 50), vp.Min())
	assert.Equal(t, geom.V2(750, 550), vp.Max())
	assert.Equal(t, 700.0, vp.Width())
	assert.Equal(t, 500.0, vp.Height())
	assert.Equal(t, geom.V2(400, 300), vp.Center())
	assert.Equal(t, geom.V2(50, 550), vp.Corners()[0])

	_, err = NewScreenViewport(80, 600, 40)
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}
