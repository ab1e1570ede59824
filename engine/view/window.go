package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/1siamBot/surrender/engine/geom"
)

// ErrInvalidFactor is returned for non-positive zoom factors and distances.
var ErrInvalidFactor = errors.New("factor must be positive")

// tolerance for the rectangle checks, relative to the window size
const shapeTolerance = 1e-6

// Window is the oriented 3D viewing rectangle. Corners are kept in the order
// top-left, top-right, bottom-right, bottom-left as seen from the front.
type Window struct {
	corners  [4]geom.Vec3
	distance float64 // projection distance
}

// NewWindow validates that corners form a non-degenerate planar rectangle.
func NewWindow(corners [4]geom.Vec3, distance float64) (*Window, error) {
	if distance <= 0 {
		return nil, fmt.Errorf("projection distance %v: %w", distance, ErrInvalidFactor)
	}
	w := &Window{corners: corners, distance: distance}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// NewScreenWindow covers (0,0)-(width,height) on the world XY plane, facing +Z.
func NewScreenWindow(width, height, distance float64) (*Window, error) {
	return NewWindow([4]geom.Vec3{
		geom.V2(0, height),
		geom.V2(width, height),
		geom.V2(width, 0),
		geom.V2(0, 0),
	}, distance)
}

func (w *Window) validate() error {
	top := w.corners[1].Sub(w.corners[0])
	left := w.corners[0].Sub(w.corners[3])
	if top.IsZero() || left.IsZero() {
		return fmt.Errorf("window has zero area: %w", geom.ErrDegenerate)
	}

	scale := math.Max(top.Len(), left.Len())
	if math.Abs(top.Dot(left)) > shapeTolerance*scale*scale {
		return fmt.Errorf("window edges are not perpendicular: %w", geom.ErrDegenerate)
	}
	// opposite corner must close the rectangle, which also makes it planar
	want := w.corners[3].Add(top)
	if !want.ApproxEqual(w.corners[2], shapeTolerance*scale) {
		return fmt.Errorf("window corners are not a rectangle: %w", geom.ErrDegenerate)
	}
	return nil
}

// Corners returns a copy of the corners.
func (w *Window) Corners() [4]geom.Vec3 { return w.corners }

func (w *Window) Center() geom.Vec3 {
	var sum geom.Vec3
	for _, c := range w.corners {
		sum = sum.Add(c)
	}
	return sum.Scale(0.25)
}

// UpVector is the unit vector from the bottom edge toward the top edge.
func (w *Window) UpVector() geom.Vec3 {
	return w.corners[0].Sub(w.corners[3]).Normalize()
}

// RightVector is the unit vector from the left edge toward the right edge.
func (w *Window) RightVector() geom.Vec3 {
	return w.corners[1].Sub(w.corners[0]).Normalize()
}

// NormalVector points out of the front face: right × up.
func (w *Window) NormalVector() geom.Vec3 {
	return w.RightVector().Cross(w.UpVector()).Normalize()
}

func (w *Window) Width() float64  { return w.corners[1].Sub(w.corners[0]).Len() }
func (w *Window) Height() float64 { return w.corners[0].Sub(w.corners[3]).Len() }

// ProjectionDistance is the distance from the center of projection to the
// window plane.
func (w *Window) ProjectionDistance() float64 { return w.distance }

// CenterOfProjection is the eye point, behind the window along its normal.
func (w *Window) CenterOfProjection() geom.Vec3 {
	return w.Center().Sub(w.NormalVector().Scale(w.distance))
}

// Min is the lower-left corner in the window's own frame, where the window is
// centered on the origin.
func (w *Window) Min() geom.Vec3 { return geom.V2(-w.Width()/2, -w.Height()/2) }

// Max is the upper-right corner in the window's own frame.
func (w *Window) Max() geom.Vec3 { return geom.V2(w.Width()/2, w.Height()/2) }

// Bounds is the clip rectangle for shapes aligned into the window's frame.
func (w *Window) Bounds() geom.Rect { return geom.Rect{Min: w.Min(), Max: w.Max()} }

// Zoom scales the window about its center. Factors below 1 zoom in. A
// zoom that would collapse the window is refused and leaves it unchanged.
func (w *Window) Zoom(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("zoom %v: %w", factor, ErrInvalidFactor)
	}
	prev := w.corners
	c := w.Center()
	for i, p := range w.corners {
		w.corners[i] = c.Add(p.Sub(c).Scale(factor))
	}
	if err := w.validate(); err != nil {
		w.corners = prev
		return fmt.Errorf("zoom %v: %w", factor, err)
	}
	return nil
}

// Move translates every corner by delta in world space.
func (w *Window) Move(delta geom.Vec3) {
	for i, p := range w.corners {
		w.corners[i] = p.Add(delta)
	}
}

// Pan moves the window along its own right and up vectors.
func (w *Window) Pan(dx, dy float64) {
	w.Move(w.RightVector().Scale(dx).Add(w.UpVector().Scale(dy)))
}

// Rotate turns the window about pivot, applying the X, Y and Z rotations in
// that order. Angles are in radians.
func (w *Window) Rotate(ax, ay, az float64, pivot geom.Vec3) {
	for i, p := range w.corners {
		w.corners[i] = p.Sub(pivot).RotateX(ax).RotateY(ay).RotateZ(az).Add(pivot)
	}
}

func (w *Window) SetProjectionDistance(d float64) error {
	if d <= 0 {
		return fmt.Errorf("projection distance %v: %w", d, ErrInvalidFactor)
	}
	w.distance = d
	return nil
}
