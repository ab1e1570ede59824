package control

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/projection"
	"github.com/1siamBot/surrender/engine/scene"
	"github.com/1siamBot/surrender/engine/view"
)

// ErrQuit is returned by Apply for CmdQuit.
var ErrQuit = errors.New("quit requested")

// Steps are the increments applied per command.
type Steps struct {
	// ZoomFactor is greater than 1; zooming in divides the window by it.
	ZoomFactor float64
	Move       float64
	// Rotate is in radians.
	Rotate float64
}

// Controller owns the view state the render loop reads every frame.
type Controller struct {
	Window    *view.Window
	Viewport  *view.Viewport
	Scene     *scene.Scene
	Mode      projection.Mode
	Algorithm clip.Algorithm

	steps Steps
	home  view.Window
	log   *zap.Logger
}

func NewController(w *view.Window, vp *view.Viewport, s *scene.Scene, steps Steps, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	for _, t := range []scene.EventType{scene.EvtShapeAdded, scene.EvtShapeRemoved, scene.EvtShapeChanged} {
		s.Events.On(t, func(e scene.Event) {
			log.Debug("scene event", zap.Stringer("type", e.Type), zap.String("shape", e.Name))
		})
	}
	return &Controller{
		Window:    w,
		Viewport:  vp,
		Scene:     s,
		Algorithm: clip.Default,
		steps:     steps,
		home:      *w,
		log:       log,
	}
}

// Apply runs one command. Moves are along the window's own axes and
// rotations turn it about its center.
func (c *Controller) Apply(cmd Command) error {
	w := c.Window
	rot := c.steps.Rotate
	switch cmd {
	case CmdNone:
		return nil
	case CmdZoomIn:
		return w.Zoom(1 / c.steps.ZoomFactor)
	case CmdZoomOut:
		return w.Zoom(c.steps.ZoomFactor)
	case CmdMoveUp:
		w.Pan(0, c.steps.Move)
	case CmdMoveDown:
		w.Pan(0, -c.steps.Move)
	case CmdMoveLeft:
		w.Pan(-c.steps.Move, 0)
	case CmdMoveRight:
		w.Pan(c.steps.Move, 0)
	case CmdRotateXPos:
		w.Rotate(rot, 0, 0, w.Center())
	case CmdRotateXNeg:
		w.Rotate(-rot, 0, 0, w.Center())
	case CmdRotateYPos:
		w.Rotate(0, rot, 0, w.Center())
	case CmdRotateYNeg:
		w.Rotate(0, -rot, 0, w.Center())
	case CmdRotateZPos:
		w.Rotate(0, 0, rot, w.Center())
	case CmdRotateZNeg:
		w.Rotate(0, 0, -rot, w.Center())
	case CmdToggleProjection:
		c.Mode = c.Mode.Toggle()
		c.log.Info("projection changed", zap.Stringer("mode", c.Mode))
	case CmdCycleAlgorithm:
		// shapes pinned to their own algorithm keep it
		c.Algorithm = c.Algorithm.Next()
		c.Scene.SetAlgorithmAll(c.Algorithm)
		c.log.Info("clipping changed", zap.Stringer("algorithm", c.Algorithm))
	case CmdReset:
		*w = c.home
	case CmdQuit:
		return ErrQuit
	default:
		return fmt.Errorf("unhandled command %v", cmd)
	}
	return nil
}

// Drag pans by a screen-space mouse delta so the content follows the
// pointer. Screen y grows downward.
func (c *Controller) Drag(dx, dy float64) {
	scale := c.Window.Width() / c.Viewport.Width()
	c.Window.Pan(-dx*scale, dy*scale)
}

// Scroll zooms in for positive wheel deltas and out for negative ones.
func (c *Controller) Scroll(dy float64) error {
	switch {
	case dy > 0:
		return c.Apply(CmdZoomIn)
	case dy < 0:
		return c.Apply(CmdZoomOut)
	}
	return nil
}

// Resize rebuilds the window and viewport for a new screen size, the way
// they are built at startup. The projection distance is kept.
func (c *Controller) Resize(width, height, border float64) error {
	w, err := view.NewScreenWindow(width, height, c.Window.ProjectionDistance())
	if err != nil {
		return err
	}
	vp, err := view.NewScreenViewport(width, height, border)
	if err != nil {
		return err
	}
	*c.Window = *w
	*c.Viewport = *vp
	c.home = *w
	c.log.Debug("view resized", zap.Float64("width", width), zap.Float64("height", height))
	return nil
}

// Render delivers pending scene events and draws the scene with the
// current view state.
func (c *Controller) Render() ([]scene.Drawable, error) {
	c.Scene.Events.Dispatch()
	return c.Scene.RenderAll(c.Window, c.Viewport, c.Mode)
}

// Status is a one-line summary for the front ends to display.
func (c *Controller) Status() string {
	center := c.Window.Center()
	return fmt.Sprintf("%s | %s | center (%.0f, %.0f, %.0f) | %.0fx%.0f",
		c.Mode, c.Algorithm, center.X, center.Y, center.Z, c.Window.Width(), c.Window.Height())
}

// StepsFromDegrees builds Steps from a rotation step in degrees.
func StepsFromDegrees(zoom, move, rotateDeg float64) Steps {
	return Steps{ZoomFactor: zoom, Move: move, Rotate: geom.DegToRad(rotateDeg)}
}
