package scene

import (
	"image/color"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/projection"
	"github.com/1siamBot/surrender/engine/shapes"
	"github.com/1siamBot/surrender/engine/view"
	"github.com/1siamBot/surrender/engine/viewport"
)

// Drawable is a shape after projection, clipping and viewport mapping.
// Coordinates are in viewport (screen) space.
type Drawable struct {
	ID       uuid.UUID
	Name     string
	Kind     shapes.Kind
	Color    color.RGBA
	Segments []clip.Segment
	// Points holds point markers, or the clipped outline when Filled is set.
	Points []geom.Vec3
	Filled bool
}

// Empty reports whether nothing of the shape survived clipping.
func (d Drawable) Empty() bool {
	return len(d.Segments) == 0 && len(d.Points) == 0
}

// Render projects every shape through w, clips it against the window
// bounds with the shape's own algorithm and maps the result into vp.
// Shapes clipped away entirely are not yielded. A shape that fails to
// project yields a *shapes.Error and the remaining shapes still render.
func (s *Scene) Render(w *view.Window, vp *view.Viewport, mode projection.Mode) iter.Seq2[Drawable, error] {
	return func(yield func(Drawable, error) bool) {
		ids := s.IDs()
		stream, err := projection.Project(mode, s.Shapes(), w)
		if err != nil {
			s.log.Warn("projection failed", zap.Stringer("mode", mode), zap.Error(err))
			yield(Drawable{}, err)
			return
		}

		source := w.Bounds()
		target := vp.Bounds()
		i := 0
		for shape, err := range stream.All() {
			id := ids[i]
			i++
			if err != nil {
				s.log.Warn("shape skipped", zap.String("id", id.String()), zap.Error(err))
				if !yield(Drawable{}, err) {
					return
				}
				continue
			}
			d := clipShape(shape, source)
			if d.Empty() {
				continue
			}
			d.ID = id
			for j, seg := range d.Segments {
				d.Segments[j] = clip.Seg(
					viewport.Transform(seg.A, source, target),
					viewport.Transform(seg.B, source, target))
			}
			d.Points = viewport.TransformAll(d.Points, source, target)
			if !yield(d, nil) {
				return
			}
		}
	}
}

// RenderAll drains Render, combining every per-shape failure into one error.
func (s *Scene) RenderAll(w *view.Window, vp *view.Viewport, mode projection.Mode) ([]Drawable, error) {
	var out []Drawable
	var errs error
	for d, err := range s.Render(w, vp, mode) {
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, d)
	}
	s.log.Debug("scene rendered",
		zap.Int("shapes", s.Len()),
		zap.Int("drawn", len(out)),
		zap.Int("failed", len(multierr.Errors(errs))))
	return out, errs
}

// clipShape clips a projected shape against r in window coordinates.
func clipShape(shape shapes.Shape, r geom.Rect) Drawable {
	d := Drawable{
		Name:  shape.Name(),
		Kind:  shape.Kind(),
		Color: shape.Color(),
	}

	if shape.Kind() == shapes.KindPoint {
		for _, p := range shape.Points() {
			if clip.Point(p, r) {
				d.Points = append(d.Points, p)
			}
		}
		return d
	}

	edges := shape.Edges()
	if styled, ok := shape.(shapes.Styled); ok && styled.Style() == shapes.Filled && len(edges) >= 3 {
		outline := make([]geom.Vec3, len(edges))
		for i, e := range edges {
			outline[i] = e.A
		}
		d.Points = clip.Polygon(outline, r)
		d.Filled = len(d.Points) >= 3
		if !d.Filled {
			d.Points = nil
		}
		return d
	}

	algo := shape.Algorithm()
	for _, e := range edges {
		if seg, ok := algo.Clip(e.A, e.B, r); ok {
			d.Segments = append(d.Segments, seg)
		}
	}
	return d
}

var (
	FrameColor  = color.RGBA{255, 0, 0, 255}
	MarkerColor = color.RGBA{160, 160, 160, 255}
)

// Gliphs returns the overlay drawn on top of the scene: the viewport
// frame and a cross at the viewport center.
func Gliphs(vp *view.Viewport) []Drawable {
	c := vp.Corners()
	frame := Drawable{
		Name:  "viewport",
		Kind:  shapes.KindPolygon,
		Color: FrameColor,
		Segments: []clip.Segment{
			clip.Seg(c[0], c[1]),
			clip.Seg(c[1], c[2]),
			clip.Seg(c[2], c[3]),
			clip.Seg(c[3], c[0]),
		},
	}

	center := vp.Center()
	arm := min(vp.Width(), vp.Height()) / 40
	marker := Drawable{
		Name:  "center",
		Kind:  shapes.KindLine,
		Color: MarkerColor,
		Segments: []clip.Segment{
			clip.Seg(center.Sub(geom.V2(arm, 0)), center.Add(geom.V2(arm, 0))),
			clip.Seg(center.Sub(geom.V2(0, arm)), center.Add(geom.V2(0, arm))),
		},
	}
	return []Drawable{frame, marker}
}
