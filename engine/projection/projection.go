package projection

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/shapes"
	"github.com/1siamBot/surrender/engine/view"
)

// ErrZeroDepth is reported for a point on the plane of the center of
// projection, where the perspective divide is undefined.
var ErrZeroDepth = fmt.Errorf("point at zero depth: %w", geom.ErrDegenerate)

var ErrUnknownMode = errors.New("unknown projection mode")

// Mode selects parallel or perspective projection
type Mode uint8

const (
	ModeParallel Mode = iota
	ModePerspective
)

func (m Mode) String() string {
	if m == ModePerspective {
		return "perspective"
	}
	return "parallel"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parallel", "orthographic":
		return ModeParallel, nil
	case "perspective":
		return ModePerspective, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Toggle switches between the two modes.
func (m Mode) Toggle() Mode {
	if m == ModePerspective {
		return ModeParallel
	}
	return ModePerspective
}

// Project dispatches on mode.
func Project(mode Mode, src iter.Seq[shapes.Shape], w *view.Window) (*Stream, error) {
	if mode == ModePerspective {
		return Perspective(src, w)
	}
	return Parallel(src, w)
}

// Parallel re-expresses every shape in the window frame: translated by the
// window center, then aligned. Sources are never modified.
func Parallel(src iter.Seq[shapes.Shape], w *view.Window) (*Stream, error) {
	align, err := AlignmentMatrix(w.UpVector(), w.NormalVector())
	if err != nil {
		return nil, err
	}
	origin := w.Center()

	return newStream(src, func(s shapes.Shape) (shapes.Shape, error) {
		return s.Map(func(p geom.Vec3) geom.Vec3 {
			return align.Apply(p.Sub(origin))
		}), nil
	}), nil
}

// Perspective aligns shapes relative to the center of projection and then
// divides by depth: x' = d·x/z, y' = d·y/z, z' = 0.
// Only depths within Epsilon of the center are rejected. Points behind the
// center of projection (z < 0) are still divided through and come out
// mirrored through the origin; there is no near plane.
func Perspective(src iter.Seq[shapes.Shape], w *view.Window) (*Stream, error) {
	align, err := AlignmentMatrix(w.UpVector(), w.NormalVector())
	if err != nil {
		return nil, err
	}
	origin := w.CenterOfProjection()
	d := w.ProjectionDistance()

	return newStream(src, func(s shapes.Shape) (shapes.Shape, error) {
		aligned := s.Map(func(p geom.Vec3) geom.Vec3 {
			return align.Apply(p.Sub(origin))
		})
		if slices.ContainsFunc(aligned.Points(), func(p geom.Vec3) bool {
			return math.Abs(p.Z) < geom.Epsilon
		}) {
			return nil, ErrZeroDepth
		}
		return aligned.Map(func(p geom.Vec3) geom.Vec3 {
			return geom.V3(d*p.X/p.Z, d*p.Y/p.Z, 0)
		}), nil
	}), nil
}

// Shapes adapts a slice to the sequence the projections consume.
func Shapes(list ...shapes.Shape) iter.Seq[shapes.Shape] {
	return slices.Values(list)
}
