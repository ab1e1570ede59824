// Package viewport maps window-local coordinates onto the screen.
package viewport

import "github.com/1siamBot/surrender/engine/geom"

// Transform normalizes p within source, flips y (math y-up to screen
// y-down) and scales into target. Z is carried through unchanged.
func Transform(p geom.Vec3, source, target geom.Rect) geom.Vec3 {
	x := (p.X - source.Min.X) / source.Width()
	y := (p.Y - source.Min.Y) / source.Height()
	y = 1 - y

	return geom.V3(
		target.Min.X+x*target.Width(),
		target.Min.Y+y*target.Height(),
		p.Z,
	)
}

// TransformAll maps every point into a new slice.
func TransformAll(pts []geom.Vec3, source, target geom.Rect) []geom.Vec3 {
	out := make([]geom.Vec3, len(pts))
	for i, p := range pts {
		out[i] = Transform(p, source, target)
	}
	return out
}

// Inverse maps a target (screen) point back into source coordinates.
func Inverse(p geom.Vec3, source, target geom.Rect) geom.Vec3 {
	x := (p.X - target.Min.X) / target.Width()
	y := 1 - (p.Y-target.Min.Y)/target.Height()

	return geom.V3(
		source.Min.X+x*source.Width(),
		source.Min.Y+y*source.Height(),
		p.Z,
	)
}
