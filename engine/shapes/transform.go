package shapes

import (
	"image/color"

	"github.com/cespare/xxhash/v2"

	"github.com/1siamBot/surrender/engine/geom"
)

// Move returns a copy of s translated by delta.
func Move(s Shape, delta geom.Vec3) Shape {
	return s.Map(func(p geom.Vec3) geom.Vec3 { return p.Add(delta) })
}

// Rotate returns a copy of s rotated about pivot (X, then Y, then Z).
func Rotate(s Shape, ax, ay, az float64, pivot geom.Vec3) Shape {
	return s.Map(func(p geom.Vec3) geom.Vec3 {
		return p.Sub(pivot).RotateX(ax).RotateY(ay).RotateZ(az).Add(pivot)
	})
}

// Scale returns a copy of s scaled about pivot.
func Scale(s Shape, factor float64, pivot geom.Vec3) Shape {
	return s.Map(func(p geom.Vec3) geom.Vec3 {
		return pivot.Add(p.Sub(pivot).Scale(factor))
	})
}

// ApplyTransform returns a copy of s with m applied to every point.
func ApplyTransform(s Shape, m geom.Mat3) Shape {
	return s.Map(m.Apply)
}

// Center is the mean of the control points.
func Center(s Shape) geom.Vec3 {
	pts := s.Points()
	if len(pts) == 0 {
		return geom.Vec3{}
	}
	var sum geom.Vec3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

var palette = []color.RGBA{
	{230, 57, 70, 255},
	{244, 162, 97, 255},
	{233, 196, 106, 255},
	{42, 157, 143, 255},
	{69, 123, 157, 255},
	{131, 56, 236, 255},
	{255, 0, 110, 255},
	{58, 134, 255, 255},
}

// ColorFor picks a stable palette color for a shape name.
func ColorFor(name string) color.RGBA {
	return palette[xxhash.Sum64String(name)%uint64(len(palette))]
}
