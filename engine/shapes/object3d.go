package shapes

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
)

// Object3D is a wireframe: vertices joined by index pairs.
type Object3D struct {
	base
	vertices []geom.Vec3
	edges    [][2]int
}

func NewObject3D(name string, vertices []geom.Vec3, edges [][2]int, c color.RGBA) (*Object3D, error) {
	for _, e := range edges {
		for _, i := range e {
			if i < 0 || i >= len(vertices) {
				return nil, fmt.Errorf("%w: object %q edge %v references vertex %d of %d",
					ErrInvalidShape, name, e, i, len(vertices))
			}
		}
	}
	return &Object3D{
		base:     newBase(name, c),
		vertices: append([]geom.Vec3(nil), vertices...),
		edges:    append([][2]int(nil), edges...),
	}, nil
}

// Cube builds an axis-aligned cube with one corner at origin.
func Cube(name string, origin geom.Vec3, size float64, c color.RGBA) *Object3D {
	o := origin
	s := size
	v := []geom.Vec3{
		o,
		o.Add(geom.V3(s, 0, 0)),
		o.Add(geom.V3(s, s, 0)),
		o.Add(geom.V3(0, s, 0)),
		o.Add(geom.V3(0, 0, s)),
		o.Add(geom.V3(s, 0, s)),
		o.Add(geom.V3(s, s, s)),
		o.Add(geom.V3(0, s, s)),
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	return &Object3D{base: newBase(name, c), vertices: v, edges: edges}
}

func (o *Object3D) Kind() Kind          { return KindObject3D }
func (o *Object3D) Points() []geom.Vec3 { return append([]geom.Vec3(nil), o.vertices...) }
func (o *Object3D) EdgeIndices() [][2]int {
	return append([][2]int(nil), o.edges...)
}

func (o *Object3D) Edges() []clip.Segment {
	segs := make([]clip.Segment, len(o.edges))
	for i, e := range o.edges {
		segs[i] = clip.Seg(o.vertices[e[0]], o.vertices[e[1]])
	}
	return segs
}

func (o *Object3D) Map(fn func(geom.Vec3) geom.Vec3) Shape {
	return &Object3D{
		base:     o.base,
		vertices: mapPoints(o.vertices, fn),
		edges:    o.EdgeIndices(),
	}
}

func (o *Object3D) WithAlgorithm(a clip.Algorithm) Shape {
	cp := o.Map(func(p geom.Vec3) geom.Vec3 { return p }).(*Object3D)
	cp.algo = a
	return cp
}
