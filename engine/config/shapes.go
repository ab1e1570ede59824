package config

import (
	"fmt"
	"image/color"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/scene"
	"github.com/1siamBot/surrender/engine/shapes"
)

// ShapeSpec describes one scene shape. Which fields apply depends on Kind:
//
//	point      points[0]
//	line       points[0], points[1]
//	polygon    points, style
//	rectangle  points[0], points[1] (opposite corners), style
//	bezier     points (3n+1), style, steps
//	bspline    points (4 or more), style, steps
//	cube       origin, size
//	object3d   points (vertices), edges
type ShapeSpec struct {
	Kind      string      `yaml:"kind"`
	Name      string      `yaml:"name"`
	Color     []int       `yaml:"color,omitempty"`
	Style     string      `yaml:"style,omitempty"`
	Algorithm string      `yaml:"algorithm,omitempty"`
	Points    [][]float64 `yaml:"points,omitempty"`
	Origin    []float64   `yaml:"origin,omitempty"`
	Size      float64     `yaml:"size,omitempty"`
	Edges     [][]int     `yaml:"edges,omitempty"`
	Steps     int         `yaml:"steps,omitempty"`
}

func (s ShapeSpec) validate() error {
	_, err := s.build(clip.Default, 1)
	return err
}

// BuildShapes instantiates the configured scene. Curves without their own
// step count use the curves section; shapes without their own algorithm
// use the clipping section.
func (c *Config) BuildShapes() ([]shapes.Shape, error) {
	var out []shapes.Shape
	var errs error
	for i, spec := range c.Scene {
		sh, err := spec.build(c.Algorithm(), c.Curves.Steps)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("scene[%d]: %w", i, err))
			continue
		}
		out = append(out, sh)
	}
	return out, errs
}

// BuildScene returns a scene holding the configured shapes. Shapes that
// name their own algorithm are pinned to it.
func (c *Config) BuildScene(log *zap.Logger) (*scene.Scene, error) {
	list, err := c.BuildShapes()
	if err != nil {
		return nil, err
	}
	s := scene.New(scene.WithLogger(log))
	for i, sh := range list {
		id := s.Add(sh)
		if c.Scene[i].Algorithm != "" {
			if err := s.PinAlgorithm(id); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s ShapeSpec) build(algo clip.Algorithm, steps int) (shapes.Shape, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("%w: %s shape without a name", shapes.ErrInvalidShape, s.Kind)
	}
	if s.Algorithm != "" {
		a, err := clip.ParseAlgorithm(s.Algorithm)
		if err != nil {
			return nil, err
		}
		algo = a
	}
	if s.Steps > 0 {
		steps = s.Steps
	}
	col, err := s.color()
	if err != nil {
		return nil, err
	}
	style, err := shapes.ParseStyle(s.Style)
	if err != nil {
		return nil, err
	}
	pts, err := vectors(s.Points)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s.Name, err)
	}
	need := func(n int) error {
		if len(pts) != n {
			return fmt.Errorf("%w: %s %q needs %d points, got %d", shapes.ErrInvalidShape, s.Kind, s.Name, n, len(pts))
		}
		return nil
	}

	var sh shapes.Shape
	switch s.Kind {
	case "point":
		if err := need(1); err != nil {
			return nil, err
		}
		sh = shapes.NewPoint(s.Name, pts[0], col)
	case "line":
		if err := need(2); err != nil {
			return nil, err
		}
		sh = shapes.NewLine(s.Name, pts[0], pts[1], col)
	case "polygon":
		p, err := shapes.NewPolygon(s.Name, pts, col, style)
		if err != nil {
			return nil, err
		}
		sh = p
	case "rectangle":
		if err := need(2); err != nil {
			return nil, err
		}
		sh = shapes.Rectangle(s.Name, pts[0], pts[1], col, style)
	case "bezier", "bspline":
		ctor := shapes.NewBezier
		if s.Kind == "bspline" {
			ctor = shapes.NewBSpline
		}
		cv, err := ctor(s.Name, pts, col)
		if err != nil {
			return nil, err
		}
		sh = cv.WithSteps(steps).WithStyle(style)
	case "cube":
		origin, err := vector(s.Origin)
		if err != nil {
			return nil, fmt.Errorf("%q origin: %w", s.Name, err)
		}
		if s.Size <= 0 {
			return nil, fmt.Errorf("%w: cube %q size %v", shapes.ErrInvalidShape, s.Name, s.Size)
		}
		sh = shapes.Cube(s.Name, origin, s.Size, col)
	case "object3d":
		edges := make([][2]int, len(s.Edges))
		for i, e := range s.Edges {
			if len(e) != 2 {
				return nil, fmt.Errorf("%w: object %q edge %d has %d indices", shapes.ErrInvalidShape, s.Name, i, len(e))
			}
			edges[i] = [2]int{e[0], e[1]}
		}
		o, err := shapes.NewObject3D(s.Name, pts, edges, col)
		if err != nil {
			return nil, err
		}
		sh = o
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", shapes.ErrInvalidShape, s.Kind)
	}
	return sh.WithAlgorithm(algo), nil
}

// color reads [r, g, b] or [r, g, b, a]. Without one the shape gets a
// stable color derived from its name.
func (s ShapeSpec) color() (color.RGBA, error) {
	if len(s.Color) == 0 {
		return shapes.ColorFor(s.Name), nil
	}
	if len(s.Color) != 3 && len(s.Color) != 4 {
		return color.RGBA{}, fmt.Errorf("%w: %q color needs 3 or 4 components", shapes.ErrInvalidShape, s.Name)
	}
	c := [4]uint8{0, 0, 0, 255}
	for i, v := range s.Color {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %q color component %d out of range", shapes.ErrInvalidShape, s.Name, v)
		}
		c[i] = uint8(v)
	}
	return color.RGBA{c[0], c[1], c[2], c[3]}, nil
}

// vector reads [x, y] or [x, y, z].
func vector(v []float64) (geom.Vec3, error) {
	switch len(v) {
	case 2:
		return geom.V2(v[0], v[1]), nil
	case 3:
		return geom.V3(v[0], v[1], v[2]), nil
	}
	return geom.Vec3{}, fmt.Errorf("%w: coordinate %v needs 2 or 3 components", shapes.ErrInvalidShape, v)
}

func vectors(vs [][]float64) ([]geom.Vec3, error) {
	out := make([]geom.Vec3, len(vs))
	for i, v := range vs {
		p, err := vector(v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// demoScene is shown when no config file is given.
func demoScene() []ShapeSpec {
	return []ShapeSpec{
		{Kind: "polygon", Name: "roof", Color: []int{230, 57, 70}, Style: "closed",
			Points: [][]float64{{200, 300}, {400, 300}, {300, 420}}},
		{Kind: "rectangle", Name: "house", Style: "filled",
			Points: [][]float64{{220, 120}, {380, 300}}},
		{Kind: "line", Name: "ground", Color: []int{42, 157, 143},
			Points: [][]float64{{-200, 120}, {1600, 120}}},
		{Kind: "point", Name: "sun", Color: []int{233, 196, 106},
			Points: [][]float64{{1000, 600}}},
		{Kind: "bezier", Name: "hill",
			Points: [][]float64{{500, 120}, {600, 400}, {800, 400}, {900, 120}}},
		{Kind: "bspline", Name: "river", Algorithm: "cohen-sutherland",
			Points: [][]float64{{0, 60}, {300, 20}, {600, 90}, {900, 30}, {1300, 80}}},
		{Kind: "cube", Name: "crate", Origin: []float64{1000, 150, 0}, Size: 120},
	}
}
