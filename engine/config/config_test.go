package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/projection"
	"github.com/1siamBot/surrender/engine/shapes"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, projection.ModeParallel, c.Mode())
	assert.Equal(t, clip.LiangBarskyAlgorithm, c.Algorithm())

	list, err := c.BuildShapes()
	require.NoError(t, err)
	assert.Len(t, list, len(c.Scene))

	w, err := c.Window()
	require.NoError(t, err)
	assert.InDelta(t, 1280, w.Width(), 1e-9)
	vp, err := c.Viewport()
	require.NoError(t, err)
	assert.Equal(t, geom.V2(50, 50), vp.Min())
	assert.Equal(t, geom.V2(1230, 670), vp.Max())
}

func TestLoadEmptyKeepsDefaults(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverrides(t *testing.T) {
	doc := `
screen: {width: 800, height: 600, border: 20}
projection: {mode: perspective, distance: 500}
clipping: {algorithm: cs}
curves: {steps: 8}
scene:
  - {kind: polygon, name: roof, color: [255, 0, 0], style: closed, points: [[0, 0, 0], [100, 0, 0], [50, 80, 0]]}
  - {kind: cube, name: box, origin: [200, 200, 0], size: 100, algorithm: liang-barsky}
  - {kind: bezier, name: arc, points: [[0, 0], [10, 20], [20, 20], [30, 0]]}
  - {kind: object3d, name: tri, points: [[0, 0, 0], [1, 0, 0], [0, 1, 0]], edges: [[0, 1], [1, 2], [2, 0]]}
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 800, c.Screen.Width)
	assert.Equal(t, 1.1, c.Controls.ZoomFactor, "untouched sections keep defaults")
	assert.Equal(t, projection.ModePerspective, c.Mode())
	assert.Equal(t, clip.CohenSutherlandAlgorithm, c.Algorithm())

	list, err := c.BuildShapes()
	require.NoError(t, err)
	require.Len(t, list, 4)

	roof := list[0].(*shapes.Polygon)
	assert.Equal(t, shapes.Closed, roof.Style())
	assert.Equal(t, uint8(255), roof.Color().R)
	assert.Equal(t, uint8(255), roof.Color().A)
	assert.Equal(t, clip.CohenSutherlandAlgorithm, roof.Algorithm())

	assert.Equal(t, clip.LiangBarskyAlgorithm, list[1].Algorithm())
	assert.Len(t, list[1].Edges(), 12)

	arc := list[2].(*shapes.Curve)
	assert.Equal(t, 8, arc.Steps())
	assert.Equal(t, shapes.ColorFor("arc"), arc.Color())

	assert.Len(t, list[3].Edges(), 3)
}

func TestValidateReportsEverything(t *testing.T) {
	doc := `
screen: {width: 0, height: 600, border: 20}
controls: {zoom_factor: 0.5}
projection: {mode: fisheye}
scene:
  - {kind: line, name: short, points: [[0, 0]]}
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.GreaterOrEqual(t, len(multierr.Errors(err)), 4)
	assert.Contains(t, err.Error(), "scene[0]")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("screen: {widht: 10}\n"))
	assert.Error(t, err)
}

func TestShapeSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		spec ShapeSpec
	}{
		{"no name", ShapeSpec{Kind: "point", Points: [][]float64{{0, 0}}}},
		{"unknown kind", ShapeSpec{Kind: "blob", Name: "b"}},
		{"bad coordinate", ShapeSpec{Kind: "point", Name: "p", Points: [][]float64{{0}}}},
		{"bad color", ShapeSpec{Kind: "point", Name: "p", Color: []int{300, 0, 0}, Points: [][]float64{{0, 0}}}},
		{"bad style", ShapeSpec{Kind: "polygon", Name: "p", Style: "dotted", Points: [][]float64{{0, 0}}}},
		{"bezier count", ShapeSpec{Kind: "bezier", Name: "b", Points: [][]float64{{0, 0}, {1, 1}, {2, 2}}}},
		{"cube size", ShapeSpec{Kind: "cube", Name: "c", Origin: []float64{0, 0, 0}}},
		{"edge arity", ShapeSpec{Kind: "object3d", Name: "o", Points: [][]float64{{0, 0}}, Edges: [][]int{{0}}}},
		{"edge range", ShapeSpec{Kind: "object3d", Name: "o", Points: [][]float64{{0, 0}}, Edges: [][]int{{0, 3}}}},
		{"algorithm", ShapeSpec{Kind: "point", Name: "p", Algorithm: "fast", Points: [][]float64{{0, 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.spec.validate())
		})
	}
}

func TestLoadFileAndBuildScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  - {kind: point, name: p, points: [[1, 2]]}\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	s, err := c.BuildScene(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildScenePinsExplicitAlgorithms(t *testing.T) {
	doc := `
scene:
  - {kind: line, name: road, points: [[0, 0], [1, 1]]}
  - {kind: line, name: river, algorithm: cohen-sutherland, points: [[0, 0], [1, 1]]}
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	s, err := c.BuildScene(zap.NewNop())
	require.NoError(t, err)

	ids := s.IDs()
	require.Len(t, ids, 2)
	assert.False(t, s.Pinned(ids[0]))
	assert.True(t, s.Pinned(ids[1]))

	s.SetAlgorithmAll(clip.CohenSutherlandAlgorithm)
	s.SetAlgorithmAll(clip.LiangBarskyAlgorithm)
	river, _ := s.Get(ids[1])
	assert.Equal(t, clip.CohenSutherlandAlgorithm, river.Algorithm())
	road, _ := s.Get(ids[0])
	assert.Equal(t, clip.LiangBarskyAlgorithm, road.Algorithm())
}
