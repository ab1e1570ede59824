package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/surrender/engine/scene"
	"github.com/1siamBot/surrender/engine/shapes"
)

// ShapeRenderer draws scene output onto an ebiten image
type ShapeRenderer struct {
	LineWidth  float32
	PointSize  float32
	Background color.RGBA
	Antialias  bool

	white *ebiten.Image
}

// NewShapeRenderer creates a renderer with one-pixel antialiased lines
func NewShapeRenderer() *ShapeRenderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &ShapeRenderer{
		LineWidth:  1,
		PointSize:  4,
		Background: color.RGBA{20, 20, 28, 255},
		Antialias:  true,
		white:      white,
	}
}

// DrawAll clears the screen and draws every drawable in order
func (r *ShapeRenderer) DrawAll(screen *ebiten.Image, ds []scene.Drawable) {
	screen.Fill(r.Background)
	for _, d := range ds {
		r.Draw(screen, d)
	}
}

// Draw draws one drawable. Coordinates are already in screen space.
func (r *ShapeRenderer) Draw(screen *ebiten.Image, d scene.Drawable) {
	switch {
	case d.Filled:
		r.fill(screen, d)
	case d.Kind == shapes.KindPoint:
		half := r.PointSize / 2
		for _, p := range d.Points {
			vector.DrawFilledRect(screen, float32(p.X)-half, float32(p.Y)-half, r.PointSize, r.PointSize, d.Color, false)
		}
	}
	for _, s := range d.Segments {
		vector.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y),
			r.LineWidth, d.Color, r.Antialias)
	}
}

func (r *ShapeRenderer) fill(screen *ebiten.Image, d scene.Drawable) {
	if len(d.Points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(d.Points[0].X), float32(d.Points[0].Y))
	for _, p := range d.Points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	clr := d.Color
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: r.Antialias})
}
