// Package term draws scene output on a tcell character grid. One cell is
// one viewport unit.
package term

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/control"
	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/scene"
	"github.com/1siamBot/surrender/engine/shapes"
)

const (
	PointRune = 'o'
	FillRune  = '#'
)

type Drawer struct {
	Screen tcell.Screen
}

func NewDrawer(s tcell.Screen) *Drawer {
	return &Drawer{Screen: s}
}

func (d *Drawer) DrawAll(ds []scene.Drawable) {
	for _, dr := range ds {
		d.Draw(dr)
	}
}

func (d *Drawer) Draw(dr scene.Drawable) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(dr.Color.R), int32(dr.Color.G), int32(dr.Color.B)))
	switch {
	case dr.Filled:
		for _, c := range FillCells(dr.Points) {
			d.Screen.SetContent(c.X, c.Y, FillRune, nil, style)
		}
	case dr.Kind == shapes.KindPoint:
		for _, p := range dr.Points {
			c := cell(p)
			d.Screen.SetContent(c.X, c.Y, PointRune, nil, style)
		}
	}
	for _, s := range dr.Segments {
		r := LineRune(s)
		for _, c := range Line(cell(s.A), cell(s.B)) {
			d.Screen.SetContent(c.X, c.Y, r, nil, style)
		}
	}
}

// DrawText writes str starting at (x, y)
func (d *Drawer) DrawText(x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		d.Screen.SetContent(x+i, y, r, nil, style)
	}
}

func cell(p geom.Vec3) image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Line returns the cells of the Bresenham line from a to b, both included.
func Line(a, b image.Point) []image.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	e := dx + dy

	out := make([]image.Point, 0, max(dx, -dy)+1)
	for p := a; ; {
		out = append(out, p)
		if p == b {
			return out
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// LineRune picks a glyph that follows the slope of s in screen space.
func LineRune(s clip.Segment) rune {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	switch {
	case math.Abs(dy) < math.Abs(dx)/2:
		return '-'
	case math.Abs(dx) < math.Abs(dy)/2:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	}
	return '/'
}

// FillCells returns the cells whose centers lie inside the polygon.
func FillCells(pts []geom.Vec3) []image.Point {
	if len(pts) < 3 {
		return nil
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = geom.V2(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = geom.V2(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	var out []image.Point
	for y := int(math.Floor(lo.Y)); y <= int(math.Ceil(hi.Y)); y++ {
		for x := int(math.Floor(lo.X)); x <= int(math.Ceil(hi.X)); x++ {
			if inside(pts, float64(x)+0.5, float64(y)+0.5) {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}

// inside is the even-odd crossing test.
func inside(pts []geom.Vec3, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

// KeyCommand translates a terminal key event into a viewer command.
func KeyCommand(ev *tcell.EventKey) control.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return control.CmdQuit
	case tcell.KeyUp:
		return control.CmdMoveUp
	case tcell.KeyDown:
		return control.CmdMoveDown
	case tcell.KeyLeft:
		return control.CmdMoveLeft
	case tcell.KeyRight:
		return control.CmdMoveRight
	case tcell.KeyRune:
		return control.RuneBindings[ev.Rune()]
	}
	return control.CmdNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
