// Package raster draws scene output into in-memory images for headless
// snapshots.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/geom"
	"github.com/1siamBot/surrender/engine/scene"
	"github.com/1siamBot/surrender/engine/shapes"
)

// Canvas is an RGBA image with an antialiasing rasterizer.
type Canvas struct {
	LineWidth float64
	PointSize float64

	img *image.RGBA
	z   *vector.Rasterizer
}

func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over
	return &Canvas{LineWidth: 1.5, PointSize: 4, img: img, z: z}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) DrawAll(ds []scene.Drawable) {
	for _, d := range ds {
		c.Draw(d)
	}
}

// Draw rasterizes one drawable; coordinates are pixels.
func (c *Canvas) Draw(d scene.Drawable) {
	switch {
	case d.Filled:
		c.fill(d.Points, d.Color)
	case d.Kind == shapes.KindPoint:
		for _, p := range d.Points {
			c.dot(p, d.Color)
		}
	}
	for _, s := range d.Segments {
		c.stroke(s, d.Color)
	}
}

func (c *Canvas) fill(pts []geom.Vec3, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	c.begin()
	c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.flush(col)
}

func (c *Canvas) dot(p geom.Vec3, col color.RGBA) {
	h := c.PointSize / 2
	c.fill([]geom.Vec3{
		geom.V2(p.X-h, p.Y-h),
		geom.V2(p.X+h, p.Y-h),
		geom.V2(p.X+h, p.Y+h),
		geom.V2(p.X-h, p.Y+h),
	}, col)
}

// stroke fills the rectangle of LineWidth around the segment.
func (c *Canvas) stroke(s clip.Segment, col color.RGBA) {
	dir := s.B.Sub(s.A)
	if dir.IsZero() {
		c.dot(s.A, col)
		return
	}
	n := geom.V2(-dir.Y, dir.X).Normalize().Scale(c.LineWidth / 2)
	c.fill([]geom.Vec3{s.A.Add(n), s.B.Add(n), s.B.Sub(n), s.A.Sub(n)}, col)
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) flush(col color.RGBA) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Scale resamples img to width x height with Catmull-Rom filtering.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// ScaleBy resamples img by factor, keeping at least one pixel per side.
func ScaleBy(img image.Image, factor float64) *image.RGBA {
	b := img.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*factor)))
	h := max(1, int(math.Round(float64(b.Dy())*factor)))
	return Scale(img, w, h)
}

func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
