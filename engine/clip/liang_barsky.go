package clip

import (
	"math"

	"github.com/1siamBot/surrender/engine/geom"
)

// LiangBarsky clips p0-p1 against r parametrically. The result keeps the
// p0->p1 direction, and an endpoint that needs no clipping is returned as is.
func LiangBarsky(p0, p1 geom.Vec3, r geom.Rect) (Segment, bool) {
	d := p1.Sub(p0)

	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{
		p0.X - r.Min.X,
		r.Max.X - p0.X,
		p0.Y - r.Min.Y,
		r.Max.Y - p0.Y,
	}

	uEnter, uExit := 0.0, 1.0
	for k := 0; k < 4; k++ {
		switch {
		case p[k] == 0:
			// parallel to this boundary: outside the slab means outside r
			if q[k] < 0 {
				return Segment{}, false
			}
		case p[k] < 0:
			uEnter = math.Max(uEnter, q[k]/p[k])
		default:
			uExit = math.Min(uExit, q[k]/p[k])
		}
	}

	if uEnter > uExit {
		return Segment{}, false
	}

	a, b := p0, p1
	if uEnter != 0 {
		a = p0.Add(d.Scale(uEnter))
	}
	if uExit != 1 {
		b = p0.Add(d.Scale(uExit))
	}
	return Seg(a, b), true
}
