package clip

import "github.com/1siamBot/surrender/engine/geom"

type edge struct {
	inside    func(p geom.Vec3) bool
	intersect func(a, b geom.Vec3) geom.Vec3
}

// Polygon clips the closed polygon pts against r (Sutherland-Hodgman).
// The result is empty when nothing of the polygon is left inside r.
func Polygon(pts []geom.Vec3, r geom.Rect) []geom.Vec3 {
	edges := [4]edge{
		{
			inside: func(p geom.Vec3) bool { return p.X >= r.Min.X },
			intersect: func(a, b geom.Vec3) geom.Vec3 {
				p := a.Lerp(b, (r.Min.X-a.X)/(b.X-a.X))
				p.X = r.Min.X
				return p
			},
		},
		{
			inside: func(p geom.Vec3) bool { return p.X <= r.Max.X },
			intersect: func(a, b geom.Vec3) geom.Vec3 {
				p := a.Lerp(b, (r.Max.X-a.X)/(b.X-a.X))
				p.X = r.Max.X
				return p
			},
		},
		{
			inside: func(p geom.Vec3) bool { return p.Y <= r.Max.Y },
			intersect: func(a, b geom.Vec3) geom.Vec3 {
				p := a.Lerp(b, (r.Max.Y-a.Y)/(b.Y-a.Y))
				p.Y = r.Max.Y
				return p
			},
		},
		{
			inside: func(p geom.Vec3) bool { return p.Y >= r.Min.Y },
			intersect: func(a, b geom.Vec3) geom.Vec3 {
				p := a.Lerp(b, (r.Min.Y-a.Y)/(b.Y-a.Y))
				p.Y = r.Min.Y
				return p
			},
		},
	}

	out := append([]geom.Vec3(nil), pts...)
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]geom.Vec3, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			curIn, prevIn := e.inside(cur), e.inside(prev)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, e.intersect(prev, cur), cur)
			case prevIn:
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
