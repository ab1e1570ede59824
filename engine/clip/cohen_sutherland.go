package clip

import "github.com/1siamBot/surrender/engine/geom"

// candidate is an intersection of the segment's line with one boundary.
type candidate struct {
	p  geom.Vec3
	ok bool
}

// CohenSutherland clips p0-p1 against r. It returns false when the segment
// lies wholly outside.
//
// When one endpoint is inside, the outside endpoint's bits are tried in the
// order LEFT, RIGHT, UP, BOTTOM and the result is [inside, intersection].
// When both are outside, the boundary intersections are scanned in the order
// left, right, up, down and the first two inside r are returned. The order
// of the returned points is not normalized to p0->p1.
func CohenSutherland(p0, p1 geom.Vec3, r geom.Rect) (Segment, bool) {
	c0 := Code(p0, r)
	c1 := Code(p1, r)

	if c0.Inside() && c1.Inside() {
		return Seg(p0, p1), true
	}
	if c0&c1 != 0 {
		return Segment{}, false
	}

	left, right, up, down := intersections(p0, p1, r)

	switch {
	case c0.Inside():
		if p, ok := firstCrossing(c1, left, right, up, down, r); ok {
			return Seg(p0, p), true
		}
	case c1.Inside():
		if p, ok := firstCrossing(c0, left, right, up, down, r); ok {
			return Seg(p1, p), true
		}
	}

	var found []geom.Vec3
	for _, c := range [4]candidate{left, right, up, down} {
		if c.ok && Code(c.p, r).Inside() {
			found = append(found, c.p)
		}
		if len(found) == 2 {
			return Seg(found[0], found[1]), true
		}
	}
	return Segment{}, false
}

func firstCrossing(outside Outcode, left, right, up, down candidate, r geom.Rect) (geom.Vec3, bool) {
	order := [4]struct {
		bit Outcode
		c   candidate
	}{
		{Left, left},
		{Right, right},
		{Up, up},
		{Bottom, down},
	}
	for _, o := range order {
		if outside&o.bit != 0 && o.c.ok && Code(o.c.p, r).Inside() {
			return o.c.p, true
		}
	}
	return geom.Vec3{}, false
}

// intersections returns where the line through p0 and p1 meets the four
// boundary lines of r. A vertical segment has no left/right intersection and
// a horizontal one has no up/down intersection.
func intersections(p0, p1 geom.Vec3, r geom.Rect) (left, right, up, down candidate) {
	d := p1.Sub(p0)

	if d.X != 0 {
		left = candidate{p0.Lerp(p1, (r.Min.X-p0.X)/d.X), true}
		left.p.X = r.Min.X
		right = candidate{p0.Lerp(p1, (r.Max.X-p0.X)/d.X), true}
		right.p.X = r.Max.X
	}
	if d.Y != 0 {
		up = candidate{p0.Lerp(p1, (r.Max.Y-p0.Y)/d.Y), true}
		up.p.Y = r.Max.Y
		down = candidate{p0.Lerp(p1, (r.Min.Y-p0.Y)/d.Y), true}
		down.p.Y = r.Min.Y
	}
	return
}
