package clip

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/surrender/engine/geom"
)

var box = geom.NewRect(0, 0, 10, 10)

var algorithms = map[string]func(p0, p1 geom.Vec3, r geom.Rect) (Segment, bool){
	"cohen-sutherland": CohenSutherland,
	"liang-barsky":     LiangBarsky,
}

func TestCode(t *testing.T) {
	tests := []struct {
		p    geom.Vec3
		want Outcode
	}{
		{geom.V2(5, 5), 0},
		{geom.V2(0, 0), 0},
		{geom.V2(10, 10), 0},
		{geom.V2(0, 10), 0},
		{geom.V2(-1, 5), Left},
		{geom.V2(11, 5), Right},
		{geom.V2(5, -1), Bottom},
		{geom.V2(5, 11), Up},
		{geom.V2(-1, -1), Left | Bottom},
		{geom.V2(11, 11), Right | Up},
		{geom.V2(-1, 11), Left | Up},
		{geom.V2(11, -1), Right | Bottom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.p, box), "point %v", tt.p)
	}
}

func TestCodeInsideIffWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := geom.V2(rng.Float64()*30-10, rng.Float64()*30-10)
		within := p.X >= 0 && p.X <= 10 && p.Y >= 0 && p.Y <= 10
		assert.Equal(t, within, Code(p, box).Inside())
		assert.Equal(t, within, Point(p, box))

		c := Code(p, box)
		assert.False(t, c&Up != 0 && c&Bottom != 0)
		assert.False(t, c&Left != 0 && c&Right != 0)
	}
}

func TestInsideSegmentsAreUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for name, fn := range algorithms {
		for i := 0; i < 200; i++ {
			p0 := geom.V2(rng.Float64()*10, rng.Float64()*10)
			p1 := geom.V2(rng.Float64()*10, rng.Float64()*10)
			got, ok := fn(p0, p1, box)
			require.True(t, ok, name)
			assert.Equal(t, Seg(p0, p1), got, name)
		}
	}
}

func TestSharedOutsideBitRejects(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for name, fn := range algorithms {
		_, ok := fn(geom.V2(-5, -5), geom.V2(-1, -1), box)
		assert.False(t, ok, name)

		for i := 0; i < 200; i++ {
			p0 := geom.V2(rng.Float64()*40-15, rng.Float64()*40-15)
			p1 := geom.V2(rng.Float64()*40-15, rng.Float64()*40-15)
			if Code(p0, box)&Code(p1, box) == 0 {
				continue
			}
			_, ok := fn(p0, p1, box)
			assert.False(t, ok, "%s %v %v", name, p0, p1)
		}
	}
}

func TestCohenSutherlandHorizontalCrossing(t *testing.T) {
	got, ok := CohenSutherland(geom.V2(-5, 5), geom.V2(15, 5), box)
	require.True(t, ok)
	assert.Equal(t, Seg(geom.V2(0, 5), geom.V2(10, 5)), got)
}

func TestCohenSutherlandVertical(t *testing.T) {
	got, ok := CohenSutherland(geom.V2(5, -5), geom.V2(5, 15), box)
	require.True(t, ok)
	assert.Equal(t, Seg(geom.V2(5, 10), geom.V2(5, 0)), got)

	got, ok = CohenSutherland(geom.V2(5, 5), geom.V2(5, 15), box)
	require.True(t, ok)
	assert.Equal(t, Seg(geom.V2(5, 5), geom.V2(5, 10)), got)

	_, ok = CohenSutherland(geom.V2(12, -5), geom.V2(12, 15), box)
	assert.False(t, ok)
}

func TestCohenSutherlandOneInsideKeepsInsidePointFirst(t *testing.T) {
	got, ok := CohenSutherland(geom.V2(15, 5), geom.V2(5, 5), box)
	require.True(t, ok)
	assert.Equal(t, Seg(geom.V2(5, 5), geom.V2(10, 5)), got)
}

func TestCohenSutherlandCornerPriority(t *testing.T) {
	// p1 is LEFT|UP; the left boundary is tried first and is inside.
	got, ok := CohenSutherland(geom.V2(5, 5), geom.V2(-5, 12), box)
	require.True(t, ok)
	assert.Equal(t, geom.V2(5, 5), got.A)
	assert.True(t, got.B.ApproxEqual(geom.V2(0, 8.5), 1e-9), "%v", got.B)

	// The left intersection is above the window, so the top one is used.
	got, ok = CohenSutherland(geom.V2(5, 5), geom.V2(-5, 20), box)
	require.True(t, ok)
	assert.Equal(t, geom.V2(5, 5), got.A)
	assert.Equal(t, 10.0, got.B.Y)
	assert.InDelta(t, 5-10.0/3, got.B.X, 1e-9)
}

func TestCohenSutherlandDiagonalMiss(t *testing.T) {
	// LEFT then UP, passing outside the top-left corner.
	_, ok := CohenSutherland(geom.V2(-2, 9), geom.V2(1, 13), box)
	assert.False(t, ok)
}

func TestLiangBarskyVertical(t *testing.T) {
	got, ok := LiangBarsky(geom.V2(5, -5), geom.V2(5, 15), box)
	require.True(t, ok)
	assert.Equal(t, Seg(geom.V2(5, 0), geom.V2(5, 10)), got)
}

func TestLiangBarskyKeepsDirectionAndEndpoints(t *testing.T) {
	p0 := geom.V2(5, 5)
	p1 := geom.V2(20, 5)
	got, ok := LiangBarsky(p0, p1, box)
	require.True(t, ok)
	assert.Equal(t, p0, got.A)
	assert.True(t, got.B.ApproxEqual(geom.V2(10, 5), 1e-9), "%v", got.B)

	got, ok = LiangBarsky(p1, p0, box)
	require.True(t, ok)
	assert.True(t, got.A.ApproxEqual(geom.V2(10, 5), 1e-9), "%v", got.A)
	assert.Equal(t, p0, got.B)
}

func TestLiangBarskyRejectsParallelOutsideSlab(t *testing.T) {
	tests := []struct{ p0, p1 geom.Vec3 }{
		{geom.V2(-3, -5), geom.V2(-3, 15)},
		{geom.V2(13, -5), geom.V2(13, 15)},
		{geom.V2(-5, -2), geom.V2(15, -2)},
		{geom.V2(-5, 12), geom.V2(15, 12)},
	}
	for _, tt := range tests {
		_, ok := LiangBarsky(tt.p0, tt.p1, box)
		assert.False(t, ok, "%v %v", tt.p0, tt.p1)
	}
}

func TestLiangBarskyInterpolatesZ(t *testing.T) {
	got, ok := LiangBarsky(geom.V3(-10, 5, 0), geom.V3(10, 5, 4), box)
	require.True(t, ok)
	assert.Equal(t, geom.V3(0, 5, 2), got.A)
}

// Segments that cross exactly one boundary have the same visible piece under
// both algorithms.
func TestAlgorithmsAgreeOnSingleCrossings(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	checked := 0
	for checked < 300 {
		p0 := geom.V2(rng.Float64()*10, rng.Float64()*10)
		p1 := geom.V2(rng.Float64()*30-10, rng.Float64()*30-10)
		c := Code(p1, box)
		if c != Left && c != Right && c != Up && c != Bottom {
			continue
		}
		checked++

		cs, ok := CohenSutherland(p0, p1, box)
		require.True(t, ok)
		lb, ok := LiangBarsky(p0, p1, box)
		require.True(t, ok)
		assert.True(t, cs.ApproxEqual(lb, 1e-9), "cs=%v lb=%v", cs, lb)
	}
}

func TestAlgorithmPolicy(t *testing.T) {
	a, err := ParseAlgorithm("Cohen-Sutherland")
	require.NoError(t, err)
	assert.Equal(t, CohenSutherlandAlgorithm, a)

	a, err = ParseAlgorithm("lb")
	require.NoError(t, err)
	assert.Equal(t, LiangBarskyAlgorithm, a)

	_, err = ParseAlgorithm("nicholl-lee-nicholl")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	assert.Equal(t, CohenSutherlandAlgorithm, LiangBarskyAlgorithm.Next())
	assert.Equal(t, LiangBarskyAlgorithm, CohenSutherlandAlgorithm.Next())

	var parsed Algorithm
	require.NoError(t, parsed.UnmarshalText([]byte("cohen-sutherland")))
	text, err := parsed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cohen-sutherland", string(text))

	seg, ok := CohenSutherlandAlgorithm.Clip(geom.V2(-5, 5), geom.V2(15, 5), box)
	require.True(t, ok)
	assert.Equal(t, geom.V2(0, 5), seg.A)
}

func TestPolygonClipping(t *testing.T) {
	inside := []geom.Vec3{geom.V2(1, 1), geom.V2(9, 1), geom.V2(5, 9)}
	assert.Equal(t, inside, Polygon(inside, box))

	outside := []geom.Vec3{geom.V2(20, 20), geom.V2(30, 20), geom.V2(25, 30)}
	assert.Empty(t, Polygon(outside, box))

	big := []geom.Vec3{geom.V2(-5, -5), geom.V2(15, -5), geom.V2(15, 15), geom.V2(-5, 15)}
	got := Polygon(big, box)
	require.Len(t, got, 4)
	for _, p := range got {
		assert.True(t, box.Contains(p), "%v", p)
	}

	half := []geom.Vec3{geom.V2(5, 2), geom.V2(15, 2), geom.V2(15, 8), geom.V2(5, 8)}
	got = Polygon(half, box)
	require.Len(t, got, 4)
	for _, p := range got {
		assert.True(t, box.Contains(p), "%v", p)
		assert.GreaterOrEqual(t, p.X, 5.0)
	}
}
