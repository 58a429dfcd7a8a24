package door

import (
	"math"
	"testing"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feet = 15.0

func room() geo.Size { return geo.Sz(600, 375) }

func TestNewDoorDimensions(t *testing.T) {
	d := New(geo.SideTop, 0.5, feet)
	assert.Equal(t, 45.0, d.Width)
	assert.Equal(t, 45.0, d.Leaf)
}

func TestComputeTopDoor(t *testing.T) {
	poly := geo.RectPolygon(room())
	g, ok := Compute(poly, New(geo.SideTop, 0.5, feet), room())
	require.True(t, ok)

	assert.Equal(t, 0, g.Edge)
	assert.Equal(t, geo.Pt(300, 0), g.Anchor)
	assert.InDelta(t, 277.5, g.GapStart.X, 1e-9)
	assert.InDelta(t, 322.5, g.GapEnd.X, 1e-9)
	assert.InDelta(t, 0, g.GapStart.Y, 1e-9)
	assert.InDelta(t, 0, g.GapEnd.Y, 1e-9)
	assert.InDelta(t, 300, g.GapMidpoint().X, 1e-9)
}

func TestComputePicksNearestEdgePerSide(t *testing.T) {
	poly := geo.RectPolygon(room())
	tests := []struct {
		side   geo.Side
		edge   int
		anchor geo.Point2D
	}{
		{geo.SideTop, 0, geo.Pt(300, 0)},
		{geo.SideRight, 1, geo.Pt(600, 187.5)},
		{geo.SideBottom, 2, geo.Pt(300, 375)},
		{geo.SideLeft, 3, geo.Pt(0, 187.5)},
	}
	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			g, ok := Compute(poly, New(tt.side, 0.5, feet), room())
			require.True(t, ok)
			assert.Equal(t, tt.edge, g.Edge)
			assert.Equal(t, tt.anchor, g.Anchor)
			assert.InDelta(t, 45, g.GapStart.Distance(g.GapEnd), 1e-9)
		})
	}
}

func TestLeafIsPerpendicularToGap(t *testing.T) {
	// Irregular room: the nearest edge to the top anchor is slanted.
	poly := geo.NewPolygon(geo.Pt(0, 40), geo.Pt(600, 0), geo.Pt(600, 375), geo.Pt(0, 375))
	g, ok := Compute(poly, New(geo.SideTop, 0.5, feet), room())
	require.True(t, ok)

	gap := g.GapEnd.Sub(g.GapStart)
	leaf := g.LeafEnd.Sub(g.LeafStart)
	dot := gap.X*leaf.X + gap.Y*leaf.Y
	assert.InDelta(t, 0, dot, 1e-6)
	assert.InDelta(t, 45, leaf.Length(), 1e-9)
	assert.Equal(t, g.GapStart, g.LeafStart)
	assert.Equal(t, geo.Pt(300, 20), g.Anchor)
}

func TestLeafDirectionOnTopWall(t *testing.T) {
	g, ok := Compute(geo.RectPolygon(room()), New(geo.SideTop, 0.5, feet), room())
	require.True(t, ok)
	assert.InDelta(t, 277.5, g.LeafEnd.X, 1e-9)
	assert.InDelta(t, -45, g.LeafEnd.Y, 1e-9)
}

func TestComputeInvalidPolygon(t *testing.T) {
	_, ok := Compute(geo.NewPolygon(geo.Pt(0, 0), geo.Pt(1, 1)), New(geo.SideTop, 0.5, feet), room())
	assert.False(t, ok)
}

func TestBlocksCircularApproximation(t *testing.T) {
	g, ok := Compute(geo.RectPolygon(room()), New(geo.SideTop, 0.5, feet), room())
	require.True(t, ok)

	assert.True(t, g.Blocks(geo.Rect{X: 285, Y: 0, W: 30, H: 60}))
	assert.False(t, g.Blocks(geo.Rect{X: 240, Y: 157.5, W: 30, H: 60}))

	// The exclusion radius is max(w,h), so it grows with the box, not the
	// door: a box whose center is 59 px away is blocked, one at 61 is not.
	assert.True(t, g.Blocks(geo.Rect{X: 300 - 15 + 59, Y: -30, W: 30, H: 60}))
	assert.False(t, g.Blocks(geo.Rect{X: 300 - 15 + 61, Y: -30, W: 30, H: 60}))
}

func TestInSwingWithoutDoor(t *testing.T) {
	box := geo.Rect{X: 0, Y: 0, W: 600, H: 375}
	assert.False(t, InSwing(box, geo.Polygon{}, New(geo.SideTop, 0.5, feet), room()))
	assert.True(t, InSwing(box, geo.RectPolygon(room()), New(geo.SideTop, 0.5, feet), room()))
}

func TestGapMidpointIndependentOfOffset(t *testing.T) {
	poly := geo.RectPolygon(room())
	a, _ := Compute(poly, New(geo.SideLeft, 0.1, feet), room())
	b, _ := Compute(poly, New(geo.SideLeft, 0.9, feet), room())
	assert.Equal(t, a.GapMidpoint(), b.GapMidpoint())
	assert.False(t, math.IsNaN(a.GapMidpoint().Y))
}
