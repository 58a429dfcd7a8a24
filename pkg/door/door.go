// Package door derives a door's opening and swing from the room outline and a
// symbolic wall placement. Nothing here is stored: geometry is recomputed from
// the polygon on demand.
package door

import (
	"math"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
)

// SizeUnits is the door width and leaf length in physical room units.
const SizeUnits = 3.0

// Door is the symbolic door placement plus its pixel dimensions.
type Door struct {
	Side   geo.Side `json:"side"`
	Offset float64  `json:"offset"`
	Width  float64  `json:"width"`
	Leaf   float64  `json:"leaf"`
}

// New returns a door on side at offset, sized for the given px-per-unit scale.
func New(side geo.Side, offset, scale float64) Door {
	return Door{
		Side:   side,
		Offset: offset,
		Width:  SizeUnits * scale,
		Leaf:   SizeUnits * scale,
	}
}

// Geometry is the derived door: the opening cut into the wall, the swing leaf
// and the drag anchor.
type Geometry struct {
	GapStart  geo.Point2D `json:"gap_start"`
	GapEnd    geo.Point2D `json:"gap_end"`
	LeafStart geo.Point2D `json:"leaf_start"`
	LeafEnd   geo.Point2D `json:"leaf_end"`
	Anchor    geo.Point2D `json:"anchor"`
	Edge      int         `json:"edge"`
}

// Compute places the door on the polygon edge whose midpoint is closest to the
// midpoint of the requested side of the room rectangle. Matching by distance
// rather than by exact side tolerates non-rectangular rooms. The opening is
// centered on that edge midpoint and the leaf hangs from the gap start,
// perpendicular to the edge.
//
// The bool is false when the outline has fewer than 3 vertices; callers treat
// that as "no door".
func Compute(p geo.Polygon, d Door, room geo.Size) (Geometry, bool) {
	if p.IsEmpty() {
		return Geometry{}, false
	}
	target := d.Side.Anchor(room)

	bestDist := math.Inf(1)
	var g Geometry
	var a, b geo.Point2D
	for i := range p.Vertices {
		p1, p2 := p.Edge(i)
		mid := geo.MidPoint(p1, p2)
		if dist := mid.Distance(target); dist < bestDist {
			bestDist = dist
			g.Edge = i
			g.Anchor = mid
			a, b = p1, p2
		}
	}

	angle := b.Sub(a).Angle()
	half := d.Width / 2
	g.GapStart = g.Anchor.Polar(-half, angle)
	g.GapEnd = g.Anchor.Polar(half, angle)
	g.LeafStart = g.GapStart
	g.LeafEnd = g.GapStart.Polar(d.Leaf, angle-math.Pi/2)
	return g, true
}

// GapMidpoint returns the center of the door opening.
func (g Geometry) GapMidpoint() geo.Point2D {
	return geo.MidPoint(g.GapStart, g.GapEnd)
}

// Blocks reports whether a box falls inside the swing exclusion zone: the
// distance from the box center to the gap midpoint is less than the box's
// larger dimension. This is a circular approximation of the swing, not a
// swept-arc test.
func (g Geometry) Blocks(box geo.Rect) bool {
	return box.Center().Distance(g.GapMidpoint()) < math.Max(box.W, box.H)
}

// InSwing computes the door geometry and tests box against it. A room without
// a valid door never blocks anything.
func InSwing(box geo.Rect, p geo.Polygon, d Door, room geo.Size) bool {
	g, ok := Compute(p, d, room)
	if !ok {
		return false
	}
	return g.Blocks(box)
}
