package geo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// EdgeSnap is the closest point on a polygon edge to a query point.
type EdgeSnap struct {
	Edge     int     `json:"edge"`
	T        float64 `json:"t"`
	Point    Point2D `json:"point"`
	Distance float64 `json:"distance"`
}

func vec(p Point2D) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// NearestEdge projects pt onto every edge, clamping the projection parameter
// to the segment, and returns the edge with the smallest perpendicular
// distance. Zero-length edges use a squared length of 1. The bool is false for
// an outline with fewer than 3 vertices.
func (p Polygon) NearestEdge(pt Point2D) (EdgeSnap, bool) {
	if p.IsEmpty() {
		return EdgeSnap{}, false
	}
	q := vec(pt)
	best := EdgeSnap{Distance: math.Inf(1)}
	for i := range p.Vertices {
		a, b := p.Edge(i)
		va := vec(a)
		v := r2.Sub(vec(b), va)
		len2 := math.Max(r2.Norm2(v), 1)

		t := r2.Dot(r2.Sub(q, va), v) / len2
		t = math.Max(0, math.Min(1, t))
		proj := r2.Add(va, r2.Scale(t, v))

		if d := r2.Norm(r2.Sub(q, proj)); d < best.Distance {
			best = EdgeSnap{Edge: i, T: t, Point: Point2D{proj.X, proj.Y}, Distance: d}
		}
	}
	return best, true
}

// ClassifySide reduces the snapped edge to a canonical wall. A mostly
// horizontal edge is top or bottom depending on which half of the room the
// projected point lies in; a mostly vertical edge is left or right. Rooms far
// from rectangular classify imprecisely.
func ClassifySide(p Polygon, snap EdgeSnap, room Size) Side {
	a, b := p.Edge(snap.Edge)
	dx := b.X - a.X
	dy := b.Y - a.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if snap.Point.Y < room.H/2 {
			return SideTop
		}
		return SideBottom
	}
	if snap.Point.X < room.W/2 {
		return SideLeft
	}
	return SideRight
}

// SnapToPolygon converts an arbitrary point into a wall placement using the
// nearest polygon edge. The offset is the projection parameter along that edge.
func SnapToPolygon(pt Point2D, p Polygon, room Size) (WallSnap, bool) {
	snap, ok := p.NearestEdge(pt)
	if !ok {
		return WallSnap{}, false
	}
	return WallSnap{Side: ClassifySide(p, snap, room), Offset: snap.T}, true
}

// SnapToWall is the rectangle-only fallback: it picks the wall closest to an
// object at pt with size obj and normalizes its position along that wall.
func SnapToWall(pt Point2D, obj Size, room Size) WallSnap {
	dists := []struct {
		side Side
		dist float64
	}{
		{SideTop, pt.Y},
		{SideBottom, room.H - pt.Y - obj.H},
		{SideLeft, pt.X},
		{SideRight, room.W - pt.X - obj.W},
	}
	sort.SliceStable(dists, func(i, j int) bool { return dists[i].dist < dists[j].dist })
	side := dists[0].side

	var offset float64
	if side.Horizontal() {
		offset = pt.X / nonZero(room.W-obj.W)
	} else {
		offset = pt.Y / nonZero(room.H-obj.H)
	}
	return WallSnap{Side: side, Offset: math.Max(0, math.Min(1, offset))}
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
