package geo

import "math"

// MinVertices is the smallest vertex count a room outline may have.
const MinVertices = 3

const boundaryEpsilon = 1e-9

// Polygon is a closed room outline defined by its vertices in order. The last
// vertex connects back to the first. Simplicity is assumed, not enforced.
//
// Edit operations never modify the receiver; they return a new Polygon.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// RectPolygon returns the clockwise rectangle [0,W]×[0,H].
func RectPolygon(s Size) Polygon {
	return NewPolygon(Pt(0, 0), Pt(s.W, 0), Pt(s.W, s.H), Pt(0, s.H))
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < MinVertices
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := make([]Point2D, len(p.Vertices))
	copy(out, p.Vertices)
	return Polygon{Vertices: out}
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point2D, Point2D) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point2D, Point2D) {
	if len(p.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		minP.X = math.Min(minP.X, v.X)
		minP.Y = math.Min(minP.Y, v.Y)
		maxP.X = math.Max(maxP.X, v.X)
		maxP.Y = math.Max(maxP.Y, v.Y)
	}
	return minP, maxP
}

// ScaleTo maps the polygon's bounding box onto [0,targetW]×[0,targetH] with
// independent X and Y factors. The aspect ratio is not preserved: the result
// always fills the target rectangle. A zero source extent is treated as 1.
func (p Polygon) ScaleTo(targetW, targetH float64) Polygon {
	if len(p.Vertices) == 0 {
		return Polygon{}
	}
	minP, maxP := p.BoundingBox()
	oldW := maxP.X - minP.X
	if oldW == 0 {
		oldW = 1
	}
	oldH := maxP.Y - minP.Y
	if oldH == 0 {
		oldH = 1
	}
	sx := targetW / oldW
	sy := targetH / oldH

	out := make([]Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = Point2D{(v.X - minP.X) * sx, (v.Y - minP.Y) * sy}
	}
	return Polygon{Vertices: out}
}

// Contains is the ray-casting parity test: a horizontal ray from pt crosses
// an odd number of edges. The test is half-open, so on an axis-aligned room
// the top and left walls count as inside and the bottom and right walls do
// not. A horizontal edge would divide by zero; its divisor is replaced by 1,
// which is an approximation rather than an exact test.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < MinVertices {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		dy := vj.Y - vi.Y
		if dy == 0 {
			dy = 1
		}
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/dy+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// OnBoundary reports whether pt lies on one of the polygon's edges. Contains
// does not consult it.
func (p Polygon) OnBoundary(pt Point2D) bool {
	for i := range p.Vertices {
		a, b := p.Edge(i)
		if onSegment(a, b, pt) {
			return true
		}
	}
	return false
}

func onSegment(a, b, pt Point2D) bool {
	ab := b.Sub(a)
	ap := pt.Sub(a)
	eps := boundaryEpsilon * math.Max(1, ab.Length())
	if math.Abs(ab.X*ap.Y-ab.Y*ap.X) > eps {
		return false
	}
	dot := ab.X*ap.X + ab.Y*ap.Y
	return dot >= -eps && dot <= ab.X*ab.X+ab.Y*ab.Y+eps
}

// ContainsBox reports whether all four corners of r are inside the polygon.
// For a non-convex outline an edge can still cut through the box interior;
// only the corners are tested.
func (p Polygon) ContainsBox(r Rect) bool {
	for _, c := range r.Corners() {
		if !p.Contains(c) {
			return false
		}
	}
	return true
}

// MoveVertex returns a copy with vertex i moved to pt clamped into the room
// rectangle. An out-of-range index returns an unchanged copy.
func (p Polygon) MoveVertex(i int, pt Point2D, room Size) Polygon {
	out := p.Clone()
	if i < 0 || i >= len(out.Vertices) {
		return out
	}
	out.Vertices[i] = pt.Clamp(room)
	return out
}

// InsertMidpoint returns a copy with the midpoint of edge (i, i+1) inserted
// directly after vertex i.
func (p Polygon) InsertMidpoint(i int) Polygon {
	n := len(p.Vertices)
	if i < 0 || i >= n {
		return p.Clone()
	}
	a, b := p.Edge(i)

	out := make([]Point2D, 0, n+1)
	out = append(out, p.Vertices[:i+1]...)
	out = append(out, MidPoint(a, b))
	out = append(out, p.Vertices[i+1:]...)
	return Polygon{Vertices: out}
}

// RemoveVertex returns a copy without vertex i. A triangle is the smallest
// room, so polygons with 3 or fewer vertices are returned unchanged.
func (p Polygon) RemoveVertex(i int) Polygon {
	n := len(p.Vertices)
	if n <= MinVertices || i < 0 || i >= n {
		return p.Clone()
	}
	out := make([]Point2D, 0, n-1)
	out = append(out, p.Vertices[:i]...)
	out = append(out, p.Vertices[i+1:]...)
	return Polygon{Vertices: out}
}

// Pairs returns the vertices as [x, y] pairs for JSON consumers.
func (p Polygon) Pairs() [][2]float64 {
	out := make([][2]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = [2]float64{v.X, v.Y}
	}
	return out
}

// FromPairs builds a polygon from [x, y] pairs.
func FromPairs(pairs [][2]float64) Polygon {
	pts := make([]Point2D, len(pairs))
	for i, pr := range pairs {
		pts[i] = Point2D{pr[0], pr[1]}
	}
	return Polygon{Vertices: pts}
}
