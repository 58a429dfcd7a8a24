package geo

import "math"

// Point2D is a position in room pixel space. X grows to the right and Y grows
// downward, matching the canvas the room is drawn on.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is a shorthand constructor for Point2D.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// Angle returns the angle of the vector from the positive X axis in radians.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Polar returns the point at distance r from p in direction angle.
func (p Point2D) Polar(r, angle float64) Point2D {
	return Point2D{p.X + r*math.Cos(angle), p.Y + r*math.Sin(angle)}
}

// Clamp returns p limited to [0,W]×[0,H].
func (p Point2D) Clamp(s Size) Point2D {
	return Point2D{
		X: math.Max(0, math.Min(s.W, p.X)),
		Y: math.Max(0, math.Min(s.H, p.Y)),
	}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point2D) Point2D {
	return p.Lerp(q, 0.5)
}

// Size is a width/height pair in pixels.
type Size struct {
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Sz is a shorthand constructor for Size.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Center returns the midpoint of the [0,W]×[0,H] rectangle.
func (s Size) Center() Point2D {
	return Point2D{s.W / 2, s.H / 2}
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// RectAt builds a Rect from a top-left position and a size.
func RectAt(p Point2D, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Min returns the top-left corner.
func (r Rect) Min() Point2D {
	return Point2D{r.X, r.Y}
}

// Center returns the center of the box.
func (r Rect) Center() Point2D {
	return Point2D{r.X + r.W/2, r.Y + r.H/2}
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Point2D {
	return [4]Point2D{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}
