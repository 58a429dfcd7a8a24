package geo

import "fmt"

// Side is one of the four canonical walls of the room rectangle. Doors and AC
// units are placed against a Side regardless of the polygon's literal shape.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Sides lists the walls in a stable order.
var Sides = []Side{SideTop, SideBottom, SideLeft, SideRight}

// Valid reports whether s is one of the four walls.
func (s Side) Valid() bool {
	switch s {
	case SideTop, SideBottom, SideLeft, SideRight:
		return true
	}
	return false
}

// Horizontal reports whether the wall runs along the X axis.
func (s Side) Horizontal() bool {
	return s == SideTop || s == SideBottom
}

// ParseSide converts a string to a Side.
func ParseSide(v string) (Side, error) {
	s := Side(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown wall side %q", v)
	}
	return s, nil
}

// WallSnap is a symbolic placement: a wall and a normalized offset in [0,1]
// along that wall's free travel distance.
type WallSnap struct {
	Side   Side    `json:"side"`
	Offset float64 `json:"offset"`
}

// WallToPixel resolves a wall placement to the top-left pixel position of an
// object of the given size. The offset scales the free travel (wall length
// minus object length), so a placement survives room resizing. An unknown side
// resolves to the origin.
func WallToPixel(side Side, offset float64, obj Size, room Size) Point2D {
	switch side {
	case SideTop:
		return Point2D{offset * (room.W - obj.W), 0}
	case SideBottom:
		return Point2D{offset * (room.W - obj.W), room.H - obj.H}
	case SideLeft:
		return Point2D{0, offset * (room.H - obj.H)}
	case SideRight:
		return Point2D{room.W - obj.W, offset * (room.H - obj.H)}
	}
	return Point2D{}
}

// Anchor returns the midpoint of the given side of the room rectangle, or the
// room center for an unknown side.
func (s Side) Anchor(room Size) Point2D {
	c := room.Center()
	switch s {
	case SideTop:
		return Point2D{c.X, 0}
	case SideBottom:
		return Point2D{c.X, room.H}
	case SideLeft:
		return Point2D{0, c.Y}
	case SideRight:
		return Point2D{room.W, c.Y}
	}
	return c
}
