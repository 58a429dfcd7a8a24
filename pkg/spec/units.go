package spec

import (
	"fmt"
	"math"
)

// Unit is the physical unit the room is measured in.
type Unit string

const (
	Feet   Unit = "feet"
	Meters Unit = "meters"
)

// Room dimensions are clamped to this range of physical units.
const (
	MinRoom = 5.0
	MaxRoom = 100.0
)

// Scale returns pixels per physical unit, or 0 for an unknown unit.
func (u Unit) Scale() float64 {
	switch u {
	case Feet:
		return 15
	case Meters:
		return 50
	}
	return 0
}

// ParseUnit converts a string to a Unit.
func ParseUnit(v string) (Unit, error) {
	u := Unit(v)
	if u.Scale() == 0 {
		return "", fmt.Errorf("unknown unit %q", v)
	}
	return u, nil
}

// ClampRoom limits a room dimension to [MinRoom, MaxRoom]. Missing, negative
// and NaN values become MinRoom.
func ClampRoom(v float64) float64 {
	if math.IsNaN(v) || v < MinRoom {
		return MinRoom
	}
	if v > MaxRoom {
		return MaxRoom
	}
	return v
}
