package layout

import (
	"github.com/ChicagoDave/roomplanner/pkg/door"
	"github.com/ChicagoDave/roomplanner/pkg/geo"
)

// Site bundles the constraints every placement is checked against: the room
// outline, the room rectangle in pixels, and the door.
type Site struct {
	Polygon geo.Polygon
	Room    geo.Size
	Door    door.Door
}

// DoorGeometry derives the door for this site.
func (s Site) DoorGeometry() (door.Geometry, bool) {
	return door.Compute(s.Polygon, s.Door, s.Room)
}

// Allows reports whether box lies fully inside the outline and clear of the
// door swing. A rejected manual drag simply reverts.
func (s Site) Allows(box geo.Rect) bool {
	g, ok := s.DoorGeometry()
	return s.allows(box, g, ok)
}

// allows is Allows with the door geometry already computed, for callers that
// test many boxes against one site.
func (s Site) allows(box geo.Rect, g door.Geometry, hasDoor bool) bool {
	if !s.Polygon.ContainsBox(box) {
		return false
	}
	return !hasDoor || !g.Blocks(box)
}
