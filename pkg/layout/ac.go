package layout

import (
	"math"

	"github.com/ChicagoDave/roomplanner/pkg/door"
	"github.com/ChicagoDave/roomplanner/pkg/geo"
)

const (
	// FallbackSteps is the number of intervals in the same-wall offset scan.
	FallbackSteps = 100

	// MinACSize is the smallest AC width or height in pixels.
	MinACSize = 16.0
)

// ACUnit is an air-conditioning unit pinned to a wall. Width and Height are in
// pixels; the position is derived from Side and Offset on demand.
type ACUnit struct {
	ID     string   `json:"id"`
	Side   geo.Side `json:"side"`
	Offset float64  `json:"offset"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
}

// Size returns the unit's footprint.
func (u ACUnit) Size() geo.Size {
	return geo.Sz(u.Width, u.Height)
}

// Snap returns the unit's current wall placement.
func (u ACUnit) Snap() geo.WallSnap {
	return geo.WallSnap{Side: u.Side, Offset: u.Offset}
}

// At returns a copy of the unit moved to snap.
func (u ACUnit) At(snap geo.WallSnap) ACUnit {
	u.Side = snap.Side
	u.Offset = snap.Offset
	return u
}

// Position returns the unit's top-left corner in room pixels.
func (u ACUnit) Position(room geo.Size) geo.Point2D {
	return geo.WallToPixel(u.Side, u.Offset, u.Size(), room)
}

// Box returns the unit's footprint rectangle in room pixels.
func (u ACUnit) Box(room geo.Size) geo.Rect {
	return geo.RectAt(u.Position(room), u.Size())
}

// Resolution says how a proposed AC placement was settled.
type Resolution int

const (
	// Rejected means neither the proposal nor any fallback offset was valid.
	Rejected Resolution = iota
	// Direct means the proposed placement was accepted as is.
	Direct
	// Fallback means the unit kept its wall and slid to the first valid offset.
	Fallback
)

func (r Resolution) String() string {
	switch r {
	case Direct:
		return "direct"
	case Fallback:
		return "fallback"
	}
	return "rejected"
}

// Applied reports whether the placement changed anything.
func (r Resolution) Applied() bool {
	return r != Rejected
}

// ValidateSnap reports whether u placed at snap lies inside the outline and
// outside the door swing.
func ValidateSnap(snap geo.WallSnap, u ACUnit, site Site) bool {
	return site.Allows(u.At(snap).Box(site.Room))
}

// FindFallbackOffset scans offsets 0, 1/100, ... 1 along u's current side and
// returns the first one that validates.
func FindFallbackOffset(u ACUnit, site Site) (float64, bool) {
	g, hasDoor := site.DoorGeometry()
	return findFallbackOffset(u, site, g, hasDoor)
}

func findFallbackOffset(u ACUnit, site Site, g door.Geometry, hasDoor bool) (float64, bool) {
	for i := 0; i <= FallbackSteps; i++ {
		offset := float64(i) / FallbackSteps
		box := u.At(geo.WallSnap{Side: u.Side, Offset: offset}).Box(site.Room)
		if site.allows(box, g, hasDoor) {
			return offset, true
		}
	}
	return 0, false
}

// Resolve settles a proposed placement for u. The proposal is taken if it
// validates. Otherwise the unit stays on its current wall, which may differ
// from the proposed one, and takes the first valid fallback offset. If both
// fail u is returned unchanged with Rejected.
func Resolve(u ACUnit, snap geo.WallSnap, site Site) (ACUnit, Resolution) {
	g, hasDoor := site.DoorGeometry()
	if site.allows(u.At(snap).Box(site.Room), g, hasDoor) {
		return u.At(snap), Direct
	}
	if offset, ok := findFallbackOffset(u, site, g, hasDoor); ok {
		u.Offset = offset
		return u, Fallback
	}
	return u, Rejected
}

// ResolveDrag applies Resolve to the unit in units with u's ID and returns the
// updated collection. A rejected drag returns units itself, untouched.
func ResolveDrag(units []ACUnit, u ACUnit, snap geo.WallSnap, site Site) ([]ACUnit, Resolution) {
	resolved, res := Resolve(u, snap, site)
	if res == Rejected {
		return units, res
	}
	out := make([]ACUnit, len(units))
	for i, other := range units {
		if other.ID == u.ID {
			other.Side = resolved.Side
			other.Offset = resolved.Offset
		}
		out[i] = other
	}
	return out, res
}

// ResizeAC sets the size of the unit with the given ID, clamping each
// dimension to MinACSize. The result is not revalidated against the outline
// or the door; the next drag settles it.
func ResizeAC(units []ACUnit, id string, width, height float64) []ACUnit {
	out := make([]ACUnit, len(units))
	for i, u := range units {
		if u.ID == id {
			u.Width = math.Max(MinACSize, width)
			u.Height = math.Max(MinACSize, height)
		}
		out[i] = u
	}
	return out
}

// DeleteAC returns units without the unit with the given ID.
func DeleteAC(units []ACUnit, id string) []ACUnit {
	out := make([]ACUnit, 0, len(units))
	for _, u := range units {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

// FindAC returns the unit with the given ID.
func FindAC(units []ACUnit, id string) (ACUnit, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}
	return ACUnit{}, false
}
