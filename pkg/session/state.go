// Package session holds the editor state for one room and applies user
// commands to it. Every command ends with a single recompute pass: derived
// geometry is rebuilt from State by Derive, and racks are re-packed when one
// of their packing inputs changed.
package session

import (
	"github.com/ChicagoDave/roomplanner/pkg/door"
	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/layout"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
)

// State is everything the user has entered or placed. Positions are room
// pixels; room and rack dimensions are physical units.
type State struct {
	Unit       spec.Unit       `json:"unit"`
	Width      float64         `json:"width"`
	Length     float64         `json:"length"`
	Polygon    geo.Polygon     `json:"polygon"`
	DoorSide   geo.Side        `json:"door_side"`
	DoorOffset float64         `json:"door_offset"`
	RackDef    spec.RackDef    `json:"rack_def"`
	Racks      []layout.Rack   `json:"racks"`
	ACUnits    []layout.ACUnit `json:"ac_units"`
	Selected   string          `json:"selected,omitempty"`
	Exporting  bool            `json:"exporting"`
	Canvas     geo.Size        `json:"canvas"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Polygon = s.Polygon.Clone()
	out.Racks = append([]layout.Rack(nil), s.Racks...)
	out.ACUnits = append([]layout.ACUnit(nil), s.ACUnits...)
	if out.Racks == nil {
		out.Racks = []layout.Rack{}
	}
	if out.ACUnits == nil {
		out.ACUnits = []layout.ACUnit{}
	}
	return out
}

// Derived is the geometry computed from State.
type Derived struct {
	Scale        float64           `json:"scale"`
	Room         geo.Size          `json:"room"`
	Rack         layout.RackParams `json:"rack"`
	Door         door.Door         `json:"door"`
	DoorGeometry door.Geometry     `json:"door_geometry"`
	HasDoor      bool              `json:"has_door"`
	Viewport     geo.Viewport      `json:"viewport"`
	Site         layout.Site       `json:"-"`
}

// Derive recomputes the derived geometry of s. It has no side effects. An
// unknown unit is treated as feet and a missing canvas as DefaultCanvas.
func Derive(s State) Derived {
	scale := s.Unit.Scale()
	if scale == 0 {
		scale = spec.Feet.Scale()
	}
	room := geo.Sz(spec.ClampRoom(s.Width)*scale, spec.ClampRoom(s.Length)*scale)

	canvas := s.Canvas
	if canvas.W <= 0 || canvas.H <= 0 {
		canvas = geo.DefaultCanvas
	}

	d := door.New(s.DoorSide, s.DoorOffset, scale)
	site := layout.Site{Polygon: s.Polygon, Room: room, Door: d}
	g, ok := site.DoorGeometry()

	return Derived{
		Scale: scale,
		Room:  room,
		Rack: layout.RackParams{
			Count:             s.RackDef.Count,
			Rows:              s.RackDef.Rows,
			Width:             s.RackDef.Width * scale,
			Depth:             s.RackDef.Depth * scale,
			CableManagers:     s.RackDef.CableManagers,
			CableManagerWidth: s.RackDef.CableManagerWidth * scale,
		},
		Door:         d,
		DoorGeometry: g,
		HasDoor:      ok,
		Viewport:     geo.NewViewport(canvas, room),
		Site:         site,
	}
}

// packKey is the set of inputs AutoPack depends on. The polygon is tracked by
// a revision counter bumped on every outline edit.
type packKey struct {
	rack       layout.RackParams
	room       geo.Size
	polygonRev int
	doorSide   geo.Side
	doorOffset float64
}
