package scene2d

import (
	"time"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/session"
)

// Assemble2D converts an editor state into a scene suitable for rendering.
// Derived geometry is recomputed from st, so any snapshot can be assembled
// after the editor has moved on.
func Assemble2D(st session.State) *Scene2D {
	d := session.Derive(st)
	return &Scene2D{
		Metadata:      assembleMetadata(st, d),
		Room:          pair(geo.Pt(d.Room.W, d.Room.H)),
		Polygon:       st.Polygon.Pairs(),
		Door:          assembleDoor(st, d),
		Racks:         assembleRacks(st, d),
		CableManagers: assembleCableManagers(st, d),
		ACUnits:       assembleACUnits(st, d),
		Viewport:      d.Viewport,
	}
}

func assembleMetadata(st session.State, d session.Derived) Metadata {
	return Metadata{
		Unit:           string(st.Unit),
		Scale:          d.Scale,
		Width:          d.Room.W / d.Scale,
		Length:         d.Room.H / d.Scale,
		RacksPlaced:    len(st.Racks),
		RacksRequested: st.RackDef.Count,
		ACCount:        len(st.ACUnits),
		Exporting:      st.Exporting,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

func assembleDoor(st session.State, d session.Derived) *Door2D {
	if !d.HasDoor {
		return nil
	}
	g := d.DoorGeometry
	return &Door2D{
		Side:      string(st.DoorSide),
		Offset:    st.DoorOffset,
		Edge:      g.Edge,
		GapStart:  pair(g.GapStart),
		GapEnd:    pair(g.GapEnd),
		LeafStart: pair(g.LeafStart),
		LeafEnd:   pair(g.LeafEnd),
		Anchor:    pair(g.Anchor),
	}
}

func assembleRacks(st session.State, d session.Derived) []Rack2D {
	size := [2]float64{d.Rack.Width, d.Rack.Depth}
	out := make([]Rack2D, 0, len(st.Racks))
	for i, r := range st.Racks {
		out = append(out, Rack2D{
			Index:    i,
			Label:    r.Label,
			Position: pair(r.Pos()),
			Size:     size,
		})
	}
	return out
}

func assembleCableManagers(st session.State, d session.Derived) []CableManager2D {
	out := []CableManager2D{}
	if !d.Rack.CableManagers || len(st.Racks) < 2 {
		return out
	}
	size := [2]float64{d.Rack.CableManagerWidth, d.Rack.Depth}
	for _, r := range st.Racks[:len(st.Racks)-1] {
		out = append(out, CableManager2D{
			Position: [2]float64{r.X + d.Rack.Width, r.Y},
			Size:     size,
		})
	}
	return out
}

func assembleACUnits(st session.State, d session.Derived) []ACUnit2D {
	out := make([]ACUnit2D, 0, len(st.ACUnits))
	for _, u := range st.ACUnits {
		out = append(out, ACUnit2D{
			ID:       u.ID,
			Side:     string(u.Side),
			Offset:   u.Offset,
			Position: pair(u.Position(d.Room)),
			Size:     [2]float64{u.Width, u.Height},
			Selected: u.ID == st.Selected,
		})
	}
	return out
}

func pair(p geo.Point2D) [2]float64 {
	return [2]float64{p.X, p.Y}
}
