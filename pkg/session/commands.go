package session

import (
	"fmt"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/layout"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
)

// SetRoom changes the room dimensions in physical units. Values are clamped
// to the supported range when derived. The outline is rescaled, not
// regenerated, so vertex edits survive.
func (e *Editor) SetRoom(width, length float64) {
	e.state.Width = width
	e.state.Length = length
	e.rescale()
}

// SetUnit switches between feet and meters. Physical dimensions are kept, so
// the room changes size in pixels.
func (e *Editor) SetUnit(v string) error {
	u, err := spec.ParseUnit(v)
	if err != nil {
		return err
	}
	e.state.Unit = u
	e.rescale()
	return nil
}

func (e *Editor) rescale() {
	before := e.derived.Room
	room := Derive(e.state).Room
	if room != before {
		e.state.Polygon = e.state.Polygon.ScaleTo(room.W, room.H)
		e.polygonRev++
		e.log.Debug("room resized", "width", room.W, "height", room.H)
	}
	e.recompute(false)
}

// MoveVertex moves outline vertex i to pt, clamped into the room.
func (e *Editor) MoveVertex(i int, pt geo.Point2D) error {
	if e.state.Exporting {
		return ErrExporting
	}
	if err := e.checkVertex(i); err != nil {
		return err
	}
	e.setPolygon(e.state.Polygon.MoveVertex(i, pt, e.derived.Room))
	return nil
}

// InsertVertex splits edge i at its midpoint.
func (e *Editor) InsertVertex(i int) error {
	if err := e.checkVertex(i); err != nil {
		return err
	}
	e.setPolygon(e.state.Polygon.InsertMidpoint(i))
	return nil
}

// RemoveVertex deletes vertex i. A triangle cannot lose a vertex.
func (e *Editor) RemoveVertex(i int) error {
	if err := e.checkVertex(i); err != nil {
		return err
	}
	if e.state.Polygon.Len() <= geo.MinVertices {
		return ErrMinVertices
	}
	e.setPolygon(e.state.Polygon.RemoveVertex(i))
	return nil
}

// ResetPolygon restores the outline to the full room rectangle.
func (e *Editor) ResetPolygon() {
	e.setPolygon(geo.RectPolygon(e.derived.Room))
}

func (e *Editor) checkVertex(i int) error {
	if i < 0 || i >= e.state.Polygon.Len() {
		return fmt.Errorf("%w: %d", ErrVertexIndex, i)
	}
	return nil
}

func (e *Editor) setPolygon(p geo.Polygon) {
	e.state.Polygon = p
	e.polygonRev++
	e.recompute(false)
}

// DragDoor moves the door to the wall nearest pt. The stored offset is the
// projection parameter along the nearest edge. It returns false when the
// outline is too small to carry a door.
func (e *Editor) DragDoor(pt geo.Point2D) (bool, error) {
	if e.state.Exporting {
		return false, ErrExporting
	}
	snap, ok := geo.SnapToPolygon(pt, e.state.Polygon, e.derived.Room)
	if !ok {
		return false, nil
	}
	e.state.DoorSide = snap.Side
	e.state.DoorOffset = snap.Offset
	e.recompute(false)
	return true, nil
}

// SetRackParams replaces the rack settings.
func (e *Editor) SetRackParams(def spec.RackDef) error {
	if def.Count < 0 || def.Rows < 1 || def.Width <= 0 || def.Depth <= 0 || def.CableManagerWidth < 0 {
		return fmt.Errorf("%w: count=%d rows=%d width=%g depth=%g", ErrInvalidParams,
			def.Count, def.Rows, def.Width, def.Depth)
	}
	e.state.RackDef = def
	e.recompute(false)
	return nil
}

// SetSnapToGrid toggles grid snapping for rack drags.
func (e *Editor) SetSnapToGrid(on bool) {
	e.state.RackDef.SnapToGrid = on
}

// ResetRacks re-packs the racks, discarding manual drags.
func (e *Editor) ResetRacks() {
	e.recompute(true)
}

// DragRack drops rack i at pt. With grid snapping on, the rack goes to its
// grid slot measured from the first rack instead. It returns false when the
// target is outside the outline or in the door swing; the rack then stays put.
func (e *Editor) DragRack(i int, pt geo.Point2D) (bool, error) {
	if e.state.Exporting {
		return false, ErrExporting
	}
	if i < 0 || i >= len(e.state.Racks) {
		return false, fmt.Errorf("%w: %d", ErrRackIndex, i)
	}
	if e.state.RackDef.SnapToGrid {
		pt = layout.SnapToGrid(i, e.state.Racks, e.derived.Rack)
	}
	if !layout.ValidatePlacement(pt, e.derived.Rack.Size(), e.derived.Site) {
		e.log.Debug("rack drag rejected", "index", i, "x", pt.X, "y", pt.Y)
		return false, nil
	}
	racks := append([]layout.Rack(nil), e.state.Racks...)
	racks[i].X = pt.X
	racks[i].Y = pt.Y
	e.state.Racks = racks
	return true, nil
}

// DropAsset handles a palette drop at pt. Only AC units can be dropped. The
// new unit is 3x1 physical units, snapped to the nearest wall and resolved
// like a drag; if no position on that wall is valid nothing is added.
func (e *Editor) DropAsset(assetType string, pt geo.Point2D) (layout.ACUnit, layout.Resolution, error) {
	if assetType != AssetACUnit {
		return layout.ACUnit{}, layout.Rejected, fmt.Errorf("%w: %q", ErrUnknownAsset, assetType)
	}
	if e.state.Exporting {
		return layout.ACUnit{}, layout.Rejected, ErrExporting
	}
	snap, ok := geo.SnapToPolygon(pt, e.state.Polygon, e.derived.Room)
	if !ok {
		return layout.ACUnit{}, layout.Rejected, nil
	}
	provisional := layout.ACUnit{
		ID:     e.ids(),
		Side:   snap.Side,
		Offset: snap.Offset,
		Width:  DropACWidth * e.derived.Scale,
		Height: DropACHeight * e.derived.Scale,
	}
	u, res := layout.Resolve(provisional, snap, e.derived.Site)
	if res == layout.Rejected {
		e.log.Debug("AC drop rejected", "side", snap.Side)
		return layout.ACUnit{}, res, nil
	}
	units := append([]layout.ACUnit(nil), e.state.ACUnits...)
	e.state.ACUnits = append(units, u)
	e.state.Selected = u.ID
	return u, res, nil
}

// DragAC moves the unit with the given ID toward pt. See layout.Resolve for
// how the target is settled.
func (e *Editor) DragAC(id string, pt geo.Point2D) (layout.Resolution, error) {
	if e.state.Exporting {
		return layout.Rejected, ErrExporting
	}
	u, ok := layout.FindAC(e.state.ACUnits, id)
	if !ok {
		return layout.Rejected, fmt.Errorf("%w: %s", ErrUnknownAC, id)
	}
	snap, ok := geo.SnapToPolygon(pt, e.state.Polygon, e.derived.Room)
	if !ok {
		return layout.Rejected, nil
	}
	units, res := layout.ResolveDrag(e.state.ACUnits, u, snap, e.derived.Site)
	e.state.ACUnits = units
	return res, nil
}

// ResizeAC sets a unit's size in physical units.
func (e *Editor) ResizeAC(id string, width, length float64) error {
	if _, ok := layout.FindAC(e.state.ACUnits, id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAC, id)
	}
	e.state.ACUnits = layout.ResizeAC(e.state.ACUnits, id, width*e.derived.Scale, length*e.derived.Scale)
	return nil
}

// DeleteAC removes a unit and clears the selection if it pointed at it.
func (e *Editor) DeleteAC(id string) error {
	if _, ok := layout.FindAC(e.state.ACUnits, id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAC, id)
	}
	e.state.ACUnits = layout.DeleteAC(e.state.ACUnits, id)
	if e.state.Selected == id {
		e.state.Selected = ""
	}
	return nil
}

// SelectAC selects a unit. An empty id clears the selection.
func (e *Editor) SelectAC(id string) error {
	if id != "" {
		if _, ok := layout.FindAC(e.state.ACUnits, id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAC, id)
		}
	}
	e.state.Selected = id
	return nil
}

// BeginExport marks an export as in flight. Drags are refused until
// EndExport.
func (e *Editor) BeginExport() error {
	if e.state.Exporting {
		return ErrExporting
	}
	e.state.Exporting = true
	return nil
}

// EndExport clears the export flag.
func (e *Editor) EndExport() {
	e.state.Exporting = false
}
