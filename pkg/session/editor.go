package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/layout"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
	"github.com/ChicagoDave/roomplanner/pkg/validation"
)

// AssetACUnit is the drop tag of an AC unit dragged from the palette.
const AssetACUnit = "ACUnit"

// Size of a freshly dropped AC unit in physical units.
const (
	DropACWidth  = 3.0
	DropACHeight = 1.0
)

var (
	ErrExporting     = errors.New("export in progress")
	ErrUnknownAC     = errors.New("no such AC unit")
	ErrUnknownAsset  = errors.New("unknown asset type")
	ErrVertexIndex   = errors.New("vertex index out of range")
	ErrRackIndex     = errors.New("rack index out of range")
	ErrMinVertices   = errors.New("outline needs at least 3 vertices")
	ErrInvalidParams = errors.New("invalid rack parameters")
)

// IDSource produces AC unit identities. Every call must return a new value.
type IDSource func() string

// NewUUID is the default IDSource.
func NewUUID() string {
	return uuid.NewString()
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for command tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithIDSource replaces the UUID generator.
func WithIDSource(ids IDSource) Option {
	return func(e *Editor) { e.ids = ids }
}

// Editor applies commands to a room layout. It is not safe for concurrent
// use; callers serialize access.
type Editor struct {
	state      State
	derived    Derived
	packed     packKey
	polygonRev int

	loadReport *validation.Report
	packReport *validation.Report

	ids IDSource
	log *slog.Logger
}

// New builds an editor from a room project. Invalid values degrade to
// defaults and AC units that cannot be placed are dropped; both are recorded
// in Report.
func New(s *spec.RoomSpec, opts ...Option) *Editor {
	e := &Editor{
		ids:        NewUUID,
		log:        slog.Default(),
		loadReport: validation.NewReport(),
	}
	for _, opt := range opts {
		opt(e)
	}

	unit, err := spec.ParseUnit(s.Room.Unit)
	if err != nil {
		e.loadReport.AddWarning(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("%v, using feet", err),
			Field:       "room.unit",
			ActualValue: s.Room.Unit,
		})
		unit = spec.Feet
	}
	side, err := geo.ParseSide(s.Door.Side)
	if err != nil {
		e.loadReport.AddWarning(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("%v, using top", err),
			Field:       "door.side",
			ActualValue: s.Door.Side,
		})
		side = geo.SideTop
	}

	e.state = State{
		Unit:       unit,
		Width:      s.Room.Width,
		Length:     s.Room.Length,
		DoorSide:   side,
		DoorOffset: clamp01(s.Door.Offset),
		RackDef:    s.Racks,
		Racks:      []layout.Rack{},
		ACUnits:    []layout.ACUnit{},
		Canvas:     geo.Sz(s.Canvas.Width, s.Canvas.Height),
	}

	room := Derive(e.state).Room
	if len(s.Room.Outline) >= geo.MinVertices {
		e.state.Polygon = geo.FromPairs(s.Room.Outline).ScaleTo(room.W, room.H)
	} else {
		e.state.Polygon = geo.RectPolygon(room)
	}
	e.recompute(true)

	for i, def := range s.ACUnits {
		e.loadAC(i, def)
	}
	return e
}

func (e *Editor) loadAC(i int, def spec.ACDef) {
	field := fmt.Sprintf("ac_units[%d]", i)
	side, err := geo.ParseSide(def.Side)
	if err != nil {
		e.loadReport.AddWarning(validation.Result{
			Level:   validation.LevelSpatial,
			Message: fmt.Sprintf("AC unit skipped: %v", err),
			Field:   field + ".side",
		})
		return
	}
	u := layout.ACUnit{
		ID:     e.ids(),
		Side:   side,
		Offset: clamp01(def.Offset),
		Width:  math.Max(layout.MinACSize, def.Width*e.derived.Scale),
		Height: math.Max(layout.MinACSize, def.Depth*e.derived.Scale),
	}
	placed, res := layout.Resolve(u, u.Snap(), e.derived.Site)
	switch res {
	case layout.Rejected:
		e.loadReport.AddWarning(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     "AC unit has no valid position on its wall and was skipped",
			Field:       field,
			Suggestions: []string{"Move the AC unit to another wall or make it smaller"},
		})
		return
	case layout.Fallback:
		e.loadReport.AddInfo(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("AC unit moved along its wall to offset %.2f", placed.Offset),
			Field:       field + ".offset",
			ActualValue: def.Offset,
		})
	}
	e.state.ACUnits = append(e.state.ACUnits, placed)
}

// recompute rebuilds derived geometry and re-packs the racks when a packing
// input changed or force is set.
func (e *Editor) recompute(force bool) {
	e.derived = Derive(e.state)
	key := packKey{
		rack:       e.derived.Rack,
		room:       e.derived.Room,
		polygonRev: e.polygonRev,
		doorSide:   e.state.DoorSide,
		doorOffset: e.state.DoorOffset,
	}
	if !force && key == e.packed {
		return
	}
	racks, report := layout.AutoPack(e.derived.Rack, e.derived.Site)
	e.state.Racks = racks
	e.packReport = report
	e.packed = key
	e.log.Debug("racks packed", "placed", len(racks), "requested", e.derived.Rack.Count)
}

// State returns a copy of the current state.
func (e *Editor) State() State {
	return e.state.Clone()
}

// Derived returns the current derived geometry.
func (e *Editor) Derived() Derived {
	return e.derived
}

// Report returns the findings from loading the project and the latest rack
// packing.
func (e *Editor) Report() *validation.Report {
	r := validation.NewReport()
	r.Merge(e.loadReport)
	r.Merge(e.packReport)
	return r
}

// ToPhysical converts a canvas point to room pixels.
func (e *Editor) ToPhysical(screen geo.Point2D) geo.Point2D {
	return e.derived.Viewport.ToPhysical(screen)
}

// Spec converts the current state back into a room project. The outline is
// saved in room pixels and AC sizes in physical units.
func (e *Editor) Spec() *spec.RoomSpec {
	s := &spec.RoomSpec{
		SpecVersion: spec.Version,
		Room: spec.RoomDef{
			Unit:    string(e.state.Unit),
			Width:   e.state.Width,
			Length:  e.state.Length,
			Outline: e.state.Polygon.Pairs(),
		},
		Door:   spec.DoorDef{Side: string(e.state.DoorSide), Offset: e.state.DoorOffset},
		Racks:  e.state.RackDef,
		Canvas: spec.CanvasDef{Width: e.derived.Viewport.Canvas.W, Height: e.derived.Viewport.Canvas.H},
	}
	for _, u := range e.state.ACUnits {
		s.ACUnits = append(s.ACUnits, spec.ACDef{
			Side:   string(u.Side),
			Offset: u.Offset,
			Width:  u.Width / e.derived.Scale,
			Depth:  u.Height / e.derived.Scale,
		})
	}
	return s
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
