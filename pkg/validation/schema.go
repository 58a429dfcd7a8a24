package validation

import (
	"fmt"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
)

// ValidateSchema checks a parsed RoomSpec before any geometry is computed.
// Out-of-range room dimensions are warnings because the editor clamps them.
func ValidateSchema(s *spec.RoomSpec) *Report {
	r := NewReport()

	validateVersion(s, r)
	validateRoom(s, r)
	validateDoor(s, r)
	validateRacks(s, r)
	validateACUnits(s, r)
	validateCanvas(s, r)

	return r
}

func validateVersion(s *spec.RoomSpec, r *Report) {
	if s.SpecVersion == "" {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "spec_version is not set",
			Field:    "spec_version",
			Expected: spec.Version,
		})
	}
}

func validateRoom(s *spec.RoomSpec, r *Report) {
	if _, err := spec.ParseUnit(s.Room.Unit); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			Field:       "room.unit",
			ActualValue: s.Room.Unit,
			Expected:    "feet | meters",
		})
	}

	dims := []struct {
		field string
		value float64
	}{
		{"room.width", s.Room.Width},
		{"room.length", s.Room.Length},
	}
	for _, d := range dims {
		if d.value < spec.MinRoom || d.value > spec.MaxRoom {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s will be clamped to %.0f", d.field, spec.ClampRoom(d.value)),
				Field:       d.field,
				ActualValue: d.value,
				Expected:    fmt.Sprintf("%.0f..%.0f", spec.MinRoom, spec.MaxRoom),
			})
		}
	}

	if n := len(s.Room.Outline); n > 0 && n < geo.MinVertices {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "room.outline needs at least 3 vertices",
			Field:       "room.outline",
			ActualValue: n,
			Expected:    ">= 3",
			Suggestions: []string{"Omit outline to use a rectangular room"},
		})
	}
}

func validateDoor(s *spec.RoomSpec, r *Report) {
	validateSide(s.Door.Side, "door.side", r)
	validateOffset(s.Door.Offset, "door.offset", r)
}

func validateRacks(s *spec.RoomSpec, r *Report) {
	rk := s.Racks
	if rk.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "racks.count must not be negative",
			Field:       "racks.count",
			ActualValue: rk.Count,
			Expected:    ">= 0",
		})
	}
	if rk.Count > 0 && rk.Rows < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "racks.rows must be at least 1",
			Field:       "racks.rows",
			ActualValue: rk.Rows,
			Expected:    ">= 1",
		})
	}
	if rk.Rows > rk.Count && rk.Count > 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%d rows for %d racks leaves rows empty", rk.Rows, rk.Count),
			Field:       "racks.rows",
			ActualValue: rk.Rows,
			Suggestions: []string{"Use no more rows than racks"},
		})
	}
	validatePositive(rk.Width, "racks.width", r)
	validatePositive(rk.Depth, "racks.depth", r)
	if rk.CableManagerWidth < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "racks.cable_manager_width must not be negative",
			Field:       "racks.cable_manager_width",
			ActualValue: rk.CableManagerWidth,
			Expected:    ">= 0",
		})
	}
}

func validateACUnits(s *spec.RoomSpec, r *Report) {
	for i, ac := range s.ACUnits {
		prefix := fmt.Sprintf("ac_units[%d]", i)
		validateSide(ac.Side, prefix+".side", r)
		validateOffset(ac.Offset, prefix+".offset", r)
		validatePositive(ac.Width, prefix+".width", r)
		validatePositive(ac.Depth, prefix+".depth", r)
	}
}

func validateCanvas(s *spec.RoomSpec, r *Report) {
	validatePositive(s.Canvas.Width, "canvas.width", r)
	validatePositive(s.Canvas.Height, "canvas.height", r)
}

func validateSide(side, field string, r *Report) {
	if _, err := geo.ParseSide(side); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			Field:       field,
			ActualValue: side,
			Expected:    "top | bottom | left | right",
		})
	}
}

func validateOffset(v float64, field string, r *Report) {
	if v < 0 || v > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be between 0 and 1", field),
			Field:       field,
			ActualValue: v,
			Expected:    "0..1",
		})
	}
}

func validatePositive(v float64, field string, r *Report) {
	if v <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be greater than 0", field),
			Field:       field,
			ActualValue: v,
			Expected:    "> 0",
		})
	}
}
