package layout

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/validation"
)

// RowGap is the aisle between rack rows in pixels.
const RowGap = 48.0

// Rack is a placed rack. Racks have no identity beyond their index.
type Rack struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Pos returns the rack's top-left corner.
func (r Rack) Pos() geo.Point2D {
	return geo.Pt(r.X, r.Y)
}

// RackParams are the rack grid inputs in pixels.
type RackParams struct {
	Count             int     `json:"count"`
	Rows              int     `json:"rows"`
	Width             float64 `json:"width"`
	Depth             float64 `json:"depth"`
	CableManagers     bool    `json:"cable_managers"`
	CableManagerWidth float64 `json:"cable_manager_width"`
}

// Size returns the footprint of one rack.
func (p RackParams) Size() geo.Size {
	return geo.Sz(p.Width, p.Depth)
}

// Gap is the horizontal space between neighbouring racks in a row.
func (p RackParams) Gap() float64 {
	if p.CableManagers {
		return p.CableManagerWidth
	}
	return 0
}

// PerRow is ceil(Count/Rows), never less than 1.
func (p RackParams) PerRow() int {
	rows := max(p.Rows, 1)
	return max(int(math.Ceil(float64(p.Count)/float64(rows))), 1)
}

// RackLabel is the label of the n-th placed rack, counting from 1. It is two
// lines: the word and the number.
func RackLabel(n int) string {
	return fmt.Sprintf("Rack\n%d", n)
}

// AutoPack lays racks out in rows centered in the room. Every row holds
// PerRow racks except the last, which takes the remainder; each row is
// centered horizontally and the block of rows vertically. Slots are visited in
// row-major order and any slot outside the outline or inside the door swing is
// skipped, so fewer racks than requested may be placed. That shortfall is
// reported as a warning, never an error.
func AutoPack(p RackParams, site Site) ([]Rack, *validation.Report) {
	report := validation.NewReport()
	racks := []Rack{}

	if p.Count <= 0 || p.Rows <= 0 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "no racks requested",
		})
		return racks, report
	}

	perRow := p.PerRow()
	pitch := p.Width + p.Gap()
	totalHeight := float64(p.Rows)*p.Depth + float64(p.Rows-1)*RowGap
	startY := math.Max((site.Room.H-totalHeight)/2, 0)

	g, hasDoor := site.DoorGeometry()

	for row := 0; row < p.Rows; row++ {
		inRow := perRow
		if row == p.Rows-1 {
			inRow = p.Count - perRow*(p.Rows-1)
		}
		if inRow <= 0 {
			continue
		}
		rowWidth := float64(inRow)*p.Width + float64(inRow-1)*p.Gap()
		startX := math.Max((site.Room.W-rowWidth)/2, 0)
		y := startY + float64(row)*(p.Depth+RowGap)

		for col := 0; col < inRow; col++ {
			x := startX + float64(col)*pitch
			if !site.allows(geo.Rect{X: x, Y: y, W: p.Width, H: p.Depth}, g, hasDoor) {
				continue
			}
			racks = append(racks, Rack{X: x, Y: y, Label: RackLabel(len(racks) + 1)})
			if len(racks) == p.Count {
				break
			}
		}
		if len(racks) == p.Count {
			break
		}
	}

	if len(racks) < p.Count {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("placed %d of %d racks", len(racks), p.Count),
			Field:       "racks.count",
			ActualValue: p.Count,
			Suggestions: []string{"Enlarge the room, move the door, or add rows"},
		})
	} else {
		report.AddInfo(validation.Result{
			Level:   validation.LevelSpatial,
			Message: fmt.Sprintf("placed %d racks in %d rows", len(racks), p.Rows),
		})
	}
	return racks, report
}

// SnapToGrid returns the grid position of rack index measured from racks[0],
// using the same row and column arithmetic as AutoPack. The first rack is the
// anchor whatever its own position: if it has been dragged, every snapped rack
// follows it. With no racks the origin is returned.
func SnapToGrid(index int, racks []Rack, p RackParams) geo.Point2D {
	if len(racks) == 0 {
		return geo.Point2D{}
	}
	perRow := p.PerRow()
	col := index % perRow
	row := index / perRow

	first := racks[0]
	return geo.Point2D{
		X: first.X + float64(col)*(p.Width+p.Gap()),
		Y: first.Y + float64(row)*(p.Depth+RowGap),
	}
}

// ValidatePlacement reports whether a rack-sized box at pos is inside the
// outline and clear of the door swing.
func ValidatePlacement(pos geo.Point2D, size geo.Size, site Site) bool {
	return site.Allows(geo.RectAt(pos, size))
}
