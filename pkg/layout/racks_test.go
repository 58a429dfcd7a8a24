package layout

import (
	"testing"

	"github.com/ChicagoDave/roomplanner/pkg/door"
	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feet = 15.0

func rectSite(room geo.Size) Site {
	return Site{
		Polygon: geo.RectPolygon(room),
		Room:    room,
		Door:    door.New(geo.SideTop, 0.5, feet),
	}
}

func defaultSite() Site { return rectSite(geo.Sz(600, 375)) }

func defaultRackParams() RackParams {
	return RackParams{Count: 4, Rows: 1, Width: 2 * feet, Depth: 4 * feet, CableManagerWidth: 0.2 * feet}
}

func rackXs(racks []Rack) []float64 {
	xs := make([]float64, len(racks))
	for i, r := range racks {
		xs[i] = r.X
	}
	return xs
}

func TestAutoPackSingleRowCentered(t *testing.T) {
	racks, report := AutoPack(defaultRackParams(), defaultSite())
	require.Len(t, racks, 4)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Warnings)

	assert.Equal(t, []float64{240, 270, 300, 330}, rackXs(racks))
	for i, r := range racks {
		assert.Equal(t, 157.5, r.Y)
		assert.Equal(t, RackLabel(i+1), r.Label)
	}
	assert.Equal(t, "Rack\n1", racks[0].Label)
}

func TestAutoPackCableManagersWidenPitch(t *testing.T) {
	p := defaultRackParams()
	p.CableManagers = true
	racks, _ := AutoPack(p, defaultSite())
	require.Len(t, racks, 4)
	assert.Equal(t, []float64{235.5, 268.5, 301.5, 334.5}, rackXs(racks))
}

func TestAutoPackLastRowTakesRemainder(t *testing.T) {
	p := defaultRackParams()
	p.Count = 5
	p.Rows = 2
	racks, report := AutoPack(p, defaultSite())
	require.Len(t, racks, 5)
	assert.Empty(t, report.Warnings)

	// Two rows of 60 px plus the 48 px aisle, centered in 375 px.
	assert.Equal(t, []float64{255, 285, 315, 270, 300}, rackXs(racks))
	for _, r := range racks[:3] {
		assert.Equal(t, 103.5, r.Y)
	}
	for _, r := range racks[3:] {
		assert.Equal(t, 103.5+60+RowGap, r.Y)
	}
	assert.Equal(t, "Rack\n5", racks[4].Label)
}

func TestAutoPackSkipsDoorSwing(t *testing.T) {
	// A shallow room puts the middle slots inside the door swing.
	racks, report := AutoPack(defaultRackParams(), rectSite(geo.Sz(600, 100)))
	require.Len(t, racks, 2)
	assert.Equal(t, []float64{240, 330}, rackXs(racks))
	assert.Equal(t, "Rack\n1", racks[0].Label)
	assert.Equal(t, "Rack\n2", racks[1].Label)

	assert.True(t, report.Valid, "under-provisioning is not an error")
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "racks.count", report.Warnings[0].Field)
}

func TestAutoPackSkipsSlotsOutsideOutline(t *testing.T) {
	site := defaultSite()
	// Notch out the middle of the bottom half so the two inner slots fall
	// outside the room.
	site.Polygon = geo.NewPolygon(
		geo.Pt(0, 0), geo.Pt(600, 0), geo.Pt(600, 375),
		geo.Pt(329, 375), geo.Pt(329, 200), geo.Pt(271, 200), geo.Pt(271, 375),
		geo.Pt(0, 375),
	)
	racks, report := AutoPack(defaultRackParams(), site)
	assert.Equal(t, []float64{240, 330}, rackXs(racks))
	assert.Len(t, report.Warnings, 1)
}

func TestAutoPackSkipsSlotFlushWithRightWall(t *testing.T) {
	// The row exactly fills a 120 px room, so the last rack's right edge lies
	// on the right wall, which counts as outside.
	racks, report := AutoPack(defaultRackParams(), rectSite(geo.Sz(120, 375)))
	assert.Equal(t, []float64{0, 30, 60}, rackXs(racks))
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "placed 3 of 4 racks", report.Warnings[0].Message)
}

func TestAutoPackNothingRequested(t *testing.T) {
	p := defaultRackParams()
	p.Count = 0
	racks, report := AutoPack(p, defaultSite())
	assert.NotNil(t, racks)
	assert.Empty(t, racks)
	assert.True(t, report.Valid)

	p = defaultRackParams()
	p.Rows = 0
	racks, _ = AutoPack(p, defaultSite())
	assert.Empty(t, racks)
}

func TestAutoPackDeterministic(t *testing.T) {
	p := defaultRackParams()
	p.Count = 7
	p.Rows = 3
	p.CableManagers = true
	a, _ := AutoPack(p, defaultSite())
	b, _ := AutoPack(p, defaultSite())
	assert.Equal(t, a, b)
}

func TestAutoPackNeverExceedsCount(t *testing.T) {
	p := defaultRackParams()
	for count := 1; count <= 12; count++ {
		for rows := 1; rows <= 4; rows++ {
			p.Count = count
			p.Rows = rows
			racks, _ := AutoPack(p, defaultSite())
			assert.LessOrEqual(t, len(racks), count)
			for _, r := range racks {
				assert.True(t, ValidatePlacement(r.Pos(), p.Size(), defaultSite()))
			}
		}
	}
}

func TestSnapToGridUsesFirstRackAsAnchor(t *testing.T) {
	p := defaultRackParams()
	racks, _ := AutoPack(p, defaultSite())

	assert.Equal(t, geo.Pt(300, 157.5), SnapToGrid(2, racks, p))

	racks[0].X = 100
	racks[0].Y = 100
	assert.Equal(t, geo.Pt(160, 100), SnapToGrid(2, racks, p))
	assert.Equal(t, geo.Pt(100, 100), SnapToGrid(0, racks, p))
}

func TestSnapToGridSecondRow(t *testing.T) {
	p := defaultRackParams()
	p.Count = 6
	p.Rows = 2
	p.CableManagers = true
	racks := []Rack{{X: 10, Y: 20}}

	assert.Equal(t, geo.Pt(10+33, 20+60+RowGap), SnapToGrid(4, racks, p))
}

func TestSnapToGridNoRacks(t *testing.T) {
	assert.Equal(t, geo.Point2D{}, SnapToGrid(3, nil, defaultRackParams()))
}

func TestValidatePlacement(t *testing.T) {
	size := defaultRackParams().Size()
	tests := []struct {
		name string
		pos  geo.Point2D
		want bool
	}{
		{"center", geo.Pt(240, 157.5), true},
		{"flush top left", geo.Pt(0, 0), true},
		{"flush bottom right", geo.Pt(570, 315), false},
		{"just inside bottom right", geo.Pt(569, 314), true},
		{"past right wall", geo.Pt(590, 157.5), false},
		{"in door swing", geo.Pt(285, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePlacement(tt.pos, size, defaultSite()))
		})
	}
}

func TestParamsPerRow(t *testing.T) {
	assert.Equal(t, 3, RackParams{Count: 5, Rows: 2}.PerRow())
	assert.Equal(t, 1, RackParams{Count: 0, Rows: 2}.PerRow())
	assert.Equal(t, 4, RackParams{Count: 4, Rows: 0}.PerRow())
}
