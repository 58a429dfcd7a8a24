package scene2d

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/session"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEditor(t *testing.T, s *spec.RoomSpec) *session.Editor {
	t.Helper()
	if s == nil {
		s = spec.Default()
	}
	return session.New(s, session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestAssemble2DDefaultRoom(t *testing.T) {
	scene := Assemble2D(testEditor(t, nil).State())

	assert.Equal(t, [2]float64{600, 375}, scene.Room)
	assert.Equal(t, [][2]float64{{0, 0}, {600, 0}, {600, 375}, {0, 375}}, scene.Polygon)
	assert.Equal(t, "feet", scene.Metadata.Unit)
	assert.Equal(t, 40.0, scene.Metadata.Width)
	assert.Equal(t, 25.0, scene.Metadata.Length)
	assert.Equal(t, 4, scene.Metadata.RacksPlaced)
	assert.Equal(t, 4, scene.Metadata.RacksRequested)
	assert.NotEmpty(t, scene.Metadata.GeneratedAt)

	require.NotNil(t, scene.Door)
	assert.Equal(t, "top", scene.Door.Side)
	assert.InDelta(t, 277.5, scene.Door.GapStart[0], 1e-9)
	assert.InDelta(t, 322.5, scene.Door.GapEnd[0], 1e-9)
	assert.Equal(t, [2]float64{300, 0}, scene.Door.Anchor)

	require.Len(t, scene.Racks, 4)
	assert.Equal(t, [2]float64{240, 157.5}, scene.Racks[0].Position)
	assert.Equal(t, [2]float64{30, 60}, scene.Racks[0].Size)
	assert.Equal(t, "Rack\n1", scene.Racks[0].Label)
	assert.Equal(t, 3, scene.Racks[3].Index)

	assert.Empty(t, scene.CableManagers)
	assert.NotNil(t, scene.CableManagers)
	assert.Empty(t, scene.ACUnits)
	assert.Equal(t, 1.0, scene.Viewport.Fit)
}

func TestAssemble2DCableManagers(t *testing.T) {
	s := spec.Default()
	s.Racks.CableManagers = true
	scene := Assemble2D(testEditor(t, s).State())

	require.Len(t, scene.CableManagers, 3)
	first := scene.Racks[0].Position
	assert.Equal(t, [2]float64{first[0] + 30, first[1]}, scene.CableManagers[0].Position)
	assert.InDelta(t, 3, scene.CableManagers[0].Size[0], 1e-9)
	assert.Equal(t, 60.0, scene.CableManagers[0].Size[1])
}

func TestAssemble2DACUnits(t *testing.T) {
	e := testEditor(t, nil)
	a, _, err := e.DropAsset(session.AssetACUnit, geo.Pt(100, 2))
	require.NoError(t, err)
	b, _, err := e.DropAsset(session.AssetACUnit, geo.Pt(2, 100))
	require.NoError(t, err)

	scene := Assemble2D(e.State())
	require.Len(t, scene.ACUnits, 2)
	assert.Equal(t, a.ID, scene.ACUnits[0].ID)
	assert.Equal(t, "top", scene.ACUnits[0].Side)
	assert.InDelta(t, 92.5, scene.ACUnits[0].Position[0], 1e-9)
	assert.Equal(t, 0.0, scene.ACUnits[0].Position[1])
	assert.Equal(t, [2]float64{45, 15}, scene.ACUnits[0].Size)
	assert.False(t, scene.ACUnits[0].Selected)
	assert.True(t, scene.ACUnits[1].Selected, "last drop is selected")
	assert.Equal(t, b.ID, scene.ACUnits[1].ID)
	assert.Equal(t, "left", scene.ACUnits[1].Side)
	assert.Equal(t, 2, scene.Metadata.ACCount)
}

func TestAssemble2DWithoutDoor(t *testing.T) {
	st := testEditor(t, nil).State()
	st.Polygon = geo.NewPolygon(geo.Pt(0, 0), geo.Pt(10, 10))
	scene := Assemble2D(st)
	assert.Nil(t, scene.Door)
}

func TestAssemble2DLargeRoomViewport(t *testing.T) {
	s := spec.Default()
	s.Room.Width = 100
	s.Room.Length = 50
	scene := Assemble2D(testEditor(t, s).State())

	assert.Equal(t, [2]float64{1500, 750}, scene.Room)
	assert.InDelta(t, 0.6, scene.Viewport.Fit, 1e-9)
	assert.InDelta(t, 0, scene.Viewport.Offset.X, 1e-9)
	assert.InDelta(t, 25, scene.Viewport.Offset.Y, 1e-9)
}
