package export

import (
	"bytes"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
	"github.com/ChicagoDave/roomplanner/pkg/session"
	"github.com/ChicagoDave/roomplanner/pkg/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T) *scene2d.Scene2D {
	t.Helper()
	e := session.New(spec.Default(), session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	_, res, err := e.DropAsset(session.AssetACUnit, geo.Pt(100, 2))
	require.NoError(t, err)
	require.True(t, res.Applied())
	return scene2d.Assemble2D(e.State())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"jpg", JPEG},
		{".jpeg", JPEG},
		{"pdf", PDF},
		{"svg", SVG},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "image/png", PNG.ContentType())
	assert.Equal(t, "application/pdf", PDF.ContentType())
	assert.Equal(t, "layout.jpg", JPEG.Filename())
	assert.Equal(t, "layout.svg", SVG.Filename())
}

func TestEncodeSignatures(t *testing.T) {
	scene := testScene(t)
	tests := []struct {
		format Format
		prefix []byte
	}{
		{PNG, []byte("\x89PNG\r\n\x1a\n")},
		{JPEG, []byte{0xff, 0xd8, 0xff}},
		{PDF, []byte("%PDF-")},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, scene, tt.format))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), tt.prefix))
		})
	}
}

func TestEncodeSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testScene(t), SVG))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, ">Rack</text>")
	assert.Contains(t, out, ">1</text>")
	assert.Contains(t, out, "AC Unit")
	assert.Contains(t, out, hex(colSelected))
	assert.Contains(t, out, "</svg>")
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, Encode(io.Discard, testScene(t), Format("gif")))
}

func TestPageSizeOrientation(t *testing.T) {
	w, h, o := PageSize(&scene2d.Scene2D{Room: [2]float64{600, 375}})
	assert.Equal(t, 600.0, w)
	assert.Equal(t, 375.0, h)
	assert.Equal(t, "L", o)

	_, _, o = PageSize(&scene2d.Scene2D{Room: [2]float64{375, 600}})
	assert.Equal(t, "P", o)
	_, _, o = PageSize(&scene2d.Scene2D{Room: [2]float64{375, 375}})
	assert.Equal(t, "P", o)
}

func TestPDFPageMatchesRoom(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testScene(t), PDF))
	assert.Contains(t, buf.String(), "/MediaBox [0 0 600.00 375.00]")
}

func TestRenderPlacesRoomInCanvas(t *testing.T) {
	img := Render(testScene(t))
	require.Equal(t, 900, img.Bounds().Dx())
	require.Equal(t, 500, img.Bounds().Dy())

	// The 600x375 room is centered at fit 1: offset (150, 62.5).
	assert.Equal(t, colBackground, img.RGBAAt(10, 10))
	assertColorNear(t, colRoomFill, img.RGBAAt(250, 162))
	assertColorNear(t, colRackFill, img.RGBAAt(393, 226))
}

func assertColorNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	near := func(a, b uint8) bool { return math.Abs(float64(a)-float64(b)) <= 2 }
	assert.True(t, near(want.R, got.R) && near(want.G, got.G) && near(want.B, got.B),
		"want %v, got %v", want, got)
}

func TestRenderRoundTripsThroughPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testScene(t), PNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 900, img.Bounds().Dx())
}
