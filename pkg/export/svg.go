package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
)

const (
	cornerRadius    = 6
	labelLineHeight = 14
	labelStyle      = "text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:12px;fill:%s"
)

// encodeSVG writes the scene as an SVG document the size of the preview
// canvas. Coordinates are rounded to whole canvas pixels.
func encodeSVG(w io.Writer, scene *scene2d.Scene2D) error {
	vp := viewport(scene)
	canvas := svg.New(w)
	canvas.Start(int(math.Ceil(vp.Canvas.W)), int(math.Ceil(vp.Canvas.H)))
	canvas.Rect(0, 0, int(math.Ceil(vp.Canvas.W)), int(math.Ceil(vp.Canvas.H)), "fill:"+hex(colBackground))

	xs := make([]int, len(scene.Polygon))
	ys := make([]int, len(scene.Polygon))
	for i, p := range scene.Polygon {
		xs[i], ys[i] = screen(vp, pt(p))
	}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g",
		hex(colRoomFill), hex(colRoomStroke), roomStrokeWidth))

	if d := scene.Door; d != nil {
		svgLine(canvas, vp, pt(d.GapStart), pt(d.GapEnd),
			fmt.Sprintf("stroke:%s;stroke-width:%g", hex(colDoorGap), doorGapWidth))
		svgLine(canvas, vp, pt(d.LeafStart), pt(d.LeafEnd),
			fmt.Sprintf("stroke:%s;stroke-width:%g", hex(colDoorLeaf), doorLeafWidth))
		cx, cy := screen(vp, pt(d.Anchor))
		canvas.Circle(cx, cy, handleRadius, fmt.Sprintf("fill:%s;stroke:#ffffff;stroke-width:2", hex(colHandle)))
	}

	canvas.Gid("racks")
	for _, rk := range scene.Racks {
		svgBox(canvas, vp, rect(rk.Position, rk.Size),
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", hex(colRackFill), hex(colRoomStroke), rackStrokeWidth))
		svgLabel(canvas, vp, rect(rk.Position, rk.Size), rk.Label)
	}
	for _, cm := range scene.CableManagers {
		svgBox(canvas, vp, rect(cm.Position, cm.Size),
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", hex(colCMFill), hex(colRoomStroke), cmStrokeWidth))
	}
	canvas.Gend()

	canvas.Gid("ac-units")
	for _, ac := range scene.ACUnits {
		stroke, width := colACStroke, acStrokeWidth
		if ac.Selected {
			stroke, width = colSelected, acSelectedWidth
		}
		svgBox(canvas, vp, rect(ac.Position, ac.Size),
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", hex(colACFill), hex(stroke), width))
		svgLabel(canvas, vp, rect(ac.Position, ac.Size), acLabel)
	}
	canvas.Gend()

	canvas.End()
	return nil
}

func screen(vp geo.Viewport, p geo.Point2D) (int, int) {
	s := vp.ToScreen(p)
	return int(math.Round(s.X)), int(math.Round(s.Y))
}

func svgLine(canvas *svg.SVG, vp geo.Viewport, a, b geo.Point2D, style string) {
	x1, y1 := screen(vp, a)
	x2, y2 := screen(vp, b)
	canvas.Line(x1, y1, x2, y2, style)
}

func svgBox(canvas *svg.SVG, vp geo.Viewport, b geo.Rect, style string) {
	x, y := screen(vp, b.Min())
	w := int(math.Round(b.W * vp.Fit))
	h := int(math.Round(b.H * vp.Fit))
	canvas.Roundrect(x, y, w, h, cornerRadius, cornerRadius, style)
}

func svgLabel(canvas *svg.SVG, vp geo.Viewport, b geo.Rect, text string) {
	x, y := screen(vp, b.Center())
	lines := strings.Split(text, "\n")
	y -= (len(lines) - 1) * labelLineHeight / 2
	for i, line := range lines {
		canvas.Text(x, y+i*labelLineHeight, line, fmt.Sprintf(labelStyle, hex(colLabel)))
	}
}
