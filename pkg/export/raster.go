package export

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ChicagoDave/roomplanner/pkg/geo"
	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
)

// circleSegments is the number of sides used to approximate a circle.
const circleSegments = 24

// Render draws the scene onto an image the size of the preview canvas, using
// the scene's viewport to place the room.
func Render(scene *scene2d.Scene2D) *image.RGBA {
	vp := viewport(scene)
	w := max(int(math.Ceil(vp.Canvas.W)), 1)
	h := max(int(math.Ceil(vp.Canvas.H)), 1)

	r := &rasterizer{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
		vp:  vp,
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(colBackground), image.Point{}, draw.Src)

	room := toPoints(scene.Polygon)
	r.fill(room, colRoomFill)
	r.outline(room, roomStrokeWidth, colRoomStroke)

	if d := scene.Door; d != nil {
		r.line(pt(d.GapStart), pt(d.GapEnd), doorGapWidth, colDoorGap)
		r.line(pt(d.LeafStart), pt(d.LeafEnd), doorLeafWidth, colDoorLeaf)
		r.circle(pt(d.Anchor), handleRadius/vp.Fit, colHandle)
	}

	for _, rk := range scene.Racks {
		box := rect(rk.Position, rk.Size)
		r.box(box, colRackFill, rackStrokeWidth, colRoomStroke)
		r.label(box, rk.Label)
	}
	for _, cm := range scene.CableManagers {
		r.box(rect(cm.Position, cm.Size), colCMFill, cmStrokeWidth, colRoomStroke)
	}
	for _, ac := range scene.ACUnits {
		stroke, width := colACStroke, acStrokeWidth
		if ac.Selected {
			stroke, width = colSelected, acSelectedWidth
		}
		box := rect(ac.Position, ac.Size)
		r.box(box, colACFill, width, stroke)
		r.label(box, acLabel)
	}
	return r.img
}

type rasterizer struct {
	img *image.RGBA
	z   *vector.Rasterizer
	vp  geo.Viewport
}

// fill paints the polygon given in room pixels.
func (r *rasterizer) fill(pts []geo.Point2D, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	for i, p := range pts {
		s := r.vp.ToScreen(p)
		if i == 0 {
			r.z.MoveTo(float32(s.X), float32(s.Y))
		} else {
			r.z.LineTo(float32(s.X), float32(s.Y))
		}
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// line strokes a segment given in room pixels with a width in canvas pixels.
func (r *rasterizer) line(a, b geo.Point2D, width float64, c color.Color) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return
	}
	// Half the width, converted back to room pixels so the quad is built in
	// the same space as the endpoints.
	half := width / 2 / r.vp.Fit
	n := geo.Pt(-d.Y/length*half, d.X/length*half)
	r.fill([]geo.Point2D{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, c)
}

func (r *rasterizer) outline(pts []geo.Point2D, width float64, c color.Color) {
	for i := range pts {
		r.line(pts[i], pts[(i+1)%len(pts)], width, c)
	}
}

func (r *rasterizer) box(b geo.Rect, fillCol color.Color, width float64, stroke color.Color) {
	corners := b.Corners()
	pts := []geo.Point2D{corners[0], corners[1], corners[2], corners[3]}
	r.fill(pts, fillCol)
	r.outline(pts, width, stroke)
}

func (r *rasterizer) circle(center geo.Point2D, radius float64, c color.Color) {
	pts := make([]geo.Point2D, circleSegments)
	for i := range pts {
		pts[i] = center.Polar(radius, 2*math.Pi*float64(i)/circleSegments)
	}
	r.fill(pts, c)
}

// label centers text in a box given in room pixels, one line per "\n".
func (r *rasterizer) label(b geo.Rect, text string) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(colLabel),
		Face: basicfont.Face7x13,
	}
	c := r.vp.ToScreen(b.Center())
	m := basicfont.Face7x13.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := m.Height.Ceil()

	lines := strings.Split(text, "\n")
	top := int(math.Round(c.Y)) - len(lines)*lineHeight/2
	for i, line := range lines {
		width := d.MeasureString(line).Ceil()
		d.Dot = fixed.P(int(math.Round(c.X))-width/2, top+i*lineHeight+ascent)
		d.DrawString(line)
	}
}

// viewport returns the scene's viewport, or one fitting the room into the
// default canvas when the scene carries none.
func viewport(scene *scene2d.Scene2D) geo.Viewport {
	vp := scene.Viewport
	if vp.Fit <= 0 || vp.Canvas.W <= 0 || vp.Canvas.H <= 0 {
		vp = geo.NewViewport(geo.DefaultCanvas, geo.Sz(scene.Room[0], scene.Room[1]))
	}
	return vp
}

func pt(p [2]float64) geo.Point2D {
	return geo.Pt(p[0], p[1])
}

func rect(pos, size [2]float64) geo.Rect {
	return geo.Rect{X: pos[0], Y: pos[1], W: size[0], H: size[1]}
}

func toPoints(pairs [][2]float64) []geo.Point2D {
	out := make([]geo.Point2D, len(pairs))
	for i, p := range pairs {
		out[i] = pt(p)
	}
	return out
}
