package export

import (
	"bytes"
	"image/jpeg"
	"io"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
)

const pdfImageName = "layout"

// PageSize returns the PDF page for a room: its pixel dimensions in points,
// landscape when wider than long.
func PageSize(scene *scene2d.Scene2D) (w, h float64, orientation string) {
	w, h = scene.Room[0], scene.Room[1]
	if w <= 0 || h <= 0 {
		w, h = viewport(scene).Canvas.W, viewport(scene).Canvas.H
	}
	if w > h {
		return w, h, "L"
	}
	return w, h, "P"
}

// encodePDF places the rendered canvas on a single page the size of the room.
func encodePDF(w io.Writer, scene *scene2d.Scene2D) error {
	var img bytes.Buffer
	if err := jpeg.Encode(&img, Render(scene), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return err
	}

	pw, ph, orientation := PageSize(scene)
	// fpdf swaps the page dimensions for landscape, so the short side always
	// goes first.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: math.Min(pw, ph), Ht: math.Max(pw, ph)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Room layout", true)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader(pdfImageName, opts, &img)
	pdf.ImageOptions(pdfImageName, 0, 0, pw, ph, false, opts, 0, "")
	return pdf.Output(w)
}
