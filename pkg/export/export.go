// Package export turns an assembled scene into PNG, JPEG, PDF or SVG bytes.
// Raster formats draw the preview canvas as the editor shows it; the PDF page
// is sized to the room in pixels and landscape when the room is wider than it
// is long.
package export

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
)

// Format is an export file type.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	PDF  Format = "pdf"
	SVG  Format = "svg"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, JPEG, PDF, SVG}

// ParseFormat converts a name or file extension to a Format. "jpg" is
// accepted for JPEG.
func ParseFormat(v string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(v, "."))); f {
	case PNG, JPEG, PDF, SVG:
		return f, nil
	case "jpg":
		return JPEG, nil
	}
	return "", fmt.Errorf("unknown export format %q", v)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case PDF:
		return "application/pdf"
	case SVG:
		return "image/svg+xml"
	}
	return "application/octet-stream"
}

// Filename is the default download name for f.
func (f Format) Filename() string {
	if f == JPEG {
		return "layout.jpg"
	}
	return "layout." + string(f)
}

const jpegQuality = 90

// Encode writes the scene to w in the given format.
func Encode(w io.Writer, scene *scene2d.Scene2D, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, Render(scene))
	case JPEG:
		err = jpeg.Encode(w, Render(scene), &jpeg.Options{Quality: jpegQuality})
	case PDF:
		err = encodePDF(w, scene)
	case SVG:
		err = encodeSVG(w, scene)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return nil
}
