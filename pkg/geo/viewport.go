package geo

import "math"

// DefaultCanvas is the preview area the room is fitted into.
var DefaultCanvas = Size{W: 900, H: 500}

// Viewport maps room pixels to canvas pixels. The room is scaled down (never
// up) to fit the canvas and centered in it.
type Viewport struct {
	Canvas Size    `json:"canvas"`
	Fit    float64 `json:"fit"`
	Offset Point2D `json:"offset"`
}

// NewViewport fits room into canvas.
func NewViewport(canvas, room Size) Viewport {
	fit := 1.0
	if room.W > 0 {
		fit = math.Min(fit, canvas.W/room.W)
	}
	if room.H > 0 {
		fit = math.Min(fit, canvas.H/room.H)
	}
	return Viewport{
		Canvas: canvas,
		Fit:    fit,
		Offset: Point2D{
			X: (canvas.W - room.W*fit) / 2,
			Y: (canvas.H - room.H*fit) / 2,
		},
	}
}

// ToPhysical converts a canvas point to room pixel space.
func (v Viewport) ToPhysical(screen Point2D) Point2D {
	if v.Fit == 0 {
		return screen.Sub(v.Offset)
	}
	return screen.Sub(v.Offset).Scale(1 / v.Fit)
}

// ToScreen converts a room pixel point to canvas space.
func (v Viewport) ToScreen(p Point2D) Point2D {
	return p.Scale(v.Fit).Add(v.Offset)
}
