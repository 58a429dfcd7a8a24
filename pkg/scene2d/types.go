package scene2d

import "github.com/ChicagoDave/roomplanner/pkg/geo"

// Scene2D is the complete top-down scene handed to renderers. Coordinates are
// room pixels; Viewport maps them onto the preview canvas.
type Scene2D struct {
	Metadata      Metadata         `json:"metadata"`
	Room          [2]float64       `json:"room"`
	Polygon       [][2]float64     `json:"polygon"`
	Door          *Door2D          `json:"door,omitempty"`
	Racks         []Rack2D         `json:"racks"`
	CableManagers []CableManager2D `json:"cable_managers"`
	ACUnits       []ACUnit2D       `json:"ac_units"`
	Viewport      geo.Viewport     `json:"viewport"`
}

// Metadata holds room-level summary data.
type Metadata struct {
	Unit           string  `json:"unit"`
	Scale          float64 `json:"scale"`
	Width          float64 `json:"width"`
	Length         float64 `json:"length"`
	RacksPlaced    int     `json:"racks_placed"`
	RacksRequested int     `json:"racks_requested"`
	ACCount        int     `json:"ac_count"`
	Exporting      bool    `json:"exporting"`
	GeneratedAt    string  `json:"generated_at"`
}

// Door2D is the door opening, its swing leaf and the drag handle.
type Door2D struct {
	Side      string     `json:"side"`
	Offset    float64    `json:"offset"`
	Edge      int        `json:"edge"`
	GapStart  [2]float64 `json:"gap_start"`
	GapEnd    [2]float64 `json:"gap_end"`
	LeafStart [2]float64 `json:"leaf_start"`
	LeafEnd   [2]float64 `json:"leaf_end"`
	Anchor    [2]float64 `json:"anchor"`
}

// Rack2D is a rack footprint with its label.
type Rack2D struct {
	Index    int        `json:"index"`
	Label    string     `json:"label"`
	Position [2]float64 `json:"position"`
	Size     [2]float64 `json:"size"`
}

// CableManager2D is the strip drawn to the right of every rack but the last.
type CableManager2D struct {
	Position [2]float64 `json:"position"`
	Size     [2]float64 `json:"size"`
}

// ACUnit2D is an AC unit resolved to its wall position.
type ACUnit2D struct {
	ID       string     `json:"id"`
	Side     string     `json:"side"`
	Offset   float64    `json:"offset"`
	Position [2]float64 `json:"position"`
	Size     [2]float64 `json:"size"`
	Selected bool       `json:"selected"`
}
