package spec

// RoomSpec is the top-level description of a room layout project.
type RoomSpec struct {
	SpecVersion string    `yaml:"spec_version" json:"spec_version"`
	Room        RoomDef   `yaml:"room" json:"room"`
	Door        DoorDef   `yaml:"door" json:"door"`
	Racks       RackDef   `yaml:"racks" json:"racks"`
	ACUnits     []ACDef   `yaml:"ac_units" json:"ac_units"`
	Canvas      CanvasDef `yaml:"canvas" json:"canvas"`
}

// RoomDef sizes the room in physical units. Outline is an optional polygon in
// any coordinate space; it is rescaled to fill the room rectangle.
type RoomDef struct {
	Unit    string       `yaml:"unit" json:"unit"`
	Width   float64      `yaml:"width" json:"width"`
	Length  float64      `yaml:"length" json:"length"`
	Outline [][2]float64 `yaml:"outline,omitempty" json:"outline,omitempty"`
}

// DoorDef places the door on a wall. Offset is normalized to [0,1].
type DoorDef struct {
	Side   string  `yaml:"side" json:"side"`
	Offset float64 `yaml:"offset" json:"offset"`
}

// RackDef drives the rack auto-pack. Dimensions are physical units.
type RackDef struct {
	Count             int     `yaml:"count" json:"count"`
	Rows              int     `yaml:"rows" json:"rows"`
	Width             float64 `yaml:"width" json:"width"`
	Depth             float64 `yaml:"depth" json:"depth"`
	CableManagers     bool    `yaml:"cable_managers" json:"cable_managers"`
	CableManagerWidth float64 `yaml:"cable_manager_width" json:"cable_manager_width"`
	SnapToGrid        bool    `yaml:"snap_to_grid" json:"snap_to_grid"`
}

// ACDef is an AC unit placed against a wall. Width and Depth are physical
// units.
type ACDef struct {
	Side   string  `yaml:"side" json:"side"`
	Offset float64 `yaml:"offset" json:"offset"`
	Width  float64 `yaml:"width" json:"width"`
	Depth  float64 `yaml:"depth" json:"depth"`
}

// CanvasDef is the preview area in screen pixels.
type CanvasDef struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}
