package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the project file format written by this build.
const Version = "0.1.0"

// ProjectFile is the file LoadProject looks for in a project directory.
const ProjectFile = "room.yaml"

// Default returns the starting layout of a new project: a 40x25 ft room with
// a door at the middle of the top wall and four racks in one row.
func Default() *RoomSpec {
	return &RoomSpec{
		SpecVersion: Version,
		Room: RoomDef{
			Unit:    "feet",
			Width:   40,
			Length:  25,
			Outline: [][2]float64{{0, 0}, {60, 0}, {60, 30}, {0, 30}},
		},
		Door: DoorDef{Side: "top", Offset: 0.5},
		Racks: RackDef{
			Count:             4,
			Rows:              1,
			Width:             2,
			Depth:             4,
			CableManagerWidth: 0.2,
			SnapToGrid:        true,
		},
		Canvas: CanvasDef{Width: 900, Height: 500},
	}
}

// Parse decodes a room spec from YAML. Fields missing from the document keep
// their Default values.
func Parse(data []byte) (*RoomSpec, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing room YAML: %w", err)
	}
	return s, nil
}

// Load reads a room spec from a YAML file.
func Load(path string) (*RoomSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading room file: %w", err)
	}
	return Parse(data)
}

// LoadProject loads a room spec from a project directory.
// It looks for room.yaml in the given directory.
func LoadProject(projectDir string) (*RoomSpec, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}

// Save writes s as YAML to path.
func Save(path string, s *RoomSpec) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding room YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing room file: %w", err)
	}
	return nil
}
