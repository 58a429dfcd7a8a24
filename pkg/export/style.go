package export

import (
	"fmt"
	"image/color"
)

var (
	colBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colRoomFill   = color.RGBA{0xf4, 0xf8, 0xff, 0xff}
	colRoomStroke = color.RGBA{0x19, 0x76, 0xd2, 0xff}
	colDoorGap    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colDoorLeaf   = color.RGBA{0x44, 0x44, 0x44, 0xff}
	colHandle     = color.RGBA{0x00, 0x7d, 0xc3, 0xff}
	colRackFill   = color.RGBA{0xe8, 0xf1, 0xfb, 0xff}
	colCMFill     = color.RGBA{0xd2, 0xe8, 0xff, 0xff}
	colACFill     = color.RGBA{0xe8, 0xf3, 0xff, 0xff}
	colACStroke   = color.RGBA{0x00, 0x7d, 0xc3, 0xff}
	colSelected   = color.RGBA{0xd3, 0x2f, 0x2f, 0xff}
	colLabel      = color.RGBA{0x00, 0x3a, 0x66, 0xff}
)

const (
	roomStrokeWidth = 2.0
	doorGapWidth    = 6.0
	doorLeafWidth   = 3.0
	handleRadius    = 7.0
	rackStrokeWidth = 2.0
	cmStrokeWidth   = 1.0
	acStrokeWidth   = 2.0
	acSelectedWidth = 4.0
)

// acLabel is drawn on every AC unit.
const acLabel = "AC Unit"

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
