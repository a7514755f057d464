package pdftable

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with 0..255 components
// as used by gofpdf.
type Color struct {
	R, G, B int
}

// Colors used by the table presets.
var (
	Black      = Color{0, 0, 0}
	Grey       = Color{128, 128, 128}
	LightGrey  = Color{211, 211, 211}
	WhiteSmoke = Color{245, 245, 245}
	HeaderBlue = Color{0x4F, 0x81, 0xBD}
	BandGrey   = Color{0xF2, 0xF2, 0xF2}
)

// ParseHexColor parses a 6 hex digit RGB string
// with or without a leading '#' like "4F81BD" or "#4F81BD".
func ParseHexColor(s string) (Color, error) {
	hexStr := strings.TrimPrefix(s, "#")
	if len(hexStr) != 6 {
		return Color{}, fmt.Errorf("invalid hex color: %q", s)
	}
	v, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", s)
	}
	return Color{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, nil
}
