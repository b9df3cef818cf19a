package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns "#rrggbb  (r,g,b)", the form copied to the clipboard.
func (c Color) String() string {
	return fmt.Sprintf("%s  (%d,%d,%d)", c.Hex(), c.R, c.G, c.B)
}

// PickColor samples img at (x, y). Coordinates outside the image are clamped
// to the nearest edge pixel.
func PickColor(img image.Image, x, y int) Color {
	b := img.Bounds()
	x = min(max(x, b.Min.X), b.Max.X-1)
	y = min(max(y, b.Min.Y), b.Max.Y-1)
	r, g, bl, _ := img.At(x, y).RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
}

// ParseHexColor accepts "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
