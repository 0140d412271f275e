package colorspace

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit color with straight (non-premultiplied) alpha.
type Color struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// ARGB returns a Color with the given alpha.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromPacked unpacks a 0xAARRGGBB value.
func FromPacked(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Packed returns the color as 0xAARRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex returns the "#RRGGBB" form. Alpha is not included.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA converts to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color, undoing alpha premultiplication.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA"; the leading '#' is optional.
// Six-digit values are opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: hex color %q", ErrInvalidArgument, s)
		}
		return RGB(uint8(val>>16), uint8(val>>8), uint8(val)), nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: hex color %q", ErrInvalidArgument, s)
		}
		return ARGB(uint8(val), uint8(val>>24), uint8(val>>16), uint8(val>>8)), nil
	default:
		return Color{}, fmt.Errorf("%w: hex color %q must have 6 or 8 digits", ErrInvalidArgument, s)
	}
}
