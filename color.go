package skychart

import "image/color"

// Color is a packed RGBA color with 8 bits per channel.
// An alpha of 255 means fully opaque. The backing Pixmap carries no real
// alpha channel; partially transparent colors are resolved at draw time
// by blending against the current background pixel (see Blend).
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common chart colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = Color{}
)

// Packed returns the color as a single 0xRRGGBBAA integer, the format
// stored in a Pixmap's raw pixel array.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Unpack converts a packed 0xRRGGBBAA integer back into a Color.
func Unpack(p uint32) Color {
	return Color{
		R: uint8(p >> 24),
		G: uint8(p >> 16),
		B: uint8(p >> 8),
		A: uint8(p),
	}
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a packed Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an
// optional leading '#'. Malformed strings yield opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		}
	}
}

// div255 divides x by 255 using Alvy Ray Smith's exact shift formula.
// It avoids integer division in the per-pixel blend path.
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 exactly.
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint32(a) * uint32(b)))
}

// Blend mixes fg into bg with the given 8-bit weight using integer
// premultiplied arithmetic: out = (bg*(255-w) + fg*w) / 255 per channel.
// A weight of 255 returns fg's channels; a weight of 0 returns bg's.
// The result is always opaque, because the backing buffer has no alpha
// channel to carry residual transparency.
func Blend(fg, bg Color, w uint8) Color {
	iw := 255 - w
	return Color{
		R: uint8(div255(uint32(bg.R)*uint32(iw) + uint32(fg.R)*uint32(w))),
		G: uint8(div255(uint32(bg.G)*uint32(iw) + uint32(fg.G)*uint32(w))),
		B: uint8(div255(uint32(bg.B)*uint32(iw) + uint32(fg.B)*uint32(w))),
		A: 255,
	}
}
