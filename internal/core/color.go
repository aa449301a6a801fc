package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA colour. A is coverage: 255 is opaque.
type Color struct {
	R, G, B, A uint8
}

// Common colours.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}
)

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex parses "#RRGGBB" or "#RRGGBBAA". Malformed input yields opaque black.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("color: invalid hex %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color: invalid hex %q: %w", s, err)
	}
	if len(s) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// HSL builds an opaque colour from hue in degrees and saturation/lightness in [0, 1].
func HSL(h, s, l float64) Color {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the colour as "#rrggbb" (alpha is dropped).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns the colour with its coverage scaled to a in [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(ClampF(a, 0, 1) * 255)
	return c
}

// Over composites src onto the opaque dst and returns an opaque result.
func Over(dst, src Color) Color {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return Color{R: dst.R, G: dst.G, B: dst.B, A: 255}
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(d)*(1-a) + float64(s)*a + 0.5)
	}
	return Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// Mix interpolates between two colours, including alpha.
func Mix(a, b Color, t float64) Color {
	t = ClampF(t, 0, 1)
	ch := func(x, y uint8) uint8 {
		return uint8(Lerp(float64(x), float64(y), t) + 0.5)
	}
	return Color{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// RGBA implements image/color.Color so front ends can pass Color straight
// to drawing APIs.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R) * uint32(c.A) / 255
	r |= r << 8
	g = uint32(c.G) * uint32(c.A) / 255
	g |= g << 8
	b = uint32(c.B) * uint32(c.A) / 255
	b |= b << 8
	return r, g, b, a
}
