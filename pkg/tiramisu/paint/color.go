// Package paint defines the color, vertex, and painter primitives the
// widget runtime draws with. Colors are premultiplied RGBA throughout,
// matching the shading model of the mesh renderer.
package paint

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color is an 8-bit premultiplied RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from straight-alpha components, premultiplying RGB.
func RGBA(r, g, b, a uint8) Color {
	if a == 255 {
		return Color{R: r, G: g, B: b, A: 255}
	}
	f := uint32(a)
	return Color{
		R: uint8(uint32(r) * f / 255),
		G: uint8(uint32(g) * f / 255),
		B: uint8(uint32(b) * f / 255),
		A: a,
	}
}

// Transparent is the zero color; it draws nothing.
var Transparent = Color{}

// White and Black are the only literals the core itself paints with; every
// other color comes from a theme role or a caller override.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
)

// FromStdColor converts an image/color value to a premultiplied Color.
func FromStdColor(c color.Color) Color {
	r, g, b, a := c.RGBA() // already premultiplied, 16-bit
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Mul multiplies two premultiplied colors channel-wise. This is the tint
// operation used when rendering icons.
func (c Color) Mul(o Color) Color {
	return Color{
		R: uint8(uint32(c.R) * uint32(o.R) / 255),
		G: uint8(uint32(c.G) * uint32(o.G) / 255),
		B: uint8(uint32(c.B) * uint32(o.B) / 255),
		A: uint8(uint32(c.A) * uint32(o.A) / 255),
	}
}

// WithAlpha scales the color by a straight alpha factor in [0,1].
func (c Color) WithAlpha(alpha float32) Color {
	if alpha <= 0 {
		return Transparent
	}
	if alpha >= 1 {
		return c
	}
	return Color{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// Hex formats the color as 6-digit hex, or 8-digit when not opaque. The
// wire form is straight alpha, so channels are un-premultiplied first.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	if c.A == 0 {
		return "#00000000"
	}
	un := func(ch uint8) uint8 {
		v := uint32(ch) * 255 / uint32(c.A)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", un(c.R), un(c.G), un(c.B), c.A)
}

// ParseHex parses #RGB, #RGBA, #RRGGBB, and #RRGGBBAA color strings.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("paint: color %q: missing '#'", s)
	}
	hex := s[1:]

	digit := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	read := func(i int) (uint8, error) {
		hi, ok1 := digit(hex[i])
		lo, ok2 := digit(hex[i+1])
		if !ok1 || !ok2 {
			return 0, fmt.Errorf("paint: color %q: invalid hex digit", s)
		}
		return hi<<4 | lo, nil
	}

	switch len(hex) {
	case 3, 4:
		var comp [4]uint8
		comp[3] = 255
		for i := 0; i < len(hex); i++ {
			d, ok := digit(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("paint: color %q: invalid hex digit", s)
			}
			comp[i] = d<<4 | d
		}
		return RGBA(comp[0], comp[1], comp[2], comp[3]), nil
	case 6, 8:
		var comp [4]uint8
		comp[3] = 255
		for i := 0; i*2 < len(hex); i++ {
			v, err := read(i * 2)
			if err != nil {
				return Color{}, err
			}
			comp[i] = v
		}
		return RGBA(comp[0], comp[1], comp[2], comp[3]), nil
	}
	return Color{}, fmt.Errorf("paint: color %q: length must be 3, 4, 6, or 8 digits", s)
}

// Lerp interpolates each channel with round-and-clamp in premultiplied
// space. No gamma correction is applied.
func (c Color) Lerp(o Color, t float32) Color {
	ch := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*float64(t)
		v = math.Round(v)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return Color{
		R: ch(c.R, o.R),
		G: ch(c.G, o.G),
		B: ch(c.B, o.B),
		A: ch(c.A, o.A),
	}
}
