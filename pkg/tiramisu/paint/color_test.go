package paint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBAPremultiplies(t *testing.T) {
	c := RGBA(255, 255, 255, 128)
	assert.Equal(t, uint8(128), c.R)
	assert.Equal(t, uint8(128), c.A)

	opaque := RGBA(10, 20, 30, 255)
	assert.Equal(t, Color{R: 10, G: 20, B: 30, A: 255}, opaque)
}

func TestParseHexForms(t *testing.T) {
	cases := map[string]Color{
		"#F00":      RGB(255, 0, 0),
		"#F00F":     RGB(255, 0, 0),
		"#FF0000":   RGB(255, 0, 0),
		"#FF0000FF": RGB(255, 0, 0),
		"#0a0A0a":   RGB(10, 10, 10),
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "FF0000", "#F0", "#GG0000", "#FF00001"} {
		_, err := ParseHex(in)
		assert.Error(t, err, in)
	}
}

func TestHexRoundtrip(t *testing.T) {
	for _, c := range []Color{RGB(0x6A, 0x3D, 0xE8), Black, White} {
		parsed, err := ParseHex(c.Hex())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	// Straight-alpha wire form survives a parse/format cycle.
	c, err := ParseHex("#FF000080")
	require.NoError(t, err)
	assert.Equal(t, "#FF000080", c.Hex())
}

func TestMulTint(t *testing.T) {
	assert.Equal(t, RGB(255, 0, 0), White.Mul(RGB(255, 0, 0)))
	assert.Equal(t, Black, Black.Mul(White))
	assert.Equal(t, Transparent, White.Mul(Transparent))
}

func TestFromStdColor(t *testing.T) {
	c := FromStdColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	assert.Equal(t, RGB(255, 0, 0), c)
}

func TestWithAlpha(t *testing.T) {
	half := White.WithAlpha(0.5)
	assert.InDelta(t, 127, int(half.A), 1)
	assert.Equal(t, half.R, half.A) // stays premultiplied

	assert.Equal(t, Transparent, White.WithAlpha(0))
	assert.Equal(t, White, White.WithAlpha(1))
}

func TestLerpRoundsAndClamps(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(255, 255, 255)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))

	mid := a.Lerp(b, 0.5)
	assert.GreaterOrEqual(t, mid.R, uint8(100))
	assert.LessOrEqual(t, mid.R, uint8(155))
}
