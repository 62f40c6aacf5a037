package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rectSVG = `<svg viewBox="0 0 24 24"><rect x="2" y="2" width="20" height="20" fill="black"/></svg>`

func TestParseFilledRect(t *testing.T) {
	data, err := Parse("", rectSVG)
	require.NoError(t, err)

	assert.Equal(t, "unnamed", data.Name)
	assert.Equal(t, float32(24), data.ViewboxW)
	assert.Equal(t, float32(24), data.ViewboxH)
	assert.NotEmpty(t, data.Vertices)
	assert.NotEmpty(t, data.Indices)
	assert.Zero(t, len(data.Indices)%3)
	assert.False(t, data.IsEmpty())
}

func TestParseKeepsName(t *testing.T) {
	data, err := Parse("box", rectSVG)
	require.NoError(t, err)
	assert.Equal(t, "box", data.Name)
}

func TestParseEmptySvg(t *testing.T) {
	data, err := Parse("blank", `<svg/>`)
	require.NoError(t, err)

	assert.Empty(t, data.Vertices)
	assert.Empty(t, data.Indices)
	assert.True(t, data.IsEmpty())
}

func TestParseMalformedSvg(t *testing.T) {
	_, err := Parse("bad", `<svg viewBox="0 0 24 24"><rect`)
	require.Error(t, err)
	assert.True(t, IsSvgParse(err))

	var parseErr *SvgParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Message)
}

func TestParsePathFill(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path d="M4 4 L20 4 L20 20 L4 20 Z" fill="#FF0000"/></svg>`
	data, err := Parse("path", svg)
	require.NoError(t, err)
	require.NotEmpty(t, data.Vertices)

	// Fill color lands on every vertex.
	for _, v := range data.Vertices {
		assert.Equal(t, uint8(255), v.Color.R)
		assert.Equal(t, uint8(0), v.Color.G)
		assert.Equal(t, uint8(0), v.Color.B)
	}
}

func TestParseAppliesGroupTransform(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><g transform="translate(10,0)"><rect x="0" y="0" width="4" height="4" fill="white"/></g></svg>`
	data, err := Parse("shifted", svg)
	require.NoError(t, err)
	require.NotEmpty(t, data.Vertices)

	for _, v := range data.Vertices {
		assert.GreaterOrEqual(t, v.Pos.X, float32(10))
		assert.LessOrEqual(t, v.Pos.X, float32(14))
		assert.LessOrEqual(t, v.Pos.Y, float32(4))
	}
}

func TestParseAppliesViewBoxOffset(t *testing.T) {
	svg := `<svg viewBox="10 10 24 24"><rect x="10" y="10" width="24" height="24" fill="white"/></svg>`
	data, err := Parse("offset", svg)
	require.NoError(t, err)
	require.NotEmpty(t, data.Vertices)
	assert.Equal(t, float32(24), data.ViewboxW)

	minX, maxX := data.Vertices[0].Pos.X, data.Vertices[0].Pos.X
	for _, v := range data.Vertices {
		if v.Pos.X < minX {
			minX = v.Pos.X
		}
		if v.Pos.X > maxX {
			maxX = v.Pos.X
		}
	}
	assert.InDelta(t, 0, minX, 1e-3)
	assert.InDelta(t, 24, maxX, 1e-3)
}

func TestParseFillNoneDrawsNothing(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path d="M4 4 L20 4 L20 20 Z" fill="none"/></svg>`
	data, err := Parse("none", svg)
	require.NoError(t, err)
	assert.True(t, data.IsEmpty())
}

func TestParseDefaultFillIsBlack(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><rect x="2" y="2" width="20" height="20"/></svg>`
	data, err := Parse("plain", svg)
	require.NoError(t, err)
	require.NotEmpty(t, data.Vertices)

	for _, v := range data.Vertices {
		assert.Equal(t, uint8(0), v.Color.R)
		assert.Equal(t, uint8(255), v.Color.A)
	}
}

func TestParseStrokeColor(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path d="M4 12 L20 12" fill="none" stroke="#00FF00" stroke-width="2"/></svg>`
	data, err := Parse("line", svg)
	require.NoError(t, err)
	require.NotEmpty(t, data.Vertices)

	for _, v := range data.Vertices {
		assert.Equal(t, uint8(0), v.Color.R)
		assert.Equal(t, uint8(255), v.Color.G)
		assert.Equal(t, uint8(0), v.Color.B)
	}
}

func TestParseClosedStrokeAddsClosingSegment(t *testing.T) {
	open := `<svg viewBox="0 0 24 24"><path d="M4 4 L20 4 L20 20" fill="none" stroke="white" stroke-width="2"/></svg>`
	looped := `<svg viewBox="0 0 24 24"><path d="M4 4 L20 4 L20 20 Z" fill="none" stroke="white" stroke-width="2"/></svg>`

	o, err := Parse("open", open)
	require.NoError(t, err)
	c, err := Parse("looped", looped)
	require.NoError(t, err)

	assert.Greater(t, len(c.Indices), len(o.Indices))
}

func TestParseStrokeOnly(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path d="M4 12 L20 12" fill="none" stroke="white" stroke-width="2"/></svg>`
	data, err := Parse("line", svg)
	require.NoError(t, err)

	assert.NotEmpty(t, data.Vertices)
	assert.NotEmpty(t, data.Indices)
}

func TestParseCircle(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="8" fill="white"/></svg>`
	data, err := Parse("circle", svg)
	require.NoError(t, err)
	require.NotEmpty(t, data.Vertices)

	// All vertices stay inside the viewbox.
	for _, v := range data.Vertices {
		assert.GreaterOrEqual(t, v.Pos.X, float32(0))
		assert.LessOrEqual(t, v.Pos.X, float32(24))
		assert.GreaterOrEqual(t, v.Pos.Y, float32(0))
		assert.LessOrEqual(t, v.Pos.Y, float32(24))
	}
}

func TestMeshIndicesInRange(t *testing.T) {
	data, err := Parse("box", rectSVG)
	require.NoError(t, err)

	mesh := data.Mesh()
	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}
}

func TestBuiltinIconsParse(t *testing.T) {
	for _, c := range []*Cell{Check, X, ChevronDown, ChevronRight, Circle, Square} {
		data, err := c.Get()
		require.NoError(t, err, "builtin %s", c.Name())
		assert.False(t, data.IsEmpty(), "builtin %s", c.Name())
	}
}
