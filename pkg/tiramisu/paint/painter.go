package paint

import "github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"

// Vertex is a single mesh vertex with a precomputed premultiplied color.
type Vertex struct {
	Pos   geom.Vec2
	Color Color
}

// Mesh is a triangle list. Indices reference Vertices in groups of three.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// IsEmpty reports whether the mesh draws nothing.
func (m Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) == 0
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// FontStyle selects a typography slot from the active theme.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontSemibold
	FontBold
)

// TextOptions configures a Text call.
type TextOptions struct {
	Size  float32
	Style FontStyle
	Align TextAlign
}

// Painter is the draw-command sink a host backend provides. Every widget
// paints exclusively through this interface; the core never talks to a
// renderer directly.
type Painter interface {
	FillRect(r geom.Rect, c Color)
	FillRoundedRect(r geom.Rect, radius float32, c Color)
	StrokeRect(r geom.Rect, width float32, c Color)
	Line(a, b geom.Vec2, width float32, c Color)
	Mesh(m Mesh)
	Text(text string, pos geom.Vec2, c Color, opts TextOptions)
	// MeasureText returns the pixel size the text would occupy.
	MeasureText(text string, opts TextOptions) geom.Vec2
}
