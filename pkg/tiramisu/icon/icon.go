// Package icon turns SVG documents into triangle meshes that the widget
// runtime can draw directly. Parsing and tessellation happen once per
// icon; the result is an immutable vertex/index buffer with per-vertex
// premultiplied colors, cached in process-global one-shot cells.
package icon

import "github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"

// IconData is a tessellated icon: a triangle list in viewbox coordinates
// with the SVG fill and stroke paints materialized into vertex colors.
// Empty vertex and index slices represent a blank icon, which is legal
// and renders nothing.
type IconData struct {
	Name     string
	Vertices []paint.Vertex
	Indices  []uint32
	ViewboxW float32
	ViewboxH float32
}

// IsEmpty reports whether the icon draws nothing.
func (d *IconData) IsEmpty() bool {
	return d == nil || len(d.Vertices) == 0 || len(d.Indices) == 0
}

// Mesh returns the icon's raw triangle list.
func (d *IconData) Mesh() paint.Mesh {
	return paint.Mesh{Vertices: d.Vertices, Indices: d.Indices}
}
