package icon

import (
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// MeshPainter is the subset of paint.Painter that icon rendering needs.
type MeshPainter interface {
	Mesh(m paint.Mesh)
}

// Render draws d into target, preserving the icon's viewBox aspect ratio
// and centering it within the rect. Every vertex color is multiplied by
// tint. Empty icon data is a no-op.
func Render(mp MeshPainter, d *IconData, target geom.Rect, tint paint.Color) {
	if d == nil || d.IsEmpty() || target.IsEmpty() {
		return
	}
	if d.ViewboxW <= 0 || d.ViewboxH <= 0 {
		return
	}

	scale := target.W / d.ViewboxW
	if s := target.H / d.ViewboxH; s < scale {
		scale = s
	}

	// Center the scaled icon inside the target rect.
	offX := target.X + (target.W-d.ViewboxW*scale)/2
	offY := target.Y + (target.H-d.ViewboxH*scale)/2

	vertices := make([]paint.Vertex, len(d.Vertices))
	for i, v := range d.Vertices {
		vertices[i] = paint.Vertex{
			Pos: geom.Vec2{
				X: offX + v.Pos.X*scale,
				Y: offY + v.Pos.Y*scale,
			},
			Color: v.Color.Mul(tint),
		}
	}

	mp.Mesh(paint.Mesh{Vertices: vertices, Indices: d.Indices})
}
