package icon

import (
	"math"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// meshBuilder accumulates colored triangles into a single buffer.
type meshBuilder struct {
	vertices []paint.Vertex
	indices  []uint32
}

func (mb *meshBuilder) addPolygon(pts []geom.Vec2, fill paint.Color) {
	if len(pts) < 3 {
		return
	}
	base := uint32(len(mb.vertices))
	for _, p := range pts {
		mb.vertices = append(mb.vertices, paint.Vertex{Pos: p, Color: fill})
	}

	tris, ok := triangulate(pts)
	if !ok {
		// Best effort: fan triangulation (works for convex polygons).
		for i := 1; i+1 < len(pts); i++ {
			mb.indices = append(mb.indices, base, base+uint32(i), base+uint32(i+1))
		}
		return
	}
	for _, idx := range tris {
		mb.indices = append(mb.indices, base+idx)
	}
}

func (mb *meshBuilder) addTriangle(a, b, c geom.Vec2, color paint.Color) {
	base := uint32(len(mb.vertices))
	mb.vertices = append(mb.vertices,
		paint.Vertex{Pos: a, Color: color},
		paint.Vertex{Pos: b, Color: color},
		paint.Vertex{Pos: c, Color: color},
	)
	mb.indices = append(mb.indices, base, base+1, base+2)
}

// triangulate ear-clips a simple polygon into triangles, returned as
// index triples into pts. Fails on degenerate input, in which case the
// caller falls back to a fan.
func triangulate(pts []geom.Vec2) ([]uint32, bool) {
	n := len(pts)
	if n < 3 {
		return nil, false
	}

	area := signedArea(pts)
	ccw := area > 0

	// Build initial index list.
	verts := make([]int, n)
	for i := 0; i < n; i++ {
		verts[i] = i
	}

	var out []uint32
	guard := 0
	for len(verts) > 2 && guard < 10000 {
		guard++
		earFound := false
		for i := 0; i < len(verts); i++ {
			i0 := verts[(i+len(verts)-1)%len(verts)]
			i1 := verts[i]
			i2 := verts[(i+1)%len(verts)]

			a, b, c := pts[i0], pts[i1], pts[i2]
			if !isConvex(a, b, c, ccw) {
				continue
			}

			// Check no other point lies inside the ear triangle.
			contains := false
			for _, j := range verts {
				if j == i0 || j == i1 || j == i2 {
					continue
				}
				if pointInTri(pts[j], a, b, c) {
					contains = true
					break
				}
			}
			if contains {
				continue
			}

			out = append(out, uint32(i0), uint32(i1), uint32(i2))
			// Remove ear vertex.
			verts = append(verts[:i], verts[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			return nil, false
		}
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func signedArea(pts []geom.Vec2) float32 {
	var a float32
	for i := 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a * 0.5
}

func isConvex(a, b, c geom.Vec2, ccw bool) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if ccw {
		return cross > 0
	}
	return cross < 0
}

func pointInTri(p, a, b, c geom.Vec2) bool {
	// Barycentric technique using sign of areas.
	sign := func(p1, p2, p3 geom.Vec2) float32 {
		return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
	}
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := (d1 < 0) || (d2 < 0) || (d3 < 0)
	hasPos := (d1 > 0) || (d2 > 0) || (d3 > 0)
	return !(hasNeg && hasPos)
}

// addStroke tessellates a polyline as a thick stroke: one quad per
// segment with bevel joins between segments and butt caps at the ends.
func (mb *meshBuilder) addStroke(sp subpath, width float32, color paint.Color) {
	pts := sp.points
	if len(pts) < 2 || width <= 0 {
		return
	}
	half := width / 2

	type edge struct {
		l0, r0, l1, r1 geom.Vec2
		dir            geom.Vec2
		ok             bool
	}

	segCount := len(pts) - 1
	if sp.closed {
		segCount = len(pts)
	}

	edges := make([]edge, 0, segCount)
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		d := b.Sub(a)
		length := vecLen(d)
		if length == 0 {
			edges = append(edges, edge{})
			continue
		}
		d = d.Scale(1 / length)
		// Perpendicular offset to each side of the segment.
		n := geom.Vec2{X: -d.Y, Y: d.X}.Scale(half)
		edges = append(edges, edge{
			l0: a.Add(n), r0: a.Sub(n),
			l1: b.Add(n), r1: b.Sub(n),
			dir: d, ok: true,
		})
	}

	for _, e := range edges {
		if !e.ok {
			continue
		}
		mb.addTriangle(e.l0, e.r0, e.r1, color)
		mb.addTriangle(e.l0, e.r1, e.l1, color)
	}

	// Bevel joins between consecutive segments.
	joinCount := segCount - 1
	if sp.closed {
		joinCount = segCount
	}
	for i := 0; i < joinCount; i++ {
		cur := edges[i]
		next := edges[(i+1)%segCount]
		if !cur.ok || !next.ok {
			continue
		}
		// Skip near-collinear joints; the quads already overlap enough.
		cross := cur.dir.X*next.dir.Y - cur.dir.Y*next.dir.X
		if cross > -1e-4 && cross < 1e-4 {
			continue
		}
		p := pts[(i+1)%len(pts)]
		if cross > 0 {
			mb.addTriangle(p, cur.r1, next.r0, color)
		} else {
			mb.addTriangle(p, cur.l1, next.l0, color)
		}
	}
}

func vecLen(v geom.Vec2) float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}
