package sdl

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/internal"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

const cornerSegments = 8

// Painter implements paint.Painter on an SDL renderer. It is created by
// Run; applications only see the paint.Painter interface.
type Painter struct {
	renderer *sdl.Renderer
	fonts    map[fontKey]*ttf.Font
	config   FontConfig
}

type fontKey struct {
	style paint.FontStyle
	size  int
}

func newPainter(renderer *sdl.Renderer, config FontConfig) *Painter {
	return &Painter{
		renderer: renderer,
		fonts:    make(map[fontKey]*ttf.Font),
		config:   config,
	}
}

// toSDLColor converts from premultiplied to the straight alpha SDL's
// blend mode expects.
func toSDLColor(c paint.Color) sdl.Color {
	if c.A == 0 || c.A == 255 {
		return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	a := uint32(c.A)
	return sdl.Color{
		R: uint8(min32(uint32(c.R)*255/a, 255)),
		G: uint8(min32(uint32(c.G)*255/a, 255)),
		B: uint8(min32(uint32(c.B)*255/a, 255)),
		A: c.A,
	}
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func (p *Painter) FillRect(r geom.Rect, c paint.Color) {
	col := toSDLColor(c)
	p.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	p.renderer.FillRect(&sdl.Rect{
		X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H),
	})
}

func (p *Painter) FillRoundedRect(r geom.Rect, radius float32, c paint.Color) {
	if radius <= 0 {
		p.FillRect(r, c)
		return
	}
	if max := minF(r.W, r.H) / 2; radius > max {
		radius = max
	}

	// Triangle fan around the rect center, corners lowered to arcs.
	points := roundedRectOutline(r, radius)
	center := r.Center()

	vertices := make([]sdl.Vertex, 0, len(points)+1)
	vertices = append(vertices, sdl.Vertex{
		Position: sdl.FPoint{X: center.X, Y: center.Y},
		Color:    toSDLColor(c),
	})
	for _, pt := range points {
		vertices = append(vertices, sdl.Vertex{
			Position: sdl.FPoint{X: pt.X, Y: pt.Y},
			Color:    toSDLColor(c),
		})
	}

	indices := make([]int32, 0, len(points)*3)
	for i := 1; i <= len(points); i++ {
		next := i + 1
		if next > len(points) {
			next = 1
		}
		indices = append(indices, 0, int32(i), int32(next))
	}

	p.renderer.RenderGeometry(nil, vertices, indices)
}

func roundedRectOutline(r geom.Rect, radius float32) []geom.Vec2 {
	type corner struct {
		cx, cy     float32
		startAngle float64
	}
	corners := []corner{
		{r.X + r.W - radius, r.Y + radius, -math.Pi / 2},
		{r.X + r.W - radius, r.Y + r.H - radius, 0},
		{r.X + radius, r.Y + r.H - radius, math.Pi / 2},
		{r.X + radius, r.Y + radius, math.Pi},
	}

	points := make([]geom.Vec2, 0, 4*(cornerSegments+1))
	for _, cn := range corners {
		for i := 0; i <= cornerSegments; i++ {
			angle := cn.startAngle + (math.Pi/2)*float64(i)/float64(cornerSegments)
			points = append(points, geom.Vec2{
				X: cn.cx + radius*float32(math.Cos(angle)),
				Y: cn.cy + radius*float32(math.Sin(angle)),
			})
		}
	}
	return points
}

func (p *Painter) StrokeRect(r geom.Rect, width float32, c paint.Color) {
	if width <= 0 {
		return
	}
	p.FillRect(geom.R(r.X, r.Y, r.W, width), c)
	p.FillRect(geom.R(r.X, r.Y+r.H-width, r.W, width), c)
	p.FillRect(geom.R(r.X, r.Y+width, width, r.H-2*width), c)
	p.FillRect(geom.R(r.X+r.W-width, r.Y+width, width, r.H-2*width), c)
}

func (p *Painter) Line(a, b geom.Vec2, width float32, c paint.Color) {
	if width <= 1 {
		col := toSDLColor(c)
		p.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
		p.renderer.DrawLine(int32(a.X), int32(a.Y), int32(b.X), int32(b.Y))
		return
	}

	// Thick line as a quad perpendicular to the segment.
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	col := toSDLColor(c)
	vertices := []sdl.Vertex{
		{Position: sdl.FPoint{X: a.X + nx, Y: a.Y + ny}, Color: col},
		{Position: sdl.FPoint{X: b.X + nx, Y: b.Y + ny}, Color: col},
		{Position: sdl.FPoint{X: b.X - nx, Y: b.Y - ny}, Color: col},
		{Position: sdl.FPoint{X: a.X - nx, Y: a.Y - ny}, Color: col},
	}
	p.renderer.RenderGeometry(nil, vertices, []int32{0, 1, 2, 0, 2, 3})
}

func (p *Painter) Mesh(m paint.Mesh) {
	if m.IsEmpty() {
		return
	}

	vertices := make([]sdl.Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = sdl.Vertex{
			Position: sdl.FPoint{X: v.Pos.X, Y: v.Pos.Y},
			Color:    toSDLColor(v.Color),
		}
	}
	indices := make([]int32, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = int32(idx)
	}

	p.renderer.RenderGeometry(nil, vertices, indices)
}

// Text draws text at pos. Left-aligned text hangs from its top-left
// corner; centered text is centered on pos both ways; right-aligned text
// hangs from its top-right corner.
func (p *Painter) Text(text string, pos geom.Vec2, c paint.Color, opts paint.TextOptions) {
	if text == "" {
		return
	}
	font := p.font(opts)
	if font == nil {
		return
	}

	surface, err := font.RenderUTF8Blended(text, toSDLColor(c))
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to render text", "error", err)
		return
	}
	defer surface.Free()

	texture, err := p.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to create text texture", "error", err)
		return
	}
	defer texture.Destroy()

	w, h := surface.W, surface.H
	x, y := int32(pos.X), int32(pos.Y)
	switch opts.Align {
	case paint.TextAlignCenter:
		x -= w / 2
		y -= h / 2
	case paint.TextAlignRight:
		x -= w
	}

	p.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

func (p *Painter) MeasureText(text string, opts paint.TextOptions) geom.Vec2 {
	font := p.font(opts)
	if font == nil || text == "" {
		return geom.Vec2{}
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return geom.Vec2{}
	}
	return geom.Vec2{X: float32(w), Y: float32(h)}
}

func (p *Painter) font(opts paint.TextOptions) *ttf.Font {
	size := int(opts.Size)
	if size <= 0 {
		size = 14
	}

	key := fontKey{style: opts.Style, size: size}
	if f, ok := p.fonts[key]; ok {
		return f
	}

	path := p.config.RegularPath
	switch opts.Style {
	case paint.FontSemibold:
		path = p.config.SemiboldPath
	case paint.FontBold:
		path = p.config.BoldPath
	}
	if path == "" {
		path = p.config.RegularPath
	}
	if path == "" {
		internal.ErrorOnce("font:missing", "No font configured; text will not render")
		return nil
	}

	f, err := ttf.OpenFont(path, size)
	if err != nil {
		internal.ErrorOnce("font:"+path, "Failed to open font", "path", path, "error", err)
		return nil
	}
	p.fonts[key] = f
	return f
}

func (p *Painter) closeFonts() {
	for _, f := range p.fonts {
		f.Close()
	}
	p.fonts = make(map[fontKey]*ttf.Font)
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
