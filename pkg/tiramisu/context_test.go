package tiramisu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/theme"
)

// fakePainter records draw calls and answers text measurement with a
// fixed glyph size.
type fakePainter struct {
	fills   []geom.Rect
	rounded []geom.Rect
	strokes []geom.Rect
	meshes  []paint.Mesh
	texts   []string
}

func (p *fakePainter) FillRect(r geom.Rect, c paint.Color) { p.fills = append(p.fills, r) }
func (p *fakePainter) FillRoundedRect(r geom.Rect, radius float32, c paint.Color) {
	p.rounded = append(p.rounded, r)
}
func (p *fakePainter) StrokeRect(r geom.Rect, width float32, c paint.Color) {
	p.strokes = append(p.strokes, r)
}
func (p *fakePainter) Line(a, b geom.Vec2, width float32, c paint.Color) {}
func (p *fakePainter) Mesh(m paint.Mesh)                                 { p.meshes = append(p.meshes, m) }
func (p *fakePainter) Text(text string, pos geom.Vec2, c paint.Color, opts paint.TextOptions) {
	p.texts = append(p.texts, text)
}
func (p *fakePainter) MeasureText(text string, opts paint.TextOptions) geom.Vec2 {
	return geom.V2(float32(len(text))*8, 16)
}

func newTestContext() (*Context, *fakePainter) {
	p := &fakePainter{}
	return NewContext(p), p
}

func frame(ctx *Context, in Input, body func()) {
	ctx.BeginFrame(1.0/60, in, geom.R(0, 0, 800, 600))
	body()
	ctx.EndFrame()
}

func TestThemeDefaultsToDark(t *testing.T) {
	ctx, _ := newTestContext()
	assert.Equal(t, theme.Dark(), ThemeOf(ctx))
}

func TestThemeSetAndRetrieve(t *testing.T) {
	ctx, _ := newTestContext()
	light := theme.Light()
	SetTheme(ctx, light)
	assert.Equal(t, light, ThemeOf(ctx))

	// Contexts are independent.
	other, _ := newTestContext()
	assert.Equal(t, theme.Dark(), ThemeOf(other))
}

func TestStateSharedByID(t *testing.T) {
	ctx, _ := newTestContext()
	id := NewID("counter")

	frame(ctx, Input{}, func() {
		st := StateOf[int](ctx, id)
		*st = 7
	})
	frame(ctx, Input{}, func() {
		assert.Equal(t, 7, *StateOf[int](ctx, id))
		assert.Equal(t, 0, *StateOf[int](ctx, NewID("other")))
	})
}

func TestStateExpiresAfterUnmentionedFrame(t *testing.T) {
	ctx, _ := newTestContext()
	id := NewID("ephemeral")

	frame(ctx, Input{}, func() {
		*StateOf[int](ctx, id) = 42
	})

	// One frame without a lookup sweeps the state.
	frame(ctx, Input{}, func() {})

	frame(ctx, Input{}, func() {
		assert.Equal(t, 0, *StateOf[int](ctx, id))
	})
}

func TestIDStability(t *testing.T) {
	assert.Equal(t, NewID("a"), NewID("a"))
	assert.NotEqual(t, NewID("a"), NewID("b"))
	assert.NotEqual(t, NewID("a"), NewID("a").With("salt"))
	assert.Equal(t, NewID("a").With("s"), NewID("a").With("s"))
	assert.NotEqual(t, NewID("a").WithIndex(0), NewID("a").WithIndex(1))
}

func TestInteractClickRequiresPressAndReleaseOnWidget(t *testing.T) {
	ctx, _ := newTestContext()
	id := NewID("btn")
	rect := geom.R(10, 10, 100, 40)
	inside := geom.V2(50, 20)
	outside := geom.V2(500, 500)

	var raw Interaction

	frame(ctx, Input{PointerPos: inside, PointerDown: true, PointerPressed: true}, func() {
		raw = ctx.Interact(id, rect)
	})
	assert.True(t, raw.Hovered)
	assert.True(t, raw.Pressed)
	assert.False(t, raw.Clicked)

	frame(ctx, Input{PointerPos: inside, PointerReleased: true}, func() {
		raw = ctx.Interact(id, rect)
	})
	assert.True(t, raw.Clicked)

	// Press inside, release outside: no click.
	frame(ctx, Input{PointerPos: inside, PointerDown: true, PointerPressed: true}, func() {
		ctx.Interact(id, rect)
	})
	frame(ctx, Input{PointerPos: outside, PointerReleased: true}, func() {
		raw = ctx.Interact(id, rect)
	})
	assert.False(t, raw.Clicked)
	assert.True(t, raw.Released)
}

func TestInteractPressStartedElsewhere(t *testing.T) {
	ctx, _ := newTestContext()
	a := NewID("a")
	b := NewID("b")
	rectA := geom.R(0, 0, 50, 50)
	rectB := geom.R(100, 0, 50, 50)

	frame(ctx, Input{PointerPos: geom.V2(25, 25), PointerDown: true, PointerPressed: true}, func() {
		ctx.Interact(a, rectA)
		ctx.Interact(b, rectB)
	})

	var rawB Interaction
	frame(ctx, Input{PointerPos: geom.V2(125, 25), PointerReleased: true}, func() {
		ctx.Interact(a, rectA)
		rawB = ctx.Interact(b, rectB)
	})
	assert.False(t, rawB.Clicked)
}

func TestAllocateRectStacksVertically(t *testing.T) {
	ctx, _ := newTestContext()

	var first, second geom.Rect
	frame(ctx, Input{}, func() {
		first = ctx.AllocateRect(geom.V2(100, 40))
		second = ctx.AllocateRect(geom.V2(100, 40))
	})

	assert.Equal(t, float32(0), first.Y)
	assert.Greater(t, second.Y, first.Y+first.H-1)
	assert.Equal(t, first.X, second.X)
}

func TestDataMap(t *testing.T) {
	ctx, _ := newTestContext()
	require.Nil(t, ctx.Data("missing"))
	ctx.SetData("k", 123)
	assert.Equal(t, 123, ctx.Data("k"))
}
