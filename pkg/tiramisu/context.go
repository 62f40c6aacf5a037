package tiramisu

import (
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/icon"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/internal"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// Context is the per-frame handle widgets draw through. The host backend
// owns it: it calls BeginFrame with the frame's input snapshot and delta
// time, runs the application's widget code, then calls EndFrame to expire
// retained state that no widget touched.
//
// A Context is single-threaded. Independent windows use independent
// contexts and share nothing.
type Context struct {
	Painter paint.Painter
	Input   Input
	// Dt is the frame's delta time in seconds.
	Dt float32

	frame  uint64
	data   map[string]any
	states map[ID]*stateEntry

	// activeID tracks which widget the pointer went down on, so a click
	// only fires on the widget where the press started.
	activeID    ID
	hasActiveID bool

	bounds  geom.Rect
	cursorY float32
	gap     float32
}

type stateEntry struct {
	value any
	frame uint64
}

// NewContext creates a context drawing through p.
func NewContext(p paint.Painter) *Context {
	return &Context{
		Painter: p,
		data:    make(map[string]any),
		states:  make(map[ID]*stateEntry),
		gap:     8,
	}
}

// BeginFrame starts a frame: installs the input snapshot and delta time
// and resets the layout cursor to the top of bounds.
func (ctx *Context) BeginFrame(dt float32, in Input, bounds geom.Rect) {
	ctx.frame++
	ctx.Dt = dt
	ctx.Input = in
	ctx.bounds = bounds
	ctx.cursorY = bounds.Y
}

// EndFrame expires retained state that was not touched this frame and
// clears the press-tracking when the pointer was released.
func (ctx *Context) EndFrame() {
	if ctx.Input.PointerReleased {
		ctx.hasActiveID = false
	}
	for id, entry := range ctx.states {
		if entry.frame < ctx.frame {
			delete(ctx.states, id)
		}
	}
}

// Frame returns the current frame counter.
func (ctx *Context) Frame() uint64 { return ctx.frame }

// Bounds returns the frame's drawable area.
func (ctx *Context) Bounds() geom.Rect { return ctx.bounds }

// SetData stores an arbitrary value in the context's temporary-data map.
func (ctx *Context) SetData(key string, value any) {
	ctx.data[key] = value
}

// Data returns the value stored under key, or nil.
func (ctx *Context) Data(key string) any {
	return ctx.data[key]
}

// AllocateRect claims a rectangle of the given size from the context's
// vertical layout cursor. Widgets that manage their own placement pass an
// explicit rect to Show instead.
func (ctx *Context) AllocateRect(size geom.Vec2) geom.Rect {
	r := geom.R(ctx.bounds.X, ctx.cursorY, size.X, size.Y)
	ctx.cursorY += size.Y + ctx.gap
	return r
}

// Interact hit-tests r against the frame's input for the widget id.
// A click fires only when the release happens over the same widget the
// press started on.
func (ctx *Context) Interact(id ID, r geom.Rect) Interaction {
	hovered := ctx.Input.HoverIn(r)

	if hovered && ctx.Input.PointerPressed {
		ctx.activeID = id
		ctx.hasActiveID = true
	}

	active := ctx.hasActiveID && ctx.activeID == id
	return Interaction{
		Rect:     r,
		Hovered:  hovered,
		Pressed:  active && ctx.Input.PointerDown,
		Clicked:  active && ctx.Input.PointerReleased && hovered,
		Released: active && ctx.Input.PointerReleased,
	}
}

// DrawIcon renders c into target with the given tint. A cell whose SVG
// fails to parse draws nothing; the failure is logged once per icon.
func (ctx *Context) DrawIcon(c *icon.Cell, target geom.Rect, tint paint.Color) {
	data, err := c.Get()
	if err != nil {
		internal.ErrorOnce("icon:"+c.Name(), "icon parse failed",
			"icon", c.Name(), "error", err)
		return
	}
	icon.Render(ctx.Painter, data, target, tint)
}
