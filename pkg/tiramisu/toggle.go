package tiramisu

import (
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/anim"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
)

// Toggle is an on/off switch with a spring-animated knob. The caller owns
// the boolean; Show reports a change, it does not flip the value itself.
type Toggle struct {
	id      ID
	value   bool
	size    geom.Vec2
	rect    geom.Rect
	hasRect bool
}

// NewToggle creates a toggle showing value, keyed by label.
func NewToggle(label string, value bool) Toggle {
	return Toggle{
		id:    NewID("toggle:" + label),
		value: value,
		size:  geom.Vec2{X: 44, Y: 24},
	}
}

// WithID overrides the widget id.
func (t Toggle) WithID(id ID) Toggle {
	t.id = id
	return t
}

// WithSize overrides the default track size.
func (t Toggle) WithSize(size geom.Vec2) Toggle {
	t.size = size
	return t
}

// WithRect places the toggle at an explicit rectangle.
func (t Toggle) WithRect(r geom.Rect) Toggle {
	t.rect = r
	t.hasRect = true
	return t
}

type toggleState struct {
	knob *anim.Spring
}

// Show paints the toggle. The response's Extra reports the new value when
// the toggle was clicked this frame.
func (t Toggle) Show(ctx *Context) Response[Changed[bool]] {
	th := ThemeOf(ctx)

	rect := t.rect
	if !t.hasRect {
		rect = ctx.AllocateRect(t.size)
	}

	raw := ctx.Interact(t.id, rect)

	value := t.value
	extra := Changed[bool]{Value: value}
	if raw.Clicked {
		value = !value
		extra = Changed[bool]{Changed: true, Value: value}
	}

	knobTarget := float32(0)
	if value {
		knobTarget = 1
	}

	st := StateOf[toggleState](ctx, t.id)
	if st.knob == nil {
		st.knob = anim.NewSpring(knobTarget, knobTarget)
	}
	st.knob.SetTarget(knobTarget)
	st.knob.Update(ctx.Dt)

	track := anim.LerpColor(th.Palette.Muted, th.Palette.Primary, clamp01(st.knob.Value))
	ctx.Painter.FillRoundedRect(rect, rect.H/2, track)

	pad := float32(2)
	knobD := rect.H - 2*pad
	travel := rect.W - 2*pad - knobD
	knob := geom.R(rect.X+pad+travel*st.knob.Value, rect.Y+pad, knobD, knobD)
	ctx.Painter.FillRoundedRect(knob, knobD/2, th.Palette.OnPrimary)

	return Response[Changed[bool]]{Raw: raw, Extra: extra}
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
