package tiramisu

import (
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/anim"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/icon"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// IconButton is a square button showing only a tinted icon.
type IconButton struct {
	id      ID
	icon    *icon.Cell
	tint    paint.Color
	hasTint bool
	size    float32
	rect    geom.Rect
	hasRect bool
}

// NewIconButton creates an icon button keyed by the icon's name.
func NewIconButton(c *icon.Cell) IconButton {
	return IconButton{
		id:   NewID("iconbutton:" + c.Name()),
		icon: c,
		size: 32,
	}
}

// WithID overrides the widget id.
func (b IconButton) WithID(id ID) IconButton {
	b.id = id
	return b
}

// WithTint overrides the theme-derived icon tint.
func (b IconButton) WithTint(c paint.Color) IconButton {
	b.tint = c
	b.hasTint = true
	return b
}

// WithSize sets the square side length.
func (b IconButton) WithSize(size float32) IconButton {
	b.size = size
	return b
}

// WithRect places the button at an explicit rectangle.
func (b IconButton) WithRect(r geom.Rect) IconButton {
	b.rect = r
	b.hasRect = true
	return b
}

// Show paints the icon button and reports interaction.
func (b IconButton) Show(ctx *Context) Response[struct{}] {
	th := ThemeOf(ctx)

	rect := b.rect
	if !b.hasRect {
		rect = ctx.AllocateRect(geom.Vec2{X: b.size, Y: b.size})
	}

	raw := ctx.Interact(b.id, rect)

	st := StateOf[buttonState](ctx, b.id)
	if st.press == nil {
		st.press = anim.NewSpring(0, 0).WithStiffness(300).WithDamping(24)
	}
	if raw.Pressed {
		st.press.SetTarget(1)
	} else {
		st.press.SetTarget(0)
	}
	st.press.Update(ctx.Dt)

	if raw.Hovered || st.press.Value > 0.01 {
		bg := th.Palette.Accent
		bg = anim.LerpColor(bg, th.Palette.Background, 0.2*st.press.Value)
		ctx.Painter.FillRoundedRect(rect, th.Spacing.CornerRadius, bg)
	}

	tint := b.tint
	if !b.hasTint {
		tint = th.Palette.Foreground
	}
	inset := th.Spacing.XS
	ctx.DrawIcon(b.icon, rect.Shrink(geom.UniformInsets(inset)), tint)

	return Response[struct{}]{Raw: raw}
}
