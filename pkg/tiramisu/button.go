package tiramisu

import (
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/anim"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/icon"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/theme"
)

// ButtonVariant selects how a button binds to the theme's color roles.
type ButtonVariant int

const (
	ButtonPrimary     ButtonVariant = iota // Primary / OnPrimary
	ButtonSecondary                        // Secondary / OnSecondary
	ButtonDestructive                      // Destructive / OnPrimary
	ButtonOutline                          // transparent fill, Outline border
	ButtonGhost                            // transparent fill, no border
)

// Button is a clickable labeled widget with an optional leading icon.
// Configure with the WithX methods and present once with Show; the press
// feedback animation lives in retained state keyed by the button's id.
type Button struct {
	label    string
	id       ID
	variant  ButtonVariant
	icon     *icon.Cell
	size     geom.Vec2
	rect     geom.Rect
	hasRect  bool
	disabled bool
}

// NewButton creates a primary button with the given label. The label also
// seeds the widget id; use WithID when two buttons share a label.
func NewButton(label string) Button {
	return Button{
		label: label,
		id:    NewID("button:" + label),
	}
}

// WithID overrides the widget id.
func (b Button) WithID(id ID) Button {
	b.id = id
	return b
}

// WithVariant sets the color variant.
func (b Button) WithVariant(v ButtonVariant) Button {
	b.variant = v
	return b
}

// WithIcon adds a leading icon.
func (b Button) WithIcon(c *icon.Cell) Button {
	b.icon = c
	return b
}

// WithSize overrides the measured size.
func (b Button) WithSize(size geom.Vec2) Button {
	b.size = size
	return b
}

// WithRect places the button at an explicit rectangle instead of the
// context's layout cursor.
func (b Button) WithRect(r geom.Rect) Button {
	b.rect = r
	b.hasRect = true
	return b
}

// Disabled makes the button inert. It still paints, dimmed.
func (b Button) Disabled(disabled bool) Button {
	b.disabled = disabled
	return b
}

type buttonState struct {
	press *anim.Spring
}

func (b Button) colors(th theme.Palette) (bg, fg, border paint.Color) {
	switch b.variant {
	case ButtonSecondary:
		return th.Secondary, th.OnSecondary, paint.Transparent
	case ButtonDestructive:
		return th.Destructive, th.OnPrimary, paint.Transparent
	case ButtonOutline:
		return paint.Transparent, th.Foreground, th.Outline
	case ButtonGhost:
		return paint.Transparent, th.Foreground, paint.Transparent
	default:
		return th.Primary, th.OnPrimary, paint.Transparent
	}
}

// Show paints the button and reports interaction.
func (b Button) Show(ctx *Context) Response[struct{}] {
	th := ThemeOf(ctx)

	opts := paint.TextOptions{
		Size:  th.Typography.BaseSize,
		Style: paint.FontSemibold,
		Align: paint.TextAlignCenter,
	}

	size := b.size
	if size.X == 0 || size.Y == 0 {
		text := ctx.Painter.MeasureText(b.label, opts)
		size = geom.Vec2{
			X: text.X + 2*th.Spacing.MD,
			Y: th.Typography.BaseSize + 2*th.Spacing.SM + th.Spacing.XS,
		}
		if b.icon != nil {
			size.X += th.Typography.BaseSize + th.Spacing.SM
		}
	}

	rect := b.rect
	if !b.hasRect {
		rect = ctx.AllocateRect(size)
	}

	var raw Interaction
	if b.disabled {
		raw = Interaction{Rect: rect}
	} else {
		raw = ctx.Interact(b.id, rect)
	}

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

	bg, fg, border := b.colors(th.Palette)
	if b.disabled {
		bg = bg.WithAlpha(0.5)
		fg = fg.WithAlpha(0.5)
		border = border.WithAlpha(0.5)
	} else {
		press := st.press.Value
		if raw.Hovered {
			bg = anim.LerpColor(bg, th.Palette.Accent, 0.15)
		}
		bg = anim.LerpColor(bg, th.Palette.Background, 0.2*press)
	}

	if bg != paint.Transparent {
		ctx.Painter.FillRoundedRect(rect, th.Spacing.CornerRadius, bg)
	}
	if border != paint.Transparent {
		ctx.Painter.StrokeRect(rect, 1, border)
	}

	textPos := rect.Center()
	if b.icon != nil {
		iconSize := th.Typography.BaseSize
		iconRect := geom.R(
			rect.X+th.Spacing.MD,
			rect.Center().Y-iconSize/2,
			iconSize, iconSize,
		)
		ctx.DrawIcon(b.icon, iconRect, fg)
		textPos.X += (iconSize + th.Spacing.SM) / 2
	}
	ctx.Painter.Text(b.label, textPos, fg, opts)

	return Response[struct{}]{Raw: raw}
}
