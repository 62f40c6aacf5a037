package tiramisu

import (
	"time"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/anim"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/i18n"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// DialogAction represents what the user did with a dialog this frame.
type DialogAction int

const (
	DialogActionNone      DialogAction = iota // Dialog still open
	DialogActionConfirmed                     // User accepted
	DialogActionCancelled                     // User dismissed
)

// Dialog is a modal confirmation box centered in the frame bounds. Labels
// default to the localized strings from the i18n bundle.
type Dialog struct {
	id           ID
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	destructive  bool
	width        float32
}

// NewDialog creates a dialog keyed by its title.
func NewDialog(title, message string) Dialog {
	return Dialog{
		id:      NewID("dialog:" + title),
		title:   title,
		message: message,
		width:   360,
	}
}

// WithID overrides the widget id.
func (d Dialog) WithID(id ID) Dialog {
	d.id = id
	return d
}

// WithConfirmLabel overrides the localized confirm label.
func (d Dialog) WithConfirmLabel(label string) Dialog {
	d.confirmLabel = label
	return d
}

// WithCancelLabel overrides the localized cancel label.
func (d Dialog) WithCancelLabel(label string) Dialog {
	d.cancelLabel = label
	return d
}

// Destructive styles the confirm button with the destructive role.
func (d Dialog) Destructive(destructive bool) Dialog {
	d.destructive = destructive
	return d
}

// WithWidth overrides the dialog width.
func (d Dialog) WithWidth(w float32) Dialog {
	d.width = w
	return d
}

type dialogState struct {
	fade *anim.Tween[float32]
}

// Show paints the dialog over the frame's bounds and reports the user's
// action. Confirm and Cancel input actions map to the two buttons.
func (d Dialog) Show(ctx *Context) Response[DialogAction] {
	th := ThemeOf(ctx)

	confirmLabel := d.confirmLabel
	if confirmLabel == "" {
		confirmLabel = i18n.T("DialogConfirm")
	}
	cancelLabel := d.cancelLabel
	if cancelLabel == "" {
		cancelLabel = i18n.T("DialogCancel")
	}

	st := StateOf[dialogState](ctx, d.id)
	if st.fade == nil {
		st.fade = anim.NewTween(float32(0), 1, anim.Lerp, 150*time.Millisecond).
			WithEasing(anim.EaseOutCubic)
		st.fade.Start()
	}
	st.fade.Update(ctx.Dt)
	fade := st.fade.Value()

	bounds := ctx.bounds
	ctx.Painter.FillRect(bounds, paint.Black.WithAlpha(fade*0.6))

	btnH := th.Typography.BaseSize + 2*th.Spacing.SM + th.Spacing.XS
	msgSize := ctx.Painter.MeasureText(d.message, paint.TextOptions{
		Size: th.Typography.BaseSize,
	})
	height := th.Spacing.MD + th.Typography.BaseSize + th.Spacing.SM +
		msgSize.Y + th.Spacing.MD + btnH + th.Spacing.MD

	box := geom.R(
		bounds.Center().X-d.width/2,
		bounds.Center().Y-height/2,
		d.width, height,
	)

	ctx.Painter.FillRoundedRect(box, th.Spacing.CornerRadius,
		th.Palette.Surface.WithAlpha(fade))
	ctx.Painter.StrokeRect(box, 1, th.Palette.Border)

	inner := box.Shrink(geom.UniformInsets(th.Spacing.MD))
	ctx.Painter.Text(d.title,
		geom.Vec2{X: inner.X, Y: inner.Y},
		th.Palette.OnSurface,
		paint.TextOptions{Size: th.Typography.BaseSize, Style: paint.FontBold})
	ctx.Painter.Text(d.message,
		geom.Vec2{X: inner.X, Y: inner.Y + th.Typography.BaseSize + th.Spacing.SM},
		th.Palette.OnMuted,
		paint.TextOptions{Size: th.Typography.BaseSize})

	btnW := (inner.W - th.Spacing.SM) / 2
	btnY := inner.Y + inner.H - btnH

	cancel := NewButton(cancelLabel).
		WithID(d.id.With("cancel")).
		WithVariant(ButtonOutline).
		WithRect(geom.R(inner.X, btnY, btnW, btnH)).
		Show(ctx)

	confirmVariant := ButtonPrimary
	if d.destructive {
		confirmVariant = ButtonDestructive
	}
	confirm := NewButton(confirmLabel).
		WithID(d.id.With("confirm")).
		WithVariant(confirmVariant).
		WithRect(geom.R(inner.X+btnW+th.Spacing.SM, btnY, btnW, btnH)).
		Show(ctx)

	action := DialogActionNone
	switch {
	case confirm.Clicked() || ctx.Input.Confirm:
		action = DialogActionConfirmed
	case cancel.Clicked() || ctx.Input.Cancel:
		action = DialogActionCancelled
	}

	raw := Interaction{Rect: box, Hovered: ctx.Input.HoverIn(box)}
	return Response[DialogAction]{Raw: raw, Extra: action}
}
