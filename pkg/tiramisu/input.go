package tiramisu

import "github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"

// Input is the host's per-frame input snapshot. Widgets read it for
// hit-testing; they never pump events themselves.
type Input struct {
	PointerPos geom.Vec2
	// PointerDown is true while the primary button is held.
	PointerDown bool
	// PointerPressed is true only on the frame the button went down.
	PointerPressed bool
	// PointerReleased is true only on the frame the button went up.
	PointerReleased bool
	// Confirm and Cancel mirror keyboard/gamepad accept and back actions.
	Confirm bool
	Cancel  bool
}

// HoverIn reports whether the pointer is inside r.
func (in Input) HoverIn(r geom.Rect) bool {
	return r.Contains(in.PointerPos)
}
