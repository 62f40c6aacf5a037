package tiramisu

import "github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"

// Interaction is the raw per-frame result of hit-testing a widget's
// rectangle against the input snapshot.
type Interaction struct {
	Rect     geom.Rect
	Hovered  bool
	Pressed  bool // primary button held while hovered
	Clicked  bool // released this frame over the widget it was pressed on
	Released bool
}

// Response is what every widget's Show returns: the raw interaction plus
// widget-specific semantic fields.
type Response[E any] struct {
	Raw   Interaction
	Extra E
}

// Clicked reports whether the widget was activated this frame.
func (r Response[E]) Clicked() bool { return r.Raw.Clicked }

// Hovered reports whether the pointer is over the widget.
func (r Response[E]) Hovered() bool { return r.Raw.Hovered }

// Rect returns the rectangle the widget occupied this frame.
func (r Response[E]) Rect() geom.Rect { return r.Raw.Rect }

// Changed is the Extra payload for widgets whose value can change.
type Changed[V any] struct {
	Changed bool
	Value   V
}
