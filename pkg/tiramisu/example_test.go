package tiramisu

import (
	"fmt"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/theme"
)

// Example shows the per-frame widget flow a host backend drives: begin
// the frame with input and bounds, declare widgets, react to responses,
// end the frame.
func Example() {
	ctx := NewContext(&fakePainter{})
	SetTheme(ctx, theme.Dark())

	wifi := true

	// One frame. A real host loops this with live input and dt.
	in := Input{PointerPos: geom.V2(60, 20)}
	ctx.BeginFrame(1.0/60, in, geom.R(0, 0, 800, 600))

	save := NewButton("Save").Show(ctx)
	if save.Clicked() {
		fmt.Println("saving")
	}

	toggle := NewToggle("wifi", wifi).Show(ctx)
	if toggle.Extra.Changed {
		wifi = toggle.Extra.Value
	}

	ctx.EndFrame()

	fmt.Println("hovered:", save.Hovered())
	fmt.Println("wifi:", wifi)
	// Output:
	// hovered: true
	// wifi: true
}
