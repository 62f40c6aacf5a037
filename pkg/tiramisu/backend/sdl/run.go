// Package sdl is the reference host backend: it owns the SDL window and
// frame loop, translates the event pump into per-frame input snapshots,
// and implements the draw-command sink on the SDL renderer.
package sdl

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/internal"
)

// maxFrameDt caps delta time so a stalled frame does not teleport
// animations.
const maxFrameDt = 0.1

// Run opens a window and drives the frame loop. frame is called once per
// frame with a context ready for widget code; returning false quits.
func Run(opts WindowOptions, frame func(ctx *tiramisu.Context) bool) error {
	if opts.IsZero() {
		opts = WindowOptions{Title: "tiramisu", Resizable: true}
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER); err != nil {
		return err
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		return err
	}
	defer ttf.Quit()

	win, err := initWindow(opts)
	if err != nil {
		return err
	}
	defer win.close()

	painter := newPainter(win.Renderer, opts.Fonts)
	defer painter.closeFonts()

	ctx := tiramisu.NewContext(painter)

	var input tiramisu.Input
	lastTicks := sdl.GetTicks64()

	internal.GetLogger().Info("Frame loop started", "title", opts.Title)

	running := true
	for running {
		// Edge-triggered flags last one frame.
		input.PointerPressed = false
		input.PointerReleased = false
		input.Confirm = false
		input.Cancel = false

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.MouseMotionEvent:
				input.PointerPos = geom.Vec2{X: float32(e.X), Y: float32(e.Y)}
			case *sdl.MouseButtonEvent:
				if e.Button != sdl.BUTTON_LEFT {
					break
				}
				input.PointerPos = geom.Vec2{X: float32(e.X), Y: float32(e.Y)}
				if e.Type == sdl.MOUSEBUTTONDOWN {
					input.PointerDown = true
					input.PointerPressed = true
				} else {
					input.PointerDown = false
					input.PointerReleased = true
				}
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_RETURN:
					input.Confirm = true
				case sdl.K_ESCAPE:
					input.Cancel = true
				}
			}
		}

		now := sdl.GetTicks64()
		dt := float32(now-lastTicks) / 1000
		lastTicks = now
		if dt > maxFrameDt {
			dt = maxFrameDt
		}

		w, h := win.Size()
		bounds := geom.R(0, 0, float32(w), float32(h))

		bg := tiramisu.ThemeOf(ctx).Palette.Background
		win.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
		win.Renderer.Clear()

		ctx.BeginFrame(dt, input, bounds)
		if !frame(ctx) {
			running = false
		}
		ctx.EndFrame()

		win.Present()
	}

	internal.GetLogger().Info("Frame loop stopped")
	internal.CloseLogger()
	return nil
}
