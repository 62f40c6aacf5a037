package sdl

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/internal"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer

	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(opts WindowOptions) (*Window, error) {
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if IsDevMode() {
		opts.Borderless = false

		x, y = 50, 50
		width, height = 1024, 768
		if v := os.Getenv(WindowWidthEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				width = int32(n)
			} else {
				internal.GetInternalLogger().Warn("Invalid window width; using default", "value", v, "error", err)
			}
		}
		if v := os.Getenv(WindowHeightEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				height = int32(n)
			} else {
				internal.GetInternalLogger().Warn("Invalid window height; using default", "value", v, "error", err)
			}
		}
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		hasVSync: vsync,
	}, nil
}

func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
