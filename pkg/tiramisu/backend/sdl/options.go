package sdl

import (
	"os"

	"github.com/veandco/go-sdl2/sdl"
)

// Environment variables honored in dev mode.
const (
	DevModeEnvVar      = "TIRAMISU_DEV"
	WindowWidthEnvVar  = "TIRAMISU_WINDOW_WIDTH"
	WindowHeightEnvVar = "TIRAMISU_WINDOW_HEIGHT"
)

// IsDevMode reports whether the dev-mode environment toggle is set.
// In dev mode the window is decorated, positioned on screen, and sized
// from the env vars instead of the display mode.
func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) == "1"
}

// WindowOptions configures the SDL window.
type WindowOptions struct {
	Title             string
	Width             int32 // 0 = current display mode
	Height            int32
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Maximized         bool // Start maximized (SDL_WINDOW_MAXIMIZED)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)

	// Fonts maps the theme's typography families to font files. Text
	// calls are no-ops when the needed font is missing.
	Fonts FontConfig
}

// FontConfig points at the TTF files backing the three typography slots.
type FontConfig struct {
	RegularPath  string
	SemiboldPath string
	BoldPath     string
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if wo.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}

	return flags
}
