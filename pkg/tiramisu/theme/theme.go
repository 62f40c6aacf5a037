// Package theme defines the semantic color palette, spacing scale, and
// typography that every widget reads its appearance from. Color roles are
// purely semantic: widgets bind to roles like Primary or Destructive, and
// the active theme binds roles to concrete colors. Widgets must never
// hard-code palette colors.
package theme

import "github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"

// Palette maps semantic color roles to premultiplied RGBA colors.
type Palette struct {
	Background     paint.Color
	Foreground     paint.Color
	Primary        paint.Color
	OnPrimary      paint.Color
	Secondary      paint.Color
	OnSecondary    paint.Color
	Muted          paint.Color
	OnMuted        paint.Color
	Accent         paint.Color
	OnAccent       paint.Color
	Border         paint.Color
	Input          paint.Color
	Surface        paint.Color
	OnSurface      paint.Color
	SurfaceVariant paint.Color
	Outline        paint.Color
	OutlineVariant paint.Color
	Destructive    paint.Color
	Warning        paint.Color
	Success        paint.Color
	Info           paint.Color
}

// Spacing is the pixel spacing scale plus the default corner radius.
type Spacing struct {
	XS           float32
	SM           float32
	MD           float32
	LG           float32
	XL           float32
	XXL          float32
	CornerRadius float32
}

// DefaultSpacing returns the standard scale.
func DefaultSpacing() Spacing {
	return Spacing{
		XS:           4,
		SM:           8,
		MD:           16,
		LG:           24,
		XL:           32,
		XXL:          48,
		CornerRadius: 8,
	}
}

// Typography describes the font families and base size widgets render
// text with. Families are names resolved by the host backend.
type Typography struct {
	Family         string
	BoldFamily     string
	SemiboldFamily string
	BaseSize       float32
}

// DefaultTypography returns the standard type setup.
func DefaultTypography() Typography {
	return Typography{
		Family:         "Inter",
		BoldFamily:     "Inter-Bold",
		SemiboldFamily: "Inter-SemiBold",
		BaseSize:       14,
	}
}

// Theme is the complete visual configuration. Themes are cheap value
// types; widgets receive copies and treat them as read-only per frame.
type Theme struct {
	Palette    Palette
	Spacing    Spacing
	Typography Typography
}

// Clone returns a copy of the theme.
func (t Theme) Clone() Theme {
	return t
}

// Dark returns the standard dark preset.
func Dark() Theme {
	return Theme{
		Palette: Palette{
			Background:     paint.RGB(0x0A, 0x0A, 0x0A),
			Foreground:     paint.RGB(0xF5, 0xF5, 0xF5),
			Primary:        paint.RGB(0x63, 0x66, 0xF1),
			OnPrimary:      paint.RGB(0xFF, 0xFF, 0xFF),
			Secondary:      paint.RGB(0x27, 0x27, 0x2A),
			OnSecondary:    paint.RGB(0xFA, 0xFA, 0xFA),
			Muted:          paint.RGB(0x27, 0x27, 0x2A),
			OnMuted:        paint.RGB(0xA1, 0xA1, 0xAA),
			Accent:         paint.RGB(0x27, 0x27, 0x2A),
			OnAccent:       paint.RGB(0xFA, 0xFA, 0xFA),
			Border:         paint.RGB(0x27, 0x27, 0x2A),
			Input:          paint.RGB(0x27, 0x27, 0x2A),
			Surface:        paint.RGB(0x17, 0x17, 0x1A),
			OnSurface:      paint.RGB(0xE4, 0xE4, 0xE7),
			SurfaceVariant: paint.RGB(0x1F, 0x1F, 0x23),
			Outline:        paint.RGB(0x3F, 0x3F, 0x46),
			OutlineVariant: paint.RGB(0x2A, 0x2A, 0x30),
			Destructive:    paint.RGB(0xEF, 0x44, 0x44),
			Warning:        paint.RGB(0xF5, 0x9E, 0x0B),
			Success:        paint.RGB(0x22, 0xC5, 0x5E),
			Info:           paint.RGB(0x3B, 0x82, 0xF6),
		},
		Spacing:    DefaultSpacing(),
		Typography: DefaultTypography(),
	}
}

// Light returns the standard light preset: inverted surfaces with the
// same role relations as Dark.
func Light() Theme {
	return Theme{
		Palette: Palette{
			Background:     paint.RGB(0xFF, 0xFF, 0xFF),
			Foreground:     paint.RGB(0x0A, 0x0A, 0x0A),
			Primary:        paint.RGB(0x63, 0x66, 0xF1),
			OnPrimary:      paint.RGB(0xFF, 0xFF, 0xFF),
			Secondary:      paint.RGB(0xF4, 0xF4, 0xF5),
			OnSecondary:    paint.RGB(0x18, 0x18, 0x1B),
			Muted:          paint.RGB(0xF4, 0xF4, 0xF5),
			OnMuted:        paint.RGB(0x71, 0x71, 0x7A),
			Accent:         paint.RGB(0xF4, 0xF4, 0xF5),
			OnAccent:       paint.RGB(0x18, 0x18, 0x1B),
			Border:         paint.RGB(0xE4, 0xE4, 0xE7),
			Input:          paint.RGB(0xE4, 0xE4, 0xE7),
			Surface:        paint.RGB(0xFA, 0xFA, 0xFA),
			OnSurface:      paint.RGB(0x18, 0x18, 0x1B),
			SurfaceVariant: paint.RGB(0xF0, 0xF0, 0xF2),
			Outline:        paint.RGB(0xD4, 0xD4, 0xD8),
			OutlineVariant: paint.RGB(0xE8, 0xE8, 0xEB),
			Destructive:    paint.RGB(0xEF, 0x44, 0x44),
			Warning:        paint.RGB(0xD9, 0x77, 0x06),
			Success:        paint.RGB(0x16, 0xA3, 0x4A),
			Info:           paint.RGB(0x25, 0x63, 0xEB),
		},
		Spacing:    DefaultSpacing(),
		Typography: DefaultTypography(),
	}
}

// Preset returns the named preset; unknown names fall back to Dark.
func Preset(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}
