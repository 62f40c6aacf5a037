package theme

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// rawTheme is the stable named-field wire form. Colors are hex strings,
// spacing values are floats. The optional base names the preset used to
// fill missing fields at decode time.
type rawTheme struct {
	Base       string             `json:"base,omitempty" toml:"base"`
	Palette    map[string]string  `json:"palette" toml:"palette"`
	Spacing    map[string]float64 `json:"spacing" toml:"spacing"`
	Typography *rawTypography     `json:"typography,omitempty" toml:"typography"`
}

type rawTypography struct {
	Family         string  `json:"family,omitempty" toml:"family"`
	BoldFamily     string  `json:"bold_family,omitempty" toml:"bold_family"`
	SemiboldFamily string  `json:"semibold_family,omitempty" toml:"semibold_family"`
	BaseSize       float64 `json:"base_size,omitempty" toml:"base_size"`
}

// paletteRoles maps wire names to palette fields, in wire order.
var paletteRoles = []struct {
	name string
	get  func(*Palette) *paint.Color
}{
	{"background", func(p *Palette) *paint.Color { return &p.Background }},
	{"foreground", func(p *Palette) *paint.Color { return &p.Foreground }},
	{"primary", func(p *Palette) *paint.Color { return &p.Primary }},
	{"on_primary", func(p *Palette) *paint.Color { return &p.OnPrimary }},
	{"secondary", func(p *Palette) *paint.Color { return &p.Secondary }},
	{"on_secondary", func(p *Palette) *paint.Color { return &p.OnSecondary }},
	{"muted", func(p *Palette) *paint.Color { return &p.Muted }},
	{"on_muted", func(p *Palette) *paint.Color { return &p.OnMuted }},
	{"accent", func(p *Palette) *paint.Color { return &p.Accent }},
	{"on_accent", func(p *Palette) *paint.Color { return &p.OnAccent }},
	{"border", func(p *Palette) *paint.Color { return &p.Border }},
	{"input", func(p *Palette) *paint.Color { return &p.Input }},
	{"surface", func(p *Palette) *paint.Color { return &p.Surface }},
	{"on_surface", func(p *Palette) *paint.Color { return &p.OnSurface }},
	{"surface_variant", func(p *Palette) *paint.Color { return &p.SurfaceVariant }},
	{"outline", func(p *Palette) *paint.Color { return &p.Outline }},
	{"outline_variant", func(p *Palette) *paint.Color { return &p.OutlineVariant }},
	{"destructive", func(p *Palette) *paint.Color { return &p.Destructive }},
	{"warning", func(p *Palette) *paint.Color { return &p.Warning }},
	{"success", func(p *Palette) *paint.Color { return &p.Success }},
	{"info", func(p *Palette) *paint.Color { return &p.Info }},
}

var spacingFields = []struct {
	name string
	get  func(*Spacing) *float32
}{
	{"xs", func(s *Spacing) *float32 { return &s.XS }},
	{"sm", func(s *Spacing) *float32 { return &s.SM }},
	{"md", func(s *Spacing) *float32 { return &s.MD }},
	{"lg", func(s *Spacing) *float32 { return &s.LG }},
	{"xl", func(s *Spacing) *float32 { return &s.XL }},
	{"xxl", func(s *Spacing) *float32 { return &s.XXL }},
	{"corner_radius", func(s *Spacing) *float32 { return &s.CornerRadius }},
}

func (t Theme) toRaw() rawTheme {
	palette := make(map[string]string, len(paletteRoles))
	for _, role := range paletteRoles {
		palette[role.name] = (*role.get(&t.Palette)).Hex()
	}
	spacing := make(map[string]float64, len(spacingFields))
	for _, f := range spacingFields {
		spacing[f.name] = float64(*f.get(&t.Spacing))
	}
	return rawTheme{
		Palette: palette,
		Spacing: spacing,
		Typography: &rawTypography{
			Family:         t.Typography.Family,
			BoldFamily:     t.Typography.BoldFamily,
			SemiboldFamily: t.Typography.SemiboldFamily,
			BaseSize:       float64(t.Typography.BaseSize),
		},
	}
}

// Encode serializes the theme to its stable JSON form.
func Encode(t Theme) ([]byte, error) {
	return json.MarshalIndent(t.toRaw(), "", "  ")
}

// Decode parses a JSON theme document. Fields missing from the document
// are filled from the preset named by its base field (dark when absent).
// In strict mode unknown palette roles and spacing keys are rejected;
// otherwise they are ignored.
func Decode(data []byte, strict bool) (Theme, error) {
	var raw rawTheme
	if err := json.Unmarshal(data, &raw); err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}
	return fromRaw(raw, strict)
}

// DecodeTOML parses a TOML theme document with the same field names and
// fill rules as Decode.
func DecodeTOML(data []byte, strict bool) (Theme, error) {
	var raw rawTheme
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}
	return fromRaw(raw, strict)
}

// LoadFile reads a theme from a .toml or .json file, selected by content:
// TOML is tried first for non-JSON documents.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: load %s: %w", path, err)
	}
	if len(data) > 0 && data[0] == '{' {
		return Decode(data, false)
	}
	return DecodeTOML(data, false)
}

func fromRaw(raw rawTheme, strict bool) (Theme, error) {
	t := Preset(raw.Base)

	known := make(map[string]bool, len(paletteRoles))
	for _, role := range paletteRoles {
		known[role.name] = true
		hex, ok := raw.Palette[role.name]
		if !ok {
			continue
		}
		c, err := paint.ParseHex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme: role %s: %w", role.name, err)
		}
		*role.get(&t.Palette) = c
	}
	if strict {
		for name := range raw.Palette {
			if !known[name] {
				return Theme{}, fmt.Errorf("theme: unknown palette role %q", name)
			}
		}
	}

	knownSpacing := make(map[string]bool, len(spacingFields))
	for _, f := range spacingFields {
		knownSpacing[f.name] = true
		if v, ok := raw.Spacing[f.name]; ok {
			*f.get(&t.Spacing) = float32(v)
		}
	}
	if strict {
		for name := range raw.Spacing {
			if !knownSpacing[name] {
				return Theme{}, fmt.Errorf("theme: unknown spacing key %q", name)
			}
		}
	}

	if raw.Typography != nil {
		if raw.Typography.Family != "" {
			t.Typography.Family = raw.Typography.Family
		}
		if raw.Typography.BoldFamily != "" {
			t.Typography.BoldFamily = raw.Typography.BoldFamily
		}
		if raw.Typography.SemiboldFamily != "" {
			t.Typography.SemiboldFamily = raw.Typography.SemiboldFamily
		}
		if raw.Typography.BaseSize > 0 {
			t.Typography.BaseSize = float32(raw.Typography.BaseSize)
		}
	}

	return t, nil
}
