package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

func TestPresetRoundtrip(t *testing.T) {
	for _, preset := range []Theme{Dark(), Light()} {
		data, err := Encode(preset)
		require.NoError(t, err)

		decoded, err := Decode(data, true)
		require.NoError(t, err)
		assert.Equal(t, preset, decoded)
	}
}

func TestDecodeFillsFromBasePreset(t *testing.T) {
	doc := []byte(`{
		"base": "light",
		"palette": { "primary": "#FF0000" },
		"spacing": { "md": 20 }
	}`)

	th, err := Decode(doc, true)
	require.NoError(t, err)

	assert.Equal(t, paint.RGB(255, 0, 0), th.Palette.Primary)
	assert.Equal(t, float32(20), th.Spacing.MD)

	// Everything else comes from the light preset.
	light := Light()
	assert.Equal(t, light.Palette.Background, th.Palette.Background)
	assert.Equal(t, light.Spacing.XS, th.Spacing.XS)
	assert.Equal(t, light.Typography, th.Typography)
}

func TestDecodeDefaultsToDarkBase(t *testing.T) {
	th, err := Decode([]byte(`{"palette": {}, "spacing": {}}`), true)
	require.NoError(t, err)
	assert.Equal(t, Dark(), th)
}

func TestDecodeStrictRejectsUnknownRole(t *testing.T) {
	doc := []byte(`{"palette": { "tertiary": "#112233" }}`)

	_, err := Decode(doc, true)
	assert.ErrorContains(t, err, "unknown palette role")

	// Lenient mode ignores it.
	th, err := Decode(doc, false)
	require.NoError(t, err)
	assert.Equal(t, Dark(), th)
}

func TestDecodeStrictRejectsUnknownSpacing(t *testing.T) {
	_, err := Decode([]byte(`{"spacing": { "xxxl": 64 }}`), true)
	assert.ErrorContains(t, err, "unknown spacing key")
}

func TestDecodeRejectsBadColor(t *testing.T) {
	_, err := Decode([]byte(`{"palette": { "primary": "red" }}`), false)
	assert.ErrorContains(t, err, "primary")
}

func TestDecodeShortHexColors(t *testing.T) {
	th, err := Decode([]byte(`{"palette": { "primary": "#F00" }}`), true)
	require.NoError(t, err)
	assert.Equal(t, paint.RGB(255, 0, 0), th.Palette.Primary)
}

func TestDecodeTOML(t *testing.T) {
	doc := []byte(`
base = "dark"

[palette]
primary = "#6366F1"
destructive = "#EF4444"

[spacing]
corner_radius = 12

[typography]
family = "Geist"
base_size = 16
`)

	th, err := DecodeTOML(doc, true)
	require.NoError(t, err)
	assert.Equal(t, paint.RGB(0x63, 0x66, 0xF1), th.Palette.Primary)
	assert.Equal(t, float32(12), th.Spacing.CornerRadius)
	assert.Equal(t, "Geist", th.Typography.Family)
	assert.Equal(t, float32(16), th.Typography.BaseSize)
}

func TestLoadFileDetectsFormat(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "theme.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"palette": {"primary": "#010203"}}`), 0644))
	th, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, paint.RGB(1, 2, 3), th.Palette.Primary)

	tomlPath := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[palette]\nprimary = \"#010203\"\n"), 0644))
	th, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, paint.RGB(1, 2, 3), th.Palette.Primary)
}

func TestCloneIsIndependent(t *testing.T) {
	th := Dark()
	clone := th.Clone()
	clone.Palette.Primary = paint.RGB(1, 1, 1)
	assert.NotEqual(t, clone.Palette.Primary, th.Palette.Primary)
}

func TestPresetLookup(t *testing.T) {
	assert.Equal(t, Light(), Preset("light"))
	assert.Equal(t, Dark(), Preset("dark"))
	assert.Equal(t, Dark(), Preset(""))
	assert.Equal(t, Dark(), Preset("nope"))
}

func TestSpacingDefaults(t *testing.T) {
	s := DefaultSpacing()
	assert.Equal(t, Spacing{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48, CornerRadius: 8}, s)
}
