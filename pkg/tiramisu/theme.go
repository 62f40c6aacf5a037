package tiramisu

import "github.com/tiramisu-ui/tiramisu/pkg/tiramisu/theme"

const themeDataKey = "tiramisu:theme"

// SetTheme installs th as the context's active theme.
func SetTheme(ctx *Context, th theme.Theme) {
	ctx.SetData(themeDataKey, th)
}

// ThemeOf returns the context's active theme, defaulting to the dark
// preset when none was set.
func ThemeOf(ctx *Context) theme.Theme {
	if th, ok := ctx.Data(themeDataKey).(theme.Theme); ok {
		return th
	}
	return theme.Dark()
}
