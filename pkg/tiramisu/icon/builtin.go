package icon

// Built-in icons used by the shipped widgets. All are authored in white
// on a 24x24 viewbox so a render-time tint fully recolors them.
var (
	Check = NewCell("check", `<svg viewBox="0 0 24 24"><path d="M4 12 L10 18 L20 6 L17.6 4.2 L10 14.4 L6.2 9.8 Z" fill="#FFFFFF"/></svg>`)

	X = NewCell("x", `<svg viewBox="0 0 24 24"><path d="M6 4.5 L12 10.5 L18 4.5 L19.5 6 L13.5 12 L19.5 18 L18 19.5 L12 13.5 L6 19.5 L4.5 18 L10.5 12 L4.5 6 Z" fill="#FFFFFF"/></svg>`)

	ChevronDown = NewCell("chevron-down", `<svg viewBox="0 0 24 24"><path d="M4 8 L12 16 L20 8 L18.4 6.4 L12 12.8 L5.6 6.4 Z" fill="#FFFFFF"/></svg>`)

	ChevronRight = NewCell("chevron-right", `<svg viewBox="0 0 24 24"><path d="M8 4 L16 12 L8 20 L6.4 18.4 L12.8 12 L6.4 5.6 Z" fill="#FFFFFF"/></svg>`)

	Circle = NewCell("circle", `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="8" fill="#FFFFFF"/></svg>`)

	Square = NewCell("square", `<svg viewBox="0 0 24 24"><rect x="5" y="5" width="14" height="14" fill="#FFFFFF"/></svg>`)
)
