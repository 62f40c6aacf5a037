// Package tiramisu is the widget runtime core: the per-frame Context,
// stable widget ids, retained state, themed responses, and the small set
// of reference widgets built on them. Rendering, fonts, and the event
// loop live in a host backend such as backend/sdl.
package tiramisu
