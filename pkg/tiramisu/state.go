package tiramisu

// StateOf returns the retained state of type T for id, creating a zero
// value on first use. The returned pointer is stable for as long as the
// widget keeps being shown; state expires after one frame without a
// lookup.
//
// Looking up the same id with two different types is a developer bug; the
// stored state is replaced with a fresh zero T.
func StateOf[T any](ctx *Context, id ID) *T {
	entry, ok := ctx.states[id]
	if ok {
		entry.frame = ctx.frame
		if v, ok := entry.value.(*T); ok {
			return v
		}
	}
	v := new(T)
	ctx.states[id] = &stateEntry{value: v, frame: ctx.frame}
	return v
}
