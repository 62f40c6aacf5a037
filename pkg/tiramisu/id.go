package tiramisu

import "hash/fnv"

// ID is a stable identifier for widget retained state. Two widgets built
// from the same label (and salt chain) share state; different labels never
// collide implicitly.
type ID uint64

// NewID hashes label into an ID.
func NewID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// With derives a child ID from id and salt. Use it to distinguish widgets
// built in a loop from a single call site.
func (id ID) With(salt string) ID {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(id >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte(salt))
	return ID(h.Sum64())
}

// WithIndex derives a child ID from id and a loop index.
func (id ID) WithIndex(i int) ID {
	h := fnv.New64a()
	var buf [16]byte
	for j := 0; j < 8; j++ {
		buf[j] = byte(id >> (8 * j))
		buf[8+j] = byte(uint64(i) >> (8 * j))
	}
	h.Write(buf[:])
	return ID(h.Sum64())
}
