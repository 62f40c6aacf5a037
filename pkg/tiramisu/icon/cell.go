package icon

import (
	"sync"

	"go.uber.org/atomic"
)

// Cell is a one-shot lazy container pairing an icon's SVG text with its
// tessellated form. The first Get parses and tessellates; every later
// Get returns the same *IconData. Concurrent first calls resolve to a
// single parse. A failed parse does not populate the cell, so later
// calls retry. That keeps runtime SVGs editable during development.
type Cell struct {
	name string
	svg  string

	data   atomic.Pointer[IconData]
	mu     sync.Mutex
	parses atomic.Int64
}

// NewCell creates a cell around static SVG text. Nothing is parsed until
// the first Get.
func NewCell(name, svg string) *Cell {
	return &Cell{name: name, svg: svg}
}

// Name returns the icon name the cell was created with.
func (c *Cell) Name() string {
	if c.name == "" {
		return DefaultName
	}
	return c.name
}

// Get returns the tessellated icon, parsing it exactly once per process
// on first use. All successful calls return the same pointer.
func (c *Cell) Get() (*IconData, error) {
	if d := c.data.Load(); d != nil {
		return d, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if d := c.data.Load(); d != nil {
		return d, nil
	}

	d, err := Parse(c.name, c.svg)
	if err != nil {
		return nil, err
	}
	c.parses.Inc()
	c.data.Store(d)
	return d, nil
}

// Parsed reports whether the cell has been populated.
func (c *Cell) Parsed() bool {
	return c.data.Load() != nil
}

// ParseCount returns how many successful parses have run. It is always
// 0 or 1; exposed for tests asserting the one-shot guarantee.
func (c *Cell) ParseCount() int64 {
	return c.parses.Load()
}
