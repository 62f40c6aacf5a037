package icon

const defaultMaxCacheSize = 32

// MeshCache is a small LRU for icons parsed at runtime, keyed by name.
// Statically known icons should use one-shot Cells instead; this cache
// serves documents loaded from disk or the network, where the working
// set is unbounded.
type MeshCache struct {
	icons   map[string]*IconData
	order   []string // tracks insertion order for LRU eviction
	maxSize int
}

// NewMeshCache creates a cache with the default capacity.
func NewMeshCache() *MeshCache {
	return NewMeshCacheWithSize(defaultMaxCacheSize)
}

// NewMeshCacheWithSize creates a cache holding at most maxSize icons.
func NewMeshCacheWithSize(maxSize int) *MeshCache {
	return &MeshCache{
		icons:   make(map[string]*IconData),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the cached icon for key, or nil.
func (c *MeshCache) Get(key string) *IconData {
	if data, exists := c.icons[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return data
	}
	return nil
}

// Set stores an icon under key, evicting the least recently used entry
// at capacity.
func (c *MeshCache) Set(key string, data *IconData) {
	// If key already exists, just update and move to end
	if _, exists := c.icons[key]; exists {
		c.icons[key] = data
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.icons[key] = data
	c.order = append(c.order, key)
}

// GetOrParse returns the cached icon for key, parsing and caching svg on
// a miss.
func (c *MeshCache) GetOrParse(key, svg string) (*IconData, error) {
	if data := c.Get(key); data != nil {
		return data, nil
	}
	data, err := Parse(key, svg)
	if err != nil {
		return nil, err
	}
	c.Set(key, data)
	return data, nil
}

func (c *MeshCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *MeshCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.icons, oldest)
}

// Clear drops every cached icon.
func (c *MeshCache) Clear() {
	c.icons = make(map[string]*IconData)
	c.order = c.order[:0]
}

// Len returns the number of cached icons.
func (c *MeshCache) Len() int {
	return len(c.icons)
}
