package icon

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshCacheGetSet(t *testing.T) {
	c := NewMeshCache()
	assert.Nil(t, c.Get("missing"))

	data := &IconData{Name: "a"}
	c.Set("a", data)
	assert.Same(t, data, c.Get("a"))
	assert.Equal(t, 1, c.Len())
}

func TestMeshCacheEvictsOldest(t *testing.T) {
	c := NewMeshCacheWithSize(2)
	c.Set("a", &IconData{Name: "a"})
	c.Set("b", &IconData{Name: "b"})
	c.Set("c", &IconData{Name: "c"})

	assert.Nil(t, c.Get("a"))
	assert.NotNil(t, c.Get("b"))
	assert.NotNil(t, c.Get("c"))
	assert.Equal(t, 2, c.Len())
}

func TestMeshCacheGetRefreshesRecency(t *testing.T) {
	c := NewMeshCacheWithSize(2)
	c.Set("a", &IconData{Name: "a"})
	c.Set("b", &IconData{Name: "b"})

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Set("c", &IconData{Name: "c"})

	assert.NotNil(t, c.Get("a"))
	assert.Nil(t, c.Get("b"))
}

func TestMeshCacheUpdateExisting(t *testing.T) {
	c := NewMeshCacheWithSize(4)
	c.Set("a", &IconData{Name: "old"})
	replacement := &IconData{Name: "new"}
	c.Set("a", replacement)

	assert.Same(t, replacement, c.Get("a"))
	assert.Equal(t, 1, c.Len())
}

func TestMeshCacheGetOrParse(t *testing.T) {
	c := NewMeshCache()

	data, err := c.GetOrParse("box", rectSVG)
	require.NoError(t, err)
	assert.NotNil(t, data)

	again, err := c.GetOrParse("box", rectSVG)
	require.NoError(t, err)
	assert.Same(t, data, again)

	_, err = c.GetOrParse("bad", `<svg viewBox="0 0 1 1"><rect`)
	assert.Error(t, err)
	assert.Nil(t, c.Get("bad"))
}

func TestMeshCacheClear(t *testing.T) {
	c := NewMeshCache()
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("icon-%d", i), &IconData{})
	}
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Get("icon-0"))
}
