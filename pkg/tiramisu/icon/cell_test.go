package icon

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellParsesOnce(t *testing.T) {
	c := NewCell("box", rectSVG)
	assert.False(t, c.Parsed())

	first, err := c.Get()
	require.NoError(t, err)
	assert.True(t, c.Parsed())

	second, err := c.Get()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), c.ParseCount())
}

func TestCellConcurrentSingleWinner(t *testing.T) {
	c := NewCell("box", rectSVG)

	const goroutines = 32
	results := make([]*IconData, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			data, err := c.Get()
			assert.NoError(t, err)
			results[i] = data
		}(i)
	}
	wg.Wait()

	require.NotNil(t, results[0])
	for _, data := range results[1:] {
		assert.Same(t, results[0], data)
	}
	assert.Equal(t, int64(1), c.ParseCount())
}

func TestCellFailureDoesNotLatch(t *testing.T) {
	c := NewCell("bad", `<svg viewBox="0 0 24 24"><rect`)

	_, err := c.Get()
	require.Error(t, err)
	assert.False(t, c.Parsed())

	// A later call retries rather than returning a cached failure.
	_, err = c.Get()
	require.Error(t, err)
}

func TestCellName(t *testing.T) {
	c := NewCell("chevron", rectSVG)
	assert.Equal(t, "chevron", c.Name())
}
