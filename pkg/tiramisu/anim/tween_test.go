package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTweenEaseInOutMidpoint(t *testing.T) {
	tw := NewTween[float32](0, 10, Lerp, time.Second).WithEasing(EaseInOutQuad)
	tw.Start()
	tw.Update(0.5)
	assert.InDelta(t, 5.0, tw.Value(), 1e-6)
}

func TestTweenLifecycle(t *testing.T) {
	tw := NewTween[float32](0, 1, Lerp, time.Second)
	assert.Equal(t, NotStarted, tw.State())
	assert.Equal(t, float32(0), tw.Value())

	tw.Start()
	assert.Equal(t, Running, tw.State())

	tw.Update(0.25)
	assert.InDelta(t, 0.25, tw.Value(), 1e-6)

	tw.Pause()
	assert.Equal(t, Paused, tw.State())
	tw.Update(10)
	assert.InDelta(t, 0.25, tw.Value(), 1e-6)

	tw.Resume()
	tw.Update(0.25)
	assert.InDelta(t, 0.5, tw.Value(), 1e-6)

	tw.Reset()
	assert.Equal(t, NotStarted, tw.State())
	assert.Equal(t, float32(0), tw.Value())
}

func TestTweenCompletes(t *testing.T) {
	tw := NewTween[float32](2, 8, Lerp, 500*time.Millisecond)
	tw.Start()
	tw.Update(0.75)
	assert.Equal(t, Completed, tw.State())
	assert.True(t, tw.Done())
	assert.Equal(t, float32(8), tw.Value())

	// Further updates are inert.
	tw.Update(1)
	assert.Equal(t, float32(8), tw.Value())
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween[float32](3, 7, Lerp, 0)
	assert.Equal(t, float32(1), tw.Progress())
	assert.Equal(t, float32(7), tw.Value())

	tw.Start()
	tw.Update(0)
	assert.Equal(t, float32(7), tw.Value())
}

func TestTweenStartResetsElapsed(t *testing.T) {
	tw := NewTween[float32](0, 1, Lerp, time.Second)
	tw.Start()
	tw.Update(2)
	assert.True(t, tw.Done())

	tw.Start()
	assert.Equal(t, Running, tw.State())
	assert.Equal(t, float32(0), tw.Value())
}

func TestTweenRetarget(t *testing.T) {
	tw := NewTween[float32](0, 10, Lerp, time.Second)
	tw.Retarget(10, 0)
	start, end := tw.Endpoints()
	assert.Equal(t, float32(10), start)
	assert.Equal(t, float32(0), end)
}

func TestTweenSteppedEasing(t *testing.T) {
	tw := NewTween[float32](0, 100, Lerp, time.Second).WithSteppedEasing(4)
	tw.Start()
	tw.Update(0.3)
	assert.Equal(t, float32(25), tw.Value())
	tw.Update(0.7)
	assert.Equal(t, float32(100), tw.Value())
}
