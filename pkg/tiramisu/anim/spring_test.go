package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
)

func TestSpringSettlesWithDefaults(t *testing.T) {
	s := NewSpring(0, 1)
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	assert.Less(t, math.Abs(float64(s.Value-1)), 1e-2)
	assert.Less(t, math.Abs(float64(s.Velocity)), 1e-2)
}

func TestSpringSettleTolerance(t *testing.T) {
	s := NewSpring(0, 1)
	for i := 0; i < 10000; i++ {
		s.Update(1.0 / 120)
		if s.Settled(1e-3, 1e-3) {
			break
		}
	}
	assert.True(t, s.Settled(1e-3, 1e-3))
}

func TestSpringRetargetKeepsMomentum(t *testing.T) {
	s := NewSpring(0, 1)
	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60)
	}
	value, velocity := s.Value, s.Velocity
	assert.NotZero(t, velocity)

	s.SetTarget(-1)
	assert.Equal(t, value, s.Value)
	assert.Equal(t, velocity, s.Velocity)
}

func TestSpringSnap(t *testing.T) {
	s := NewSpring(0, 5)
	s.Update(1.0 / 60)
	s.Snap()
	assert.Equal(t, float32(5), s.Value)
	assert.Equal(t, float32(0), s.Velocity)
	assert.True(t, s.Settled(1e-6, 1e-6))
}

func TestSpringUnderdampedOvershoots(t *testing.T) {
	s := NewSpring(0, 1).WithDamping(4)
	peak := float32(0)
	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60)
		if s.Value > peak {
			peak = s.Value
		}
	}
	assert.Greater(t, peak, float32(1))
}

func TestSpringVec2(t *testing.T) {
	s := NewSpringVec2(geom.V2(0, 0), geom.V2(10, -10))
	for i := 0; i < 240; i++ {
		s.Update(1.0 / 60)
	}
	v := s.Value()
	assert.InDelta(t, 10, v.X, 1e-2)
	assert.InDelta(t, -10, v.Y, 1e-2)
	assert.True(t, s.Settled(1e-2, 1e-2))
}
