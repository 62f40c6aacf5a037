package anim

import (
	"math"

	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
)

// Default spring constants, tuned for UI motion at ~16ms ticks.
const (
	DefaultStiffness = 200.0
	DefaultDamping   = 20.0
)

// Spring is a damped spring with implicit mass 1, integrated with
// semi-implicit Euler for stability at UI frame rates. The target may be
// re-aimed at any time; the spring never resets its state. Overshoot is
// deliberate and is the caller's to tune via damping.
type Spring struct {
	Value     float32
	Velocity  float32
	Target    float32
	Stiffness float32 // must be > 0
	Damping   float32 // must be >= 0
}

// NewSpring creates a spring at value aimed at target with default
// stiffness and damping.
func NewSpring(value, target float32) *Spring {
	return &Spring{
		Value:     value,
		Target:    target,
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
	}
}

// WithStiffness sets the stiffness and returns the spring for chaining.
func (s *Spring) WithStiffness(k float32) *Spring {
	s.Stiffness = k
	return s
}

// WithDamping sets the damping and returns the spring for chaining.
func (s *Spring) WithDamping(d float32) *Spring {
	s.Damping = d
	return s
}

// SetTarget re-aims the spring without resetting value or velocity.
func (s *Spring) SetTarget(target float32) {
	s.Target = target
}

// Update advances the simulation by dt seconds.
func (s *Spring) Update(dt float32) {
	a := -s.Stiffness*(s.Value-s.Target) - s.Damping*s.Velocity
	s.Velocity += a * dt
	s.Value += s.Velocity * dt
}

// Settled reports whether the spring is within the given position and
// velocity tolerances of rest at the target.
func (s *Spring) Settled(posTol, velTol float32) bool {
	return float32(math.Abs(float64(s.Value-s.Target))) < posTol &&
		float32(math.Abs(float64(s.Velocity))) < velTol
}

// Snap jumps the spring to its target and kills all velocity.
func (s *Spring) Snap() {
	s.Value = s.Target
	s.Velocity = 0
}

// SpringVec2 is a pair of springs sharing stiffness and damping, for
// animating positions and sizes.
type SpringVec2 struct {
	X Spring
	Y Spring
}

// NewSpringVec2 creates a 2D spring at value aimed at target.
func NewSpringVec2(value, target geom.Vec2) *SpringVec2 {
	return &SpringVec2{
		X: *NewSpring(value.X, target.X),
		Y: *NewSpring(value.Y, target.Y),
	}
}

// SetTarget re-aims both axes.
func (s *SpringVec2) SetTarget(target geom.Vec2) {
	s.X.SetTarget(target.X)
	s.Y.SetTarget(target.Y)
}

// Update advances both axes by dt seconds.
func (s *SpringVec2) Update(dt float32) {
	s.X.Update(dt)
	s.Y.Update(dt)
}

// Value returns the current position.
func (s *SpringVec2) Value() geom.Vec2 {
	return geom.Vec2{X: s.X.Value, Y: s.Y.Value}
}

// Settled reports whether both axes are within tolerance of rest.
func (s *SpringVec2) Settled(posTol, velTol float32) bool {
	return s.X.Settled(posTol, velTol) && s.Y.Settled(posTol, velTol)
}
