package anim

import "time"

// State is the lifecycle of a timed animation.
type State int

const (
	NotStarted State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Tween drives an interpolation from start to end over a fixed duration,
// reshaped by an easing curve. All operations are total; Value is safe to
// call in every state.
type Tween[T any] struct {
	start    T
	end      T
	lerp     Interpolator[T]
	duration float32 // seconds
	elapsed  float32
	state    State
	ease     func(float32) float32
}

// NewTween creates a tween with linear easing. A non-positive duration
// means "instantly at end": progress is 1 from the first tick.
func NewTween[T any](start, end T, lerp Interpolator[T], d time.Duration) *Tween[T] {
	return &Tween[T]{
		start:    start,
		end:      end,
		lerp:     lerp,
		duration: float32(d.Seconds()),
		ease:     func(t float32) float32 { return t },
	}
}

// WithEasing sets the easing curve and returns the tween for chaining.
func (tw *Tween[T]) WithEasing(e Easing) *Tween[T] {
	tw.ease = func(t float32) float32 { return Ease(e, t) }
	return tw
}

// WithSteppedEasing sets an n-step quantized curve.
func (tw *Tween[T]) WithSteppedEasing(n int) *Tween[T] {
	s := SteppedN(n)
	tw.ease = s.Apply
	return tw
}

// WithEasingFunc sets a custom curve. fn must map 0 to 0 and 1 to 1.
func (tw *Tween[T]) WithEasingFunc(fn func(float32) float32) *Tween[T] {
	tw.ease = fn
	return tw
}

// State returns the current lifecycle state.
func (tw *Tween[T]) State() State {
	return tw.state
}

// Start transitions to Running and resets elapsed time. Calling Start on
// an already Running tween does nothing.
func (tw *Tween[T]) Start() {
	if tw.state == Running {
		return
	}
	tw.elapsed = 0
	tw.state = Running
}

// Pause suspends a Running tween.
func (tw *Tween[T]) Pause() {
	if tw.state == Running {
		tw.state = Paused
	}
}

// Resume continues a Paused tween.
func (tw *Tween[T]) Resume() {
	if tw.state == Paused {
		tw.state = Running
	}
}

// Reset returns the tween to NotStarted with zero elapsed time.
func (tw *Tween[T]) Reset() {
	tw.elapsed = 0
	tw.state = NotStarted
}

// Update advances the tween by dt seconds. Only Running tweens advance;
// reaching the duration transitions to Completed.
func (tw *Tween[T]) Update(dt float32) {
	if tw.state != Running {
		return
	}
	tw.elapsed += dt
	if tw.elapsed >= tw.duration {
		tw.elapsed = tw.duration
		if tw.elapsed < 0 {
			tw.elapsed = 0
		}
		tw.state = Completed
	}
}

// Progress returns elapsed/duration clamped to [0,1]. A non-positive
// duration reports 1.
func (tw *Tween[T]) Progress() float32 {
	if tw.duration <= 0 {
		return 1
	}
	return clamp01(tw.elapsed / tw.duration)
}

// Value returns the eased interpolation at the current progress.
func (tw *Tween[T]) Value() T {
	return tw.lerp(tw.start, tw.end, tw.ease(tw.Progress()))
}

// Done reports whether the tween has completed.
func (tw *Tween[T]) Done() bool {
	return tw.state == Completed
}

// Duration returns the configured duration in seconds.
func (tw *Tween[T]) Duration() float32 {
	return tw.duration
}

// Remaining returns the unelapsed portion of the duration, never negative.
func (tw *Tween[T]) Remaining() float32 {
	r := tw.duration - tw.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Endpoints returns the start and end values.
func (tw *Tween[T]) Endpoints() (start, end T) {
	return tw.start, tw.end
}

// Retarget replaces the endpoints without touching elapsed time. Ping-pong
// sequencing uses it to swap direction at cycle boundaries.
func (tw *Tween[T]) Retarget(start, end T) {
	tw.start = start
	tw.end = end
}
