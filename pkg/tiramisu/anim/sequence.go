package anim

// LoopMode controls what a Sequence does when its last child completes.
type LoopMode int

const (
	// LoopOnce completes the sequence after the final child.
	LoopOnce LoopMode = iota
	// LoopRepeat restarts from the first child for a fixed cycle count.
	LoopRepeat
	// LoopPingPong reverses child order and swaps each child's endpoints
	// at every cycle boundary. Ping-pong sequences never complete.
	LoopPingPong
)

// Sequence presents an ordered list of tweens as a single animation.
// When a child completes mid-frame, the leftover delta time cascades into
// the next child so no frame is lost. It is an explicit state machine, not
// a coroutine: the host owns the clock.
type Sequence[T any] struct {
	children []*Tween[T]
	delays   []float32 // seconds of delay before each child; index-aligned
	index    int
	delay    float32 // remaining delay before children[index]
	state    State
	loop     LoopMode
	repeats  int // for LoopRepeat; <= 0 means infinite
	cycles   int
}

// NewSequence creates a Once-looped sequence over the given tweens.
func NewSequence[T any](children ...*Tween[T]) *Sequence[T] {
	return &Sequence[T]{
		children: children,
		delays:   make([]float32, len(children)),
	}
}

// WithDelayBefore sets the delay, in seconds, inserted before child i.
func (s *Sequence[T]) WithDelayBefore(i int, delay float32) *Sequence[T] {
	if i >= 0 && i < len(s.delays) {
		s.delays[i] = delay
	}
	return s
}

// WithRepeat loops the sequence for k full cycles; k <= 0 loops forever.
func (s *Sequence[T]) WithRepeat(k int) *Sequence[T] {
	s.loop = LoopRepeat
	s.repeats = k
	return s
}

// WithPingPong reverses direction at every cycle boundary.
func (s *Sequence[T]) WithPingPong() *Sequence[T] {
	s.loop = LoopPingPong
	return s
}

// State returns the current lifecycle state.
func (s *Sequence[T]) State() State {
	return s.state
}

// Start resets every child and begins at the first.
func (s *Sequence[T]) Start() {
	if s.state == Running {
		return
	}
	s.rewind()
	s.cycles = 0
	s.state = Running
	if len(s.children) > 0 {
		s.children[0].Start()
	}
}

// Pause suspends the sequence.
func (s *Sequence[T]) Pause() {
	if s.state == Running {
		s.state = Paused
	}
}

// Resume continues a paused sequence.
func (s *Sequence[T]) Resume() {
	if s.state == Paused {
		s.state = Running
	}
}

// Reset returns the sequence and all children to NotStarted.
func (s *Sequence[T]) Reset() {
	s.rewind()
	s.cycles = 0
	s.state = NotStarted
}

func (s *Sequence[T]) rewind() {
	s.index = 0
	if len(s.delays) > 0 {
		s.delay = s.delays[0]
	}
	for _, c := range s.children {
		c.Reset()
	}
}

// Update advances the sequence by dt seconds, cascading leftover time
// across child completions and cycle boundaries.
func (s *Sequence[T]) Update(dt float32) {
	if s.state != Running || len(s.children) == 0 {
		return
	}

	guard := 0
	for dt > 0 && guard < 10000 {
		guard++
		// Consume any pending inter-step delay first.
		if s.delay > 0 {
			if dt < s.delay {
				s.delay -= dt
				return
			}
			dt -= s.delay
			s.delay = 0
		}

		child := s.children[s.index]
		if child.State() == NotStarted {
			child.Start()
		}

		remaining := child.Remaining()
		if child.Duration() <= 0 {
			remaining = 0
		}
		if dt < remaining {
			child.Update(dt)
			return
		}

		child.Update(remaining)
		dt -= remaining

		if !s.advance() {
			return
		}
	}
}

// advance moves to the next child, handling cycle boundaries. It returns
// false when the sequence has completed.
func (s *Sequence[T]) advance() bool {
	s.index++
	if s.index < len(s.children) {
		s.delay = s.delays[s.index]
		return true
	}

	// Cycle boundary.
	s.cycles++
	switch s.loop {
	case LoopOnce:
		s.index = len(s.children) - 1
		s.state = Completed
		return false
	case LoopRepeat:
		if s.repeats > 0 && s.cycles >= s.repeats {
			s.index = len(s.children) - 1
			s.state = Completed
			return false
		}
	case LoopPingPong:
		reverse(s.children)
		reverse(s.delays)
		for _, c := range s.children {
			start, end := c.Endpoints()
			c.Retarget(end, start)
		}
	}

	s.rewindChildrenForNextCycle()
	return true
}

func (s *Sequence[T]) rewindChildrenForNextCycle() {
	s.index = 0
	s.delay = s.delays[0]
	for _, c := range s.children {
		c.Reset()
	}
}

// Value returns the current child's value; before the first start it is
// the first child's start value, after completion the last child's end.
func (s *Sequence[T]) Value() T {
	if len(s.children) == 0 {
		var zero T
		return zero
	}
	return s.children[s.index].Value()
}

// Index returns the current child index.
func (s *Sequence[T]) Index() int {
	return s.index
}

// Done reports whether the sequence has completed.
func (s *Sequence[T]) Done() bool {
	return s.state == Completed
}

func reverse[E any](xs []E) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Staggered runs N independent tweens with a fixed per-index start
// offset. Each child holds its start value until i*stagger seconds have
// elapsed since Start.
type Staggered[T any] struct {
	children []*Tween[T]
	stagger  float32 // seconds between successive starts
	elapsed  float32
	state    State
}

// NewStaggered creates a staggered set with the given offset step.
func NewStaggered[T any](stagger float32, children ...*Tween[T]) *Staggered[T] {
	return &Staggered[T]{
		children: children,
		stagger:  stagger,
	}
}

// Start resets all children and begins timing offsets from zero.
func (s *Staggered[T]) Start() {
	if s.state == Running {
		return
	}
	s.elapsed = 0
	for _, c := range s.children {
		c.Reset()
	}
	s.state = Running
}

// Pause suspends the whole set.
func (s *Staggered[T]) Pause() {
	if s.state == Running {
		s.state = Paused
	}
}

// Resume continues a paused set.
func (s *Staggered[T]) Resume() {
	if s.state == Paused {
		s.state = Running
	}
}

// Reset returns the set and all children to NotStarted.
func (s *Staggered[T]) Reset() {
	s.elapsed = 0
	for _, c := range s.children {
		c.Reset()
	}
	s.state = NotStarted
}

// Update advances the set by dt seconds, starting children as their
// offsets elapse. The frame that crosses an offset forwards only the
// portion of dt past the offset.
func (s *Staggered[T]) Update(dt float32) {
	if s.state != Running {
		return
	}
	s.elapsed += dt

	done := true
	for i, c := range s.children {
		offset := float32(i) * s.stagger
		switch {
		case c.State() == NotStarted && s.elapsed >= offset:
			// The crossing frame forwards only the time past the offset.
			c.Start()
			c.Update(s.elapsed - offset)
		case c.State() == Running:
			c.Update(dt)
		}
		if !c.Done() {
			done = false
		}
	}
	if done && len(s.children) > 0 {
		s.state = Completed
	}
}

// Value returns child i's current value.
func (s *Staggered[T]) Value(i int) T {
	return s.children[i].Value()
}

// Len returns the number of children.
func (s *Staggered[T]) Len() int {
	return len(s.children)
}

// Done reports whether every child has completed.
func (s *Staggered[T]) Done() bool {
	return s.state == Completed
}
