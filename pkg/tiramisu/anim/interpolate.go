// Package anim provides the value-interpolation and animation machinery
// shared by every widget: linear interpolation over common carriers, a
// catalog of easing curves, timed tweens, damped springs, and sequences.
//
// Everything in this package is step-driven. The host toolkit owns the
// clock and feeds each animation the frame's delta time; nothing here
// blocks, allocates per frame, or spawns goroutines.
package anim

import (
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/geom"
	"github.com/tiramisu-ui/tiramisu/pkg/tiramisu/paint"
)

// Interpolator computes the value between a and b at t in [0,1].
// Implementations must satisfy f(a,b,0) == a and f(a,b,1) == b.
type Interpolator[T any] func(a, b T, t float32) T

// Lerp is the scalar interpolator for float32.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpF64 is the scalar interpolator for float64.
func LerpF64(a, b float64, t float32) float64 {
	return a + (b-a)*float64(t)
}

// LerpVec2 interpolates componentwise.
func LerpVec2(a, b geom.Vec2, t float32) geom.Vec2 {
	return geom.Vec2{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
	}
}

// LerpRect interpolates componentwise.
func LerpRect(a, b geom.Rect, t float32) geom.Rect {
	return geom.Rect{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		W: Lerp(a.W, b.W, t),
		H: Lerp(a.H, b.H, t),
	}
}

// LerpColor interpolates per channel in premultiplied space with
// round-and-clamp, so every channel stays in [0,255].
func LerpColor(a, b paint.Color, t float32) paint.Color {
	return a.Lerp(b, t)
}

// LerpOption interpolates optional values with nearest-endpoint
// semantics: when exactly one side is nil, the result collapses to the
// non-nil side for t < 0.5 only if that side is a; in general the result
// is whichever endpoint t is nearest to. Both nil yields nil at every t.
func LerpOption[T any](lerp Interpolator[T], a, b *T, t float32) *T {
	switch {
	case a == nil && b == nil:
		return nil
	case a != nil && b != nil:
		v := lerp(*a, *b, t)
		return &v
	case t < 0.5:
		return a
	default:
		return b
	}
}

// Pair is a homogeneous 2-tuple carrier.
type Pair[T any] struct {
	A T
	B T
}

// LerpPair interpolates componentwise.
func LerpPair[T any](lerp Interpolator[T]) Interpolator[Pair[T]] {
	return func(a, b Pair[T], t float32) Pair[T] {
		return Pair[T]{
			A: lerp(a.A, b.A, t),
			B: lerp(a.B, b.B, t),
		}
	}
}

// Triple is a homogeneous 3-tuple carrier.
type Triple[T any] struct {
	A T
	B T
	C T
}

// LerpTriple interpolates componentwise.
func LerpTriple[T any](lerp Interpolator[T]) Interpolator[Triple[T]] {
	return func(a, b Triple[T], t float32) Triple[T] {
		return Triple[T]{
			A: lerp(a.A, b.A, t),
			B: lerp(a.B, b.B, t),
			C: lerp(a.C, b.C, t),
		}
	}
}

// SmoothStep is the cubic Hermite ramp t²(3−2t), with t clamped to [0,1].
func SmoothStep(t float32) float32 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// SmootherStep is Perlin's quintic ramp t³(6t²−15t+10), with t clamped
// to [0,1].
func SmootherStep(t float32) float32 {
	t = clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
