package anim

import "math"

// Easing identifies a curve that reshapes the time axis of an animation.
// Every curve maps [0,1] to values that hit 0 at t=0 and 1 at t=1; the
// elastic, back, and bounce families overshoot in between.
type Easing int

const (
	Linear Easing = iota

	EaseInQuad
	EaseOutQuad
	EaseInOutQuad

	EaseInCubic
	EaseOutCubic
	EaseInOutCubic

	EaseInQuart
	EaseOutQuart
	EaseInOutQuart

	EaseInQuint
	EaseOutQuint
	EaseInOutQuint

	EaseInSine
	EaseOutSine
	EaseInOutSine

	EaseInExpo
	EaseOutExpo
	EaseInOutExpo

	EaseInCirc
	EaseOutCirc
	EaseInOutCirc

	EaseInElastic
	EaseOutElastic
	EaseInOutElastic

	EaseInBack
	EaseOutBack
	EaseInOutBack

	EaseInBounce
	EaseOutBounce
	EaseInOutBounce

	// Stepped quantizes t to stepCount discrete levels. Use SteppedN to
	// pair the tag with a count; Ease treats bare Stepped as 4 steps.
	Stepped
)

const (
	backOvershoot = 1.70158
	elasticPeriod = 0.3
)

// SteppedEasing couples the Stepped tag with its step count.
type SteppedEasing struct {
	Steps int
}

// SteppedN creates a stepped easing with n levels. n < 1 behaves as 1.
func SteppedN(n int) SteppedEasing {
	return SteppedEasing{Steps: n}
}

// Apply quantizes t, guaranteeing Apply(1) == 1.
func (s SteppedEasing) Apply(t float32) float32 {
	n := s.Steps
	if n < 1 {
		n = 1
	}
	t = clamp01(t)
	if t >= 1 {
		return 1
	}
	return float32(math.Floor(float64(t)*float64(n))) / float32(n)
}

// Ease evaluates the curve at t. t outside [0,1] is clamped first. The
// function is pure: no allocation, no context.
func Ease(e Easing, t float32) float32 {
	t = clamp01(t)
	x := float64(t)

	switch e {
	case Linear:
		return t

	case EaseInQuad:
		return float32(x * x)
	case EaseOutQuad:
		return float32(1 - (1-x)*(1-x))
	case EaseInOutQuad:
		if x < 0.5 {
			return float32(2 * x * x)
		}
		return float32(1 - math.Pow(-2*x+2, 2)/2)

	case EaseInCubic:
		return float32(x * x * x)
	case EaseOutCubic:
		return float32(1 - math.Pow(1-x, 3))
	case EaseInOutCubic:
		if x < 0.5 {
			return float32(4 * x * x * x)
		}
		return float32(1 - math.Pow(-2*x+2, 3)/2)

	case EaseInQuart:
		return float32(x * x * x * x)
	case EaseOutQuart:
		return float32(1 - math.Pow(1-x, 4))
	case EaseInOutQuart:
		if x < 0.5 {
			return float32(8 * x * x * x * x)
		}
		return float32(1 - math.Pow(-2*x+2, 4)/2)

	case EaseInQuint:
		return float32(x * x * x * x * x)
	case EaseOutQuint:
		return float32(1 - math.Pow(1-x, 5))
	case EaseInOutQuint:
		if x < 0.5 {
			return float32(16 * x * x * x * x * x)
		}
		return float32(1 - math.Pow(-2*x+2, 5)/2)

	case EaseInSine:
		return float32(1 - math.Cos(x*math.Pi/2))
	case EaseOutSine:
		return float32(math.Sin(x * math.Pi / 2))
	case EaseInOutSine:
		return float32(-(math.Cos(math.Pi*x) - 1) / 2)

	case EaseInExpo:
		if x == 0 {
			return 0
		}
		return float32(math.Pow(2, 10*x-10))
	case EaseOutExpo:
		if x == 1 {
			return 1
		}
		return float32(1 - math.Pow(2, -10*x))
	case EaseInOutExpo:
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return float32(math.Pow(2, 20*x-10) / 2)
		default:
			return float32((2 - math.Pow(2, -20*x+10)) / 2)
		}

	case EaseInCirc:
		return float32(1 - math.Sqrt(1-x*x))
	case EaseOutCirc:
		return float32(math.Sqrt(1 - (x-1)*(x-1)))
	case EaseInOutCirc:
		if x < 0.5 {
			return float32((1 - math.Sqrt(1-4*x*x)) / 2)
		}
		return float32((math.Sqrt(1-math.Pow(-2*x+2, 2)) + 1) / 2)

	case EaseInElastic:
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		c := 2 * math.Pi / elasticPeriod
		return float32(-math.Pow(2, 10*x-10) * math.Sin((x-1-elasticPeriod/4)*c))
	case EaseOutElastic:
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		c := 2 * math.Pi / elasticPeriod
		return float32(math.Pow(2, -10*x)*math.Sin((x-elasticPeriod/4)*c) + 1)
	case EaseInOutElastic:
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		// The sine argument runs on a 20x time scale, so the period is 4.5.
		c := 2 * math.Pi / 4.5
		if x < 0.5 {
			return float32(-(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*c)) / 2)
		}
		return float32(math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*c)/2 + 1)

	case EaseInBack:
		s := backOvershoot
		return float32((s+1)*x*x*x - s*x*x)
	case EaseOutBack:
		s := backOvershoot
		y := x - 1
		return float32(1 + (s+1)*y*y*y + s*y*y)
	case EaseInOutBack:
		s := backOvershoot * 1.525
		if x < 0.5 {
			return float32(math.Pow(2*x, 2) * ((s+1)*2*x - s) / 2)
		}
		return float32((math.Pow(2*x-2, 2)*((s+1)*(2*x-2)+s) + 2) / 2)

	case EaseInBounce:
		return float32(1 - bounceOut(1-x))
	case EaseOutBounce:
		return float32(bounceOut(x))
	case EaseInOutBounce:
		if x < 0.5 {
			return float32((1 - bounceOut(1-2*x)) / 2)
		}
		return float32((1 + bounceOut(2*x-1)) / 2)

	case Stepped:
		return SteppedN(4).Apply(t)
	}

	return t
}

// bounceOut is the canonical 4-segment piecewise parabola.
func bounceOut(x float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case x < 1/d1:
		return n1 * x * x
	case x < 2/d1:
		x -= 1.5 / d1
		return n1*x*x + 0.75
	case x < 2.5/d1:
		x -= 2.25 / d1
		return n1*x*x + 0.9375
	default:
		x -= 2.625 / d1
		return n1*x*x + 0.984375
	}
}
