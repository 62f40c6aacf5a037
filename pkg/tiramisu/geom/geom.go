// Package geom provides the small 2D value types shared by the animation,
// icon, and widget packages: points, axis-aligned rectangles, and insets.
package geom

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X float32
	Y float32
}

// V2 creates a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle with origin at its top-left corner.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// R creates a Rect.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Shrink returns the rectangle inset by insets on all four sides.
func (r Rect) Shrink(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Insets defines spacing on all four sides of an element.
type Insets struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// UniformInsets creates an Insets with the same value on all sides.
func UniformInsets(value float32) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricInsets creates an Insets with horizontal and vertical values.
func SymmetricInsets(horizontal, vertical float32) Insets {
	return Insets{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}
