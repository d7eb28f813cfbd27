package vmath

import "math"

// MinLength is the smallest vector length treated as non-degenerate
// Shorter vectors normalize as if their length were 1
const MinLength = 1e-9

// Vec2 is a float64 2D vector in playfield pixels (y grows downward)
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns Euclidean magnitude
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector, dividing by 1 when the length is below MinLength
// Never produces NaN or Inf for finite input
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < MinLength {
		l = 1
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates the vector by angle radians (standard 2D rotation matrix)
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp moves v toward target by factor t (0 = unchanged, 1 = target)
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
	}
}

// FromAngle returns a vector of the given magnitude pointing at angle radians
func FromAngle(angle, magnitude float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos * magnitude, sin * magnitude}
}

// Clamp restricts x to [lo, hi]; if hi < lo the result is lo
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}
