package vmath

import "math"

// Vec is a 2D vector in world units, y grows downward
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromPolar returns the vector with given direction (radians) and magnitude
func FromPolar(angle, magnitude float64) Vec {
	return Vec{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean magnitude
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Lerp moves v toward o by fraction t of the remaining distance
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Finite reports whether both components are real numbers
func (v Vec) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
