package boidswarm

import (
	"fmt"
	"math"
)

// A Vec2 is a simple 2D vector.
type Vec2 struct {
	X float64
	Y float64
}

// ToroidalDistance returns the shortest distance between a and b on a
// width × height rectangle whose opposite edges are identified.
func ToroidalDistance(a, b Vec2, width, height float64) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	dx = math.Min(dx, width-dx)
	dy = math.Min(dy, height-dy)
	return math.Hypot(dx, dy)
}

// Wrap shifts value by multiples of max-min until it lies in [min, max).
// It is used both for positions and for angles.
// It panics if max <= min or if any argument is not finite.
func Wrap(value, min, max float64) float64 {
	if !(max > min) || math.IsInf(max-min, 0) {
		panic(fmt.Sprintf("boidswarm: bad wrap range [%g, %g)", min, max))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("boidswarm: cannot wrap %g", value))
	}
	if value >= min && value < max {
		return value
	}
	span := max - min
	r := math.Mod(value-min, span)
	if r < 0 {
		r += span
	}
	value = min + r
	if value >= max {
		// rounding
		value = min
	}
	return value
}

// Clamp limits value to [-limit, limit].
func Clamp(value, limit float64) float64 {
	return math.Min(limit, math.Max(-limit, value))
}

// MeanAngle returns the circular mean of angles in radians.
// Repeating an angle weights it. The mean of no angles is 0.
func MeanAngle(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}
	var sumx, sumy float64
	for _, θ := range angles {
		sin, cos := math.Sincos(θ)
		sumx += cos
		sumy += sin
	}
	n := float64(len(angles))
	return math.Atan2(sumy/n, sumx/n)
}

// Bearing returns the direction of the vector pointing from u to v.
func Bearing(u, v Vec2) float64 {
	return math.Atan2(v.Y-u.Y, v.X-u.X)
}

// turn rotates dir toward target by at most maxTurn and returns the new
// direction in [-π, π).
func turn(dir, target, maxTurn float64) float64 {
	delta := Wrap(target-dir, -math.Pi, math.Pi)
	delta = Clamp(delta, maxTurn)
	return Wrap(dir+delta, -math.Pi, math.Pi)
}
