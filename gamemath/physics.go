// Package gamemath holds the pure geometry and stepping helpers used by the systems.
package gamemath

import "math"

// ApplyGravity accelerates a downward speed, capped at maxFall.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// StepToward moves from toward to by at most step.
func StepToward(from, to, step float64) float64 {
	d := to - from
	if math.Abs(d) <= step {
		return to
	}
	return from + Sign(d)*step
}

// Distance is the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
