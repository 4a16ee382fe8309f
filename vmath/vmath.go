package vmath

import "math"

// EaseInExpo maps t in [0,1] onto an exponential curve approximating perspective foreshortening
// Values at or below 0 map to 0
func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// RoundHalfUp rounds half away from negative infinity, matching pixel snapping
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
