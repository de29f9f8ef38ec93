package domain

import "math"

// Norm360 normalizes an angle in degrees to [0, 360).
func Norm360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Separation returns the smallest angular distance between two longitudes,
// in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(Norm360(a) - Norm360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Elongation returns (a - b) normalized to [0, 360), the zodiacal arc from b
// forward to a. Tithi and Nitya yoga are piecewise lookups over
// Elongation(moon, sun).
func Elongation(a, b float64) float64 {
	return Norm360(a - b)
}

// WithinArc reports whether longitude x lies on the zodiacal arc from
// start forward to end, half-open: [start, end).
func WithinArc(x, start, end float64) bool {
	return Elongation(x, start) < Elongation(end, start)
}

// Round3 rounds to three decimal places. Scores and strengths are reported at
// this precision throughout.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
