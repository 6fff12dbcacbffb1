// Package mathutil holds the small numeric helpers shared by the engine
// components. Scores, weights, and context values are stored rounded to
// three decimals so that runlogs are stable across platforms.
package mathutil

import "math"

// Round3 rounds v to three decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Clamp01 clamps v to the closed interval [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
