// Package ranking holds the pure scoring functions behind the explore feeds,
// place insights, and search. Every function here is deterministic for a fixed
// input and injected clock, never mutates its inputs, and never returns an
// error: malformed data is normalized away at the data-source boundary and
// no-data conditions map to documented neutral returns.
package ranking

import (
	"math"
	"time"
)

const (
	hoursPerDay  = 24
	daysPerYear  = 365
	minHoursOld  = 0.1
	velocitySpan = 48
)

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SafeRatio divides num by den, returning 0 when den is not positive.
func SafeRatio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// RoundTo1 rounds to the nearest 0.1.
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AgeDays returns the fractional age of t in days at the provided now.
// The zero time reads as very old, which decays its recency to nothing.
func AgeDays(t, now time.Time) float64 {
	return now.Sub(t).Hours() / hoursPerDay
}

// HoursOld returns the age of t in hours, floored at 0.1 so that density
// scores dividing by it stay finite for just-published posts.
func HoursOld(t, now time.Time) float64 {
	hours := now.Sub(t).Hours()
	if hours < minHoursOld {
		return minHoursOld
	}
	return hours
}

// RecencyFraction is the universal linear decay: 1.0 at publication falling
// to 0 over one year. Future timestamps clamp to 1.
func RecencyFraction(t, now time.Time) float64 {
	return Clamp01(1 - AgeDays(t, now)/daysPerYear)
}
