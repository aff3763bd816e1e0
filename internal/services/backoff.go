package services

import (
	"math"
	"time"
)

// BackoffDelay returns the wait before the next sync pass after the given
// number of consecutive failures. Zero failures waits the base interval.
// The delay grows by powers of two, never drops below base and is clamped
// to [minDelay, maxDelay].
func BackoffDelay(base, maxDelay, minDelay time.Duration, failures int) time.Duration {
	if failures <= 0 {
		return clampDuration(base, minDelay, maxDelay)
	}

	ceiling := float64(maxDelay) / float64(max(minDelay, base))
	multiplier := math.Min(math.Pow(2, float64(failures)), ceiling)
	multiplier = math.Max(multiplier, 1)

	return clampDuration(time.Duration(float64(base)*multiplier), minDelay, maxDelay)
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if hi < lo {
		hi = lo
	}
	return min(max(d, lo), hi)
}
