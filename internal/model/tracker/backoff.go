package tracker

import "time"

// Backoff returns base * 2^attempt capped at max. A negative attempt yields base.
func Backoff(attempt int, base, max time.Duration) time.Duration {
	if attempt < 0 || base <= 0 {
		return base
	}
	if attempt > 62 || base > max>>uint(attempt) {
		return max
	}
	return base << uint(attempt)
}
