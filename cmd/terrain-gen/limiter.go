package main

import "time"

// rateLimiter paces the walk loop to a fixed number of ticks per second.
type rateLimiter struct {
	rate int
	next time.Time
}

func newRateLimiter(rate int) *rateLimiter {
	return &rateLimiter{rate: rate}
}

// Wait blocks until the next tick is due. A rate of zero or less never waits.
// Sleeps most of the interval and spins for the last few microseconds.
func (r *rateLimiter) Wait() {
	if r.rate <= 0 {
		r.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(r.rate)
	if r.next.IsZero() {
		r.next = time.Now().Add(target)
	} else {
		r.next = r.next.Add(target)
	}

	for {
		remaining := time.Until(r.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(r.next) <= 0 {
			break
		}
	}

	// after a hitch, resync instead of bursting to catch up
	if late := -time.Until(r.next); late > target {
		r.next = time.Now().Add(target)
	}
}
