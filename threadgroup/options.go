// File: threadgroup/options.go
// Package threadgroup defines functional options for group construction.
// Author: jfcameron
// License: MIT

package threadgroup

// Option customizes group construction.
type Option func(*config)

type config struct {
	ringCapacity int
}

// WithRingCapacity sizes the lock-free fast path of the shared task queue.
// Values <= 0 keep the package default. The queue itself stays unbounded;
// this only tunes how much of it avoids the overflow lock.
func WithRingCapacity(n int) Option {
	return func(c *config) {
		c.ringCapacity = n
	}
}
