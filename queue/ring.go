// File: queue/ring.go
// Author: jfcameron
// License: MIT
//
// Bounded MPMC queue using per-cell sequence numbers, based on the pattern
// by Dmitry Vyukov. Head and tail live on separate cache lines to reduce
// contention between producers and consumers.

package queue

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Ring is a bounded lock-free MPMC queue with power-of-two capacity.
type Ring[T any] struct {
	head  uint64
	_     cpu.CacheLinePad
	tail  uint64
	_     cpu.CacheLinePad
	mask  uint64
	cells []cell[T]
}

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// NewRing creates a ring with capacity rounded up to a power of two.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}

	r := &Ring[T]{
		mask:  uint64(size - 1),
		cells: make([]cell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// Enqueue adds val; returns false if the ring is full.
func (r *Ring[T]) Enqueue(val T) bool {
	for {
		tail := atomic.LoadUint64(&r.tail)
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.data = val
				c.sequence.Store(tail + 1)
				return true
			}
		} else if dif < 0 {
			return false // full
		}
		// tail moved, retry
	}
}

// Dequeue removes and returns one item; ok is false if the ring is empty.
func (r *Ring[T]) Dequeue() (item T, ok bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		if dif == 0 {
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				item = c.data
				var zero T
				c.data = zero // release the reference for GC
				c.sequence.Store(head + r.mask + 1)
				return item, true
			}
		} else if dif < 0 {
			var zero T
			return zero, false // empty
		}
		// head moved, retry
	}
}

// Len reports the number of items currently held; approximate under
// concurrent mutation.
func (r *Ring[T]) Len() int {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the fixed ring capacity.
func (r *Ring[T]) Cap() int {
	return len(r.cells)
}
