// File: queue/unbounded.go
// Author: jfcameron
// License: MIT
//
// Unbounded MPMC queue: a lock-free ring fast path with a mutex-protected
// overflow FIFO behind it. Enqueue never reports back-pressure; TryDequeue
// never blocks.

package queue

import (
	"sync"
	"sync/atomic"

	eq "github.com/eapache/queue"

	"github.com/jfcameron/jfc-thread-group/api"
)

// DefaultRingCapacity is the ring fast-path size used when no capacity is
// given to NewUnbounded.
const DefaultRingCapacity = 1024

// Unbounded is an unbounded MPMC queue.
//
// Items flow through the ring while it has room. When the ring is full, or
// while older items are still parked in the overflow FIFO, producers append
// to the overflow instead; this keeps per-producer insertion order intact,
// because a producer returns to the ring only once every spilled item has
// already been handed to a consumer. Consumers drain the ring before the
// overflow, so ring items (the older ones) always leave first.
type Unbounded[T any] struct {
	ring *Ring[T]

	mu       sync.Mutex
	overflow *eq.Queue

	spilled atomic.Int64
}

var _ api.TaskQueue[int] = (*Unbounded[int])(nil)

// NewUnbounded creates an unbounded queue. ringCapacity sizes the lock-free
// fast path and is rounded up to a power of two; values <= 0 select
// DefaultRingCapacity.
func NewUnbounded[T any](ringCapacity int) *Unbounded[T] {
	if ringCapacity <= 0 {
		ringCapacity = DefaultRingCapacity
	}
	return &Unbounded[T]{
		ring:     NewRing[T](ringCapacity),
		overflow: eq.New(),
	}
}

// Enqueue inserts one item and returns immediately. Safe from any number of
// concurrent producers, including while dequeues are in progress.
func (q *Unbounded[T]) Enqueue(item T) {
	if q.spilled.Load() == 0 && q.ring.Enqueue(item) {
		return
	}
	q.mu.Lock()
	q.overflow.Add(item)
	q.spilled.Add(1)
	q.mu.Unlock()
}

// EnqueueBulk inserts a batch of items, preserving their relative order for
// consumers that respect per-producer ordering.
func (q *Unbounded[T]) EnqueueBulk(items []T) {
	for _, item := range items {
		q.Enqueue(item)
	}
}

// TryDequeue removes and returns one item if available; ok is false when
// both the ring and the overflow were observed empty. Never blocks.
func (q *Unbounded[T]) TryDequeue() (item T, ok bool) {
	if item, ok = q.ring.Dequeue(); ok {
		return item, true
	}
	if q.spilled.Load() > 0 {
		q.mu.Lock()
		if q.overflow.Length() > 0 {
			item = q.overflow.Remove().(T)
			q.spilled.Add(-1)
			q.mu.Unlock()
			return item, true
		}
		q.mu.Unlock()
	}
	var zero T
	return zero, false
}

// Len reports the number of items currently held; approximate under
// concurrent mutation.
func (q *Unbounded[T]) Len() int {
	return q.ring.Len() + int(q.spilled.Load())
}
