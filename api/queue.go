// File: api/queue.go
// Author: jfcameron
// License: MIT
//
// Contract for the shared multi-producer/multi-consumer task collection.

package api

// TaskQueue abstracts an MPMC queue of deferred work items.
//
// All methods are safe for unsynchronized use from any number of goroutines.
// Each enqueued item is delivered to exactly one successful TryDequeue call.
type TaskQueue[T any] interface {
	// Enqueue inserts one item and returns immediately.
	Enqueue(item T)

	// EnqueueBulk inserts a batch of items, preserving their relative order
	// with respect to this producer.
	EnqueueBulk(items []T)

	// TryDequeue removes and returns one item if any is currently available.
	// It never blocks; ok is false when the queue was observed empty.
	TryDequeue() (item T, ok bool)

	// Len reports the number of items currently held. Under concurrent
	// mutation the value is a point-in-time estimate.
	Len() int
}
