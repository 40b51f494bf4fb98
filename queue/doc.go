// Package queue
// Author: jfcameron
// License: MIT
//
// Concurrent multi-producer/multi-consumer queues for task distribution.
// Ring is a bounded lock-free MPMC ring buffer; Unbounded layers an
// overflow FIFO on top of it so producers never observe back-pressure.
// Both guarantee exactly-once delivery: every enqueued item is returned by
// exactly one successful dequeue across all concurrent consumers.
package queue
