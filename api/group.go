// File: api/group.go
// Author: jfcameron
// License: MIT
//
// Contract for the worker group: task submission, external participation,
// and synchronization-free introspection of owned workers.

package api

// TaskSource is the external-participation hook. Any goroutine may call
// TryGetTask to help drain the shared queue; a returned task must be invoked
// by the caller, the group never executes it on the caller's behalf.
type TaskSource interface {
	TryGetTask() (Task, bool)
}

// Group abstracts a fixed-size set of workers consuming from a shared queue.
//
// AddTask/AddTasks/TryGetTask touch only the shared queue and are safe from
// any goroutine. ThreadCount and ThreadIDs read owner-only state and are
// synchronization-free; they must be called only by the goroutine that owns
// the group value.
type Group interface {
	TaskSource

	// AddTask makes one task eligible for consumption by any worker or any
	// external TryGetTask caller. Returns ErrGroupClosed after termination
	// has been signaled.
	AddTask(task Task) error

	// AddTasks enqueues a batch in one call.
	AddTasks(tasks []Task) error

	// ThreadCount reports the number of workers the group currently owns.
	ThreadCount() int

	// ThreadIDs returns the identity tokens assigned at spawn time, in
	// spawn order.
	ThreadIDs() []WorkerID
}
