// File: api/types.go
// Author: jfcameron
// License: MIT
//
// Shared types for the thread-group task-distribution primitives.

package api

// Task is a zero-argument deferred unit of work. It captures whatever state
// it needs at creation time and reports nothing back; result propagation, if
// any, is arranged by the caller inside the closure.
type Task func()

// WorkerID is the stable identity token assigned to a worker at spawn time.
// It never changes for the lifetime of the worker and survives ownership
// transfer of the group that owns it.
type WorkerID string
