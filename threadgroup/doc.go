// File: threadgroup/doc.go
// Author: jfcameron
// License: MIT
//
// Package threadgroup implements a task-based concurrency abstraction: a
// fixed-size group of workers consuming deferred tasks from a shared
// unbounded queue until termination is signaled.
//
// The queue is publicly reachable through TryGetTask, so goroutines outside
// the group (typically the one that constructed it) can help perform its
// tasks. A Group is move-only: ownership of the live workers transfers via
// TransferFrom/NewFrom, never by copying the value.
package threadgroup
