// File: threadgroup/worker.go
// Author: jfcameron
// License: MIT
//
// Worker loop: dequeue-and-execute until the queue is empty and termination
// has been signaled. Empty polls back off adaptively to curb CPU burn while
// keeping re-check latency bounded.

package threadgroup

import (
	"runtime"
	"sync/atomic"
	"time"
)

const maxBackoff = int64(time.Millisecond)

// worker is an owned execution unit plus its stable identity token. Owned
// exclusively by one group; transferable only as part of the group.
type worker struct {
	id       WorkerID
	shared   *sharedState
	done     chan struct{}
	executed atomic.Int64

	backoffNs int64 // loop-local, no synchronization
}

func newWorker(id WorkerID, shared *sharedState) *worker {
	return &worker{
		id:        id,
		shared:    shared,
		done:      make(chan struct{}),
		backoffNs: 1,
	}
}

// run is the worker's main loop. Exits only once the queue was observed
// empty after the termination flag was set; a successful dequeue always
// loops back before the flag is consulted again, so the queue drains first.
func (w *worker) run() {
	defer close(w.done)
	for {
		if task, ok := w.shared.tasks.TryDequeue(); ok {
			w.execute(task)
			w.backoffNs = 1
			continue
		}
		if w.shared.terminated.Load() {
			return
		}
		w.idle()
	}
}

// execute runs the task and updates counters. A panicking task is swallowed:
// task failure is the caller's concern, and a failed task still counts as
// consumed.
func (w *worker) execute(task Task) {
	defer func() {
		_ = recover()
		w.executed.Add(1)
		w.shared.executed.Add(1)
	}()
	task()
}

// idle yields on the first empty polls, then sleeps with doubling duration
// capped at maxBackoff.
func (w *worker) idle() {
	if w.backoffNs < int64(time.Microsecond) {
		runtime.Gosched()
	} else {
		time.Sleep(time.Duration(w.backoffNs))
	}
	w.backoffNs *= 2
	if w.backoffNs > maxBackoff {
		w.backoffNs = maxBackoff
	}
}

// join blocks until the worker's loop has exited.
func (w *worker) join() {
	<-w.done
}
