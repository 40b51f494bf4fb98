// File: threadgroup/shared.go
// Author: jfcameron
// License: MIT
//
// State shared between the group value and every worker it spawned. Each
// worker closure holds its own pointer, so the state stays reachable until
// the group and the last worker are both done with it.

package threadgroup

import (
	"sync/atomic"

	"github.com/jfcameron/jfc-thread-group/queue"
)

// sharedState bundles the task queue with the termination flag. One instance
// exists per group; ownership transfer moves the pointer, never the state.
type sharedState struct {
	tasks *queue.Unbounded[Task]

	// terminated is monotonic: false until the owning group is closed,
	// true forever after. Workers consult it only on the empty-queue
	// branch of their loop, so a signal observed mid-drain cannot drop a
	// task the worker could still see.
	terminated atomic.Bool

	enqueued atomic.Int64
	executed atomic.Int64
}

func newSharedState(ringCapacity int) *sharedState {
	return &sharedState{
		tasks: queue.NewUnbounded[Task](ringCapacity),
	}
}

// signalTermination is idempotent and irreversible.
func (s *sharedState) signalTermination() {
	s.terminated.Store(true)
}
