// File: threadgroup/group.go
// Author: jfcameron
// License: MIT
//
// Group: owns a collection of workers and one reference to the shared
// queue-plus-flag state. Construction spawns the workers; Close signals
// termination and joins them; TransferFrom moves ownership wholesale.

package threadgroup

import (
	"github.com/google/uuid"

	"github.com/jfcameron/jfc-thread-group/api"
	"github.com/jfcameron/jfc-thread-group/internal/hardware"
)

// Task is a zero-argument deferred unit of work.
type Task = api.Task

// WorkerID is the stable identity token assigned to a worker at spawn time.
type WorkerID = api.WorkerID

// Group is a fixed-size set of workers consuming from a shared unbounded
// task queue.
//
// AddTask, AddTasks and TryGetTask touch only the shared queue and are safe
// from any number of goroutines. All other methods read or mutate owned
// state and must be called only from the goroutine that owns the Group
// value. A Group must not be copied after first use; transfer ownership
// with TransferFrom or NewFrom instead.
type Group struct {
	noCopy noCopy

	shared  *sharedState
	workers []*worker
	ids     []WorkerID
}

var (
	_ api.Group            = (*Group)(nil)
	_ api.GracefulShutdown = (*Group)(nil)
)

// New constructs a group with exactly workerCount workers. Zero is legal and
// yields a group that performs no work unless drained externally through
// TryGetTask. Negative counts are treated as zero.
func New(workerCount int, opts ...Option) *Group {
	if workerCount < 0 {
		workerCount = 0
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Group{
		shared:  newSharedState(cfg.ringCapacity),
		workers: make([]*worker, 0, workerCount),
		ids:     make([]WorkerID, 0, workerCount),
	}
	for i := 0; i < workerCount; i++ {
		w := newWorker(WorkerID(uuid.New().String()), g.shared)
		g.workers = append(g.workers, w)
		g.ids = append(g.ids, w.id)
		go w.run()
	}
	return g
}

// NewDefault constructs a group sized to the hardware: available parallelism
// minus one, reserving a slot for the constructing goroutine, which is
// expected to participate via TryGetTask. On a single-CPU system the group
// has zero workers and the caller must drain the queue itself.
func NewDefault(opts ...Option) *Group {
	if n := hardware.AvailableParallelism(); n > 1 {
		return New(n-1, opts...)
	}
	return New(0, opts...)
}

// NewFrom move-constructs a group from src, leaving src with zero workers
// and an empty identity list.
func NewFrom(src *Group) *Group {
	g := &Group{}
	g.TransferFrom(src)
	return g
}

// ThreadCount reports the number of workers the group currently owns.
// Synchronization-free; owner-only.
func (g *Group) ThreadCount() int {
	return len(g.workers)
}

// ThreadIDs returns the identity tokens assigned at construction, in spawn
// order. Synchronization-free; owner-only.
func (g *Group) ThreadIDs() []WorkerID {
	return append([]WorkerID(nil), g.ids...)
}

// AddTask makes one task eligible for consumption by any worker or any
// external TryGetTask caller.
func (g *Group) AddTask(task Task) error {
	s := g.shared
	if s == nil || s.terminated.Load() {
		return ErrGroupClosed
	}
	s.tasks.Enqueue(task)
	s.enqueued.Add(1)
	return nil
}

// AddTasks enqueues a batch in one call. Relative order is preserved for
// this producer; interleaving with other producers is unspecified.
func (g *Group) AddTasks(tasks []Task) error {
	s := g.shared
	if s == nil || s.terminated.Load() {
		return ErrGroupClosed
	}
	s.tasks.EnqueueBulk(tasks)
	s.enqueued.Add(int64(len(tasks)))
	return nil
}

// TryGetTask removes and returns one task if any is available. The caller
// must invoke the returned task itself; the group does not execute it. Never
// blocks; ok is false when the queue was observed empty.
func (g *Group) TryGetTask() (Task, bool) {
	s := g.shared
	if s == nil {
		return nil, false
	}
	return s.tasks.TryDequeue()
}

// TransferFrom move-assigns: the destination first closes whatever it
// currently owns (joining its own workers), then takes src's workers,
// identity tokens and shared state. src is left owning nothing, so closing
// it afterwards is a no-op. Transferring from itself or from nil does
// nothing.
func (g *Group) TransferFrom(src *Group) {
	if src == nil || src == g {
		return
	}
	_ = g.Close()

	g.shared = src.shared
	g.workers = src.workers
	g.ids = src.ids

	src.shared = nil
	src.workers = nil
	src.ids = nil
}

// Close signals termination and blocks until every owned worker has drained
// the queue and exited. A group owning zero workers (constructed with zero,
// moved from, or already closed) closes as a no-op: no flag is set and
// pending tasks are silently dropped. Idempotent; always returns nil.
func (g *Group) Close() error {
	if len(g.workers) == 0 {
		return nil
	}
	g.shared.signalTermination()
	for _, w := range g.workers {
		w.join()
	}
	g.workers = nil
	g.ids = nil
	return nil
}

// noCopy triggers go vet's copylocks check on value copies of Group.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
