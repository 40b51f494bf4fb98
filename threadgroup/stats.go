// File: threadgroup/stats.go
// Author: jfcameron
// License: MIT
//
// Counter snapshots for monitoring and the per-worker work report.

package threadgroup

// Stats returns basic group counters. total_tasks counts enqueued tasks,
// completed_tasks counts tasks executed by the group's own workers (tasks
// drained externally via TryGetTask are not included), pending_tasks is the
// current queue depth.
func (g *Group) Stats() map[string]int64 {
	s := g.shared
	if s == nil {
		return map[string]int64{}
	}
	return map[string]int64{
		"total_tasks":     s.enqueued.Load(),
		"completed_tasks": s.executed.Load(),
		"pending_tasks":   int64(s.tasks.Len()),
		"num_workers":     int64(len(g.workers)),
	}
}

// WorkerStats returns the number of tasks each owned worker has executed,
// keyed by identity token. Owner-only, like ThreadIDs.
func (g *Group) WorkerStats() map[WorkerID]int64 {
	out := make(map[WorkerID]int64, len(g.workers))
	for _, w := range g.workers {
		out[w.id] = w.executed.Load()
	}
	return out
}
