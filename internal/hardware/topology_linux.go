// File: internal/hardware/topology_linux.go
//go:build linux
// +build linux

// Author: jfcameron
// License: MIT
//
// Linux implementation reading the scheduler affinity mask of the calling
// process via sched_getaffinity.

package hardware

import "golang.org/x/sys/unix"

// platformAvailableParallelism counts the CPUs in the process affinity mask.
// Returns 0 on failure so the caller falls back to runtime.NumCPU.
func platformAvailableParallelism() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	return set.Count()
}
