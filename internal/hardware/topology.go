// File: internal/hardware/topology.go
// Author: jfcameron
// License: MIT
//
// Cross-platform detection of the parallelism actually available to the
// process, with runtime fallback.

package hardware

import "runtime"

// AvailableParallelism returns the number of logical CPUs the process may
// run on. On platforms that expose a scheduler affinity mask this respects
// the mask (a container limited to 2 CPUs on a 64-CPU host reports 2);
// elsewhere it falls back to runtime.NumCPU.
func AvailableParallelism() int {
	if n := platformAvailableParallelism(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}
