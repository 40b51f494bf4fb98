// File: internal/hardware/topology_stub.go
//go:build !linux
// +build !linux

// Author: jfcameron
// License: MIT
//
// Fallback for platforms without an accessible scheduler affinity mask.

package hardware

// platformAvailableParallelism reports no platform-specific hint, deferring
// to runtime.NumCPU in the caller.
func platformAvailableParallelism() int {
	return 0
}
