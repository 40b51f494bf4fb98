// File: internal/hardware/topology_test.go
// Author: jfcameron
// License: MIT

package hardware

import (
	"runtime"
	"testing"
)

func TestAvailableParallelism(t *testing.T) {
	n := AvailableParallelism()
	if n < 1 {
		t.Errorf("Expected at least 1 available CPU, got %d", n)
	}
	if n > runtime.NumCPU() {
		t.Logf("Affinity mask (%d) exceeds runtime.NumCPU (%d)", n, runtime.NumCPU())
	}
}
