// File: threadgroup/move_test.go
// Author: jfcameron
// License: MIT

package threadgroup

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func sameIDs(a, b []WorkerID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTransferFrom(t *testing.T) {
	src := New(4)
	originalIDs := src.ThreadIDs()

	dst := New(0)
	dst.TransferFrom(src)

	if src.ThreadCount() != 0 {
		t.Errorf("Expected source ThreadCount 0 after transfer, got %d", src.ThreadCount())
	}
	if len(src.ThreadIDs()) != 0 {
		t.Errorf("Expected source thread ID list empty after transfer, got %d", len(src.ThreadIDs()))
	}
	if dst.ThreadCount() != 4 {
		t.Errorf("Expected destination ThreadCount 4, got %d", dst.ThreadCount())
	}
	if !sameIDs(dst.ThreadIDs(), originalIDs) {
		t.Errorf("Expected destination to carry the original thread IDs")
	}

	// transferred workers still consume tasks
	var counter atomic.Int64
	const n = 200
	for i := 0; i < n; i++ {
		if err := dst.AddTask(func() { counter.Add(1) }); err != nil {
			t.Fatalf("AddTask on destination failed: %v", err)
		}
	}
	waitFor(t, 5*time.Second, func() bool { return counter.Load() == n })

	// closing the drained source is a no-op
	if err := src.Close(); err != nil {
		t.Errorf("Source Close failed: %v", err)
	}
	if err := dst.Close(); err != nil {
		t.Errorf("Destination Close failed: %v", err)
	}
}

func TestNewFrom(t *testing.T) {
	src := New(3)
	originalIDs := src.ThreadIDs()

	dst := NewFrom(src)
	defer dst.Close()

	if src.ThreadCount() != 0 {
		t.Errorf("Expected source ThreadCount 0 after move-construction, got %d", src.ThreadCount())
	}
	if dst.ThreadCount() != 3 {
		t.Errorf("Expected destination ThreadCount 3, got %d", dst.ThreadCount())
	}
	if !sameIDs(dst.ThreadIDs(), originalIDs) {
		t.Errorf("Expected destination to carry the original thread IDs")
	}
}

// TestTransferFrom_OverNonEmpty verifies destroy-then-transfer: assigning
// over a group that owns workers first joins those workers, then adopts the
// source's.
func TestTransferFrom_OverNonEmpty(t *testing.T) {
	dst := New(2)
	oldIDs := dst.ThreadIDs()

	src := New(3)
	srcIDs := src.ThreadIDs()

	dst.TransferFrom(src)

	if dst.ThreadCount() != 3 {
		t.Errorf("Expected destination ThreadCount 3 after transfer, got %d", dst.ThreadCount())
	}
	if !sameIDs(dst.ThreadIDs(), srcIDs) {
		t.Errorf("Expected destination IDs to match the source's")
	}
	if sameIDs(dst.ThreadIDs(), oldIDs) {
		t.Errorf("Expected previous worker IDs to be gone after transfer")
	}
	dst.Close()
}

func TestTransferFrom_Self(t *testing.T) {
	g := New(2)
	defer g.Close()

	ids := g.ThreadIDs()
	g.TransferFrom(g)

	if g.ThreadCount() != 2 {
		t.Errorf("Expected self-transfer to leave ThreadCount 2, got %d", g.ThreadCount())
	}
	if !sameIDs(g.ThreadIDs(), ids) {
		t.Errorf("Expected self-transfer to leave thread IDs unchanged")
	}
}

func TestMovedFromGroup_Operations(t *testing.T) {
	src := New(2)
	dst := NewFrom(src)
	defer dst.Close()

	if err := src.AddTask(func() {}); !errors.Is(err, ErrGroupClosed) {
		t.Errorf("Expected ErrGroupClosed from moved-from AddTask, got %v", err)
	}
	if _, ok := src.TryGetTask(); ok {
		t.Errorf("Expected moved-from TryGetTask to return false")
	}
	if err := src.Close(); err != nil {
		t.Errorf("Expected moved-from Close to be a no-op, got %v", err)
	}
}
