package memkit

import (
	"testing"
	"unsafe"
)

func TestScratchAllocatorMonotonic(t *testing.T) {
	s := NewScratchAllocator(256)

	b1 := s.Allocate(64)
	if b1 == nil {
		t.Fatal("Allocate(64) = nil, want non-nil")
	}
	b2 := s.Allocate(64)
	if b2 == nil {
		t.Fatal("second Allocate(64) = nil, want non-nil")
	}

	addr1 := uintptr(unsafe.Pointer(&b1[0]))
	addr2 := uintptr(unsafe.Pointer(&b2[0]))
	if addr2 <= addr1 {
		t.Errorf("cursor did not advance: addr1=%#x addr2=%#x", addr1, addr2)
	}
	if addr1%maxAlign != 0 || addr2%maxAlign != 0 {
		t.Errorf("allocations not aligned to %d: %#x %#x", maxAlign, addr1, addr2)
	}
}

func TestScratchAllocatorOverflowLeavesCursor(t *testing.T) {
	s := NewScratchAllocator(64)

	b := s.Allocate(32)
	if b == nil {
		t.Fatal("Allocate(32) = nil, want non-nil")
	}
	cursorBefore := s.cursor

	if got := s.Allocate(1000); got != nil {
		t.Errorf("Allocate(1000) over capacity = %v, want nil", got)
	}
	if s.cursor != cursorBefore {
		t.Errorf("cursor moved on failed allocation: before=%d after=%d", cursorBefore, s.cursor)
	}

	// Cursor is untouched, so a small allocation still succeeds.
	if got := s.Allocate(8); got == nil {
		t.Error("Allocate(8) after failed overflow = nil, want non-nil")
	}
}

func TestScratchAllocatorSizeNilReturnsCapacity(t *testing.T) {
	s := NewScratchAllocator(128)
	if got := s.Size(nil); got != 128 {
		t.Errorf("Size(nil) = %d, want 128", got)
	}
}

func TestScratchAllocatorFreeIsNoOp(t *testing.T) {
	s := NewScratchAllocator(64)
	b := s.Allocate(16)
	s.Free(b)
	// The region is unaffected; a further allocation still advances past
	// what was "freed" since there is no per-object reclaim.
	if got := s.Allocate(16); got == nil {
		t.Error("Allocate(16) after Free = nil, want non-nil")
	}
}

func TestScratchAllocatorZeroAndNegative(t *testing.T) {
	s := NewScratchAllocator(64)
	if got := s.Allocate(0); got != nil {
		t.Errorf("Allocate(0) = %v, want nil", got)
	}
	if got := s.Allocate(-1); got != nil {
		t.Errorf("Allocate(-1) = %v, want nil", got)
	}
}

func TestNewScratchAllocatorNegativeSize(t *testing.T) {
	s := NewScratchAllocator(-10)
	if got := s.Size(nil); got != 0 {
		t.Errorf("Size(nil) = %d, want 0", got)
	}
}
