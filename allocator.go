package memkit

import "unsafe"

// maxAlign is the alignment guaranteed for every allocation this package
// hands out — the widest scalar alignment Go itself gives any value
// (word/pointer size on the target platform).
const maxAlign = unsafe.Sizeof(uintptr(0))

// alignUp rounds off up to the next multiple of align, which must be a
// power of two.
func alignUp(off uintptr, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}

// Allocator is the contract every backend in this package implements. An
// allocation is represented as a []byte: its length is the usable size
// memkit guarantees for it, so Free and Size never need a side table to
// recover an allocation's size — the slice header already carries it.
//
// Individual allocators are not required to be internally synchronized;
// callers sharing one across goroutines serialize their own access.
type Allocator interface {
	// Allocate returns a region of usable size >= n, aligned to maxAlign,
	// or nil if the request cannot be satisfied. n <= 0 always returns nil.
	Allocate(n int) []byte

	// Free releases a region previously returned by Allocate on this same
	// allocator. Freeing nil is a no-op; freeing anything else — a region
	// from a different allocator, one already freed, or a sub-slice not at
	// an allocation boundary — is undefined behavior this package does not
	// detect.
	Free(b []byte)

	// Size reports the usable size of b. Passing nil returns the total
	// capacity of the allocator's region for Scratch/Stack allocators;
	// for block allocators (Standard, Bounded) it returns 0.
	Size(b []byte) int
}

// StandardAllocator delegates directly to the Go heap via make. It carries
// no state, so its zero value is ready to use.
type StandardAllocator struct{}

// Allocate returns a freshly made []byte of exactly n bytes. n <= 0
// returns nil.
func (StandardAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	// The heap packs small odd-sized byte slices at byte offsets; rounding
	// the request up to a multiple of maxAlign keeps the address aligned.
	return make([]byte, alignUp(uintptr(n), maxAlign))[:n:n]
}

// Free is a no-op: the Go runtime reclaims the backing array once nothing
// references it. Freeing nil is likewise a no-op.
func (StandardAllocator) Free(b []byte) {}

// Size returns len(b), or 0 for nil.
func (StandardAllocator) Size(b []byte) int {
	if b == nil {
		return 0
	}
	return len(b)
}
