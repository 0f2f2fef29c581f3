package memkit

// ScratchAllocator is a monotonic bump allocator over a single region
// obtained from an underlying source (the Go heap, by default) at
// construction and released only when the ScratchAllocator itself is
// dropped. There is no per-object Free — freed bytes are never reclaimed
// until the whole region goes away.
type ScratchAllocator struct {
	region []byte
	cursor uintptr
}

// NewScratchAllocator allocates a region of size bytes from the Go heap
// and returns a ScratchAllocator bump-allocating over it. size < 0 is
// treated as 0.
func NewScratchAllocator(size int) *ScratchAllocator {
	if size < 0 {
		size = 0
	}
	// Round the backing array up to maxAlign so the region's base, and with
	// it every aligned cursor offset, is itself maxAlign-aligned.
	return &ScratchAllocator{region: make([]byte, alignUp(uintptr(size), maxAlign))[:size:size]}
}

// Allocate rounds the cursor up to maxAlign, checks the request fits in
// what remains of the region, and advances the cursor. It returns nil
// without moving the cursor if the request would overflow the region.
func (s *ScratchAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	start := alignUp(s.cursor, maxAlign)
	end := start + uintptr(n)
	if end > uintptr(len(s.region)) {
		return nil
	}
	s.cursor = end
	return s.region[start:end:end]
}

// Free is a no-op; ScratchAllocator has no per-object deallocation.
func (s *ScratchAllocator) Free(p []byte) {}

// Size returns len(p) for a live allocation, or the region's total
// capacity when p is nil.
func (s *ScratchAllocator) Size(p []byte) int {
	if p == nil {
		return len(s.region)
	}
	return len(p)
}
