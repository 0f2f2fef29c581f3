package memkit

// BoundedAllocator wraps an inner Allocator (StandardAllocator by
// default) behind a fixed byte budget. Allocate fails once granting the
// request would push live bytes past the capacity; it never fragments —
// the only failure mode is exceeding the capacity itself, never
// sub-capacity fragmentation in the inner allocator.
type BoundedAllocator struct {
	inner    Allocator
	capacity int
	used     int
}

// NewBoundedAllocator returns a BoundedAllocator with the given capacity,
// backed by StandardAllocator.
func NewBoundedAllocator(capacity int) *BoundedAllocator {
	return NewBoundedAllocatorFrom(capacity, StandardAllocator{})
}

// NewBoundedAllocatorFrom returns a BoundedAllocator with the given
// capacity, backed by inner instead of StandardAllocator.
func NewBoundedAllocatorFrom(capacity int, inner Allocator) *BoundedAllocator {
	return &BoundedAllocator{inner: inner, capacity: capacity}
}

// Allocate forwards to the inner allocator only if used+n would not exceed
// the capacity, then credits used by the usable size actually granted.
func (b *BoundedAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	if b.used+n > b.capacity {
		return nil
	}
	granted := b.inner.Allocate(n)
	if granted == nil {
		return nil
	}
	b.used += b.inner.Size(granted)
	return granted
}

// Free debits used by p's usable size and forwards the release to the
// inner allocator. Freeing nil is a no-op.
func (b *BoundedAllocator) Free(p []byte) {
	if p == nil {
		return
	}
	b.used -= b.inner.Size(p)
	b.inner.Free(p)
}

// Size forwards to the inner allocator. Size(nil) returns 0 — this is a
// block allocator, per the contract's unspecified-for-block-allocators
// clause on nil.
func (b *BoundedAllocator) Size(p []byte) int {
	if p == nil {
		return 0
	}
	return b.inner.Size(p)
}

// Used returns the number of bytes currently live against the capacity.
func (b *BoundedAllocator) Used() int { return b.used }

// Capacity returns the byte budget this allocator was constructed with.
func (b *BoundedAllocator) Capacity() int { return b.capacity }
