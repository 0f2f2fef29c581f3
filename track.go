package memkit

// TrackAllocator decorates an inner allocator with live and peak byte
// counters. It forwards every operation to Inner and is otherwise
// transparent. The counters are plain ints, not atomics — this package's
// allocators are not required to be internally thread-safe, and a
// TrackAllocator shared across goroutines is the caller's serialization
// problem, same as any other allocator here.
type TrackAllocator[Inner Allocator] struct {
	inner Inner
	used  int
	peak  int
}

// NewTrackAllocator wraps inner with live/peak byte tracking.
func NewTrackAllocator[Inner Allocator](inner Inner) *TrackAllocator[Inner] {
	return &TrackAllocator[Inner]{inner: inner}
}

// Allocate forwards to Inner and, on success, credits the used and peak
// counters by the usable size granted.
func (t *TrackAllocator[Inner]) Allocate(n int) []byte {
	b := t.inner.Allocate(n)
	if b == nil {
		return nil
	}
	t.used += t.inner.Size(b)
	if t.used > t.peak {
		t.peak = t.used
	}
	return b
}

// Free debits the used counter by b's usable size and forwards the
// release to Inner. Freeing nil is a no-op.
func (t *TrackAllocator[Inner]) Free(b []byte) {
	if b == nil {
		return
	}
	t.used -= t.inner.Size(b)
	t.inner.Free(b)
}

// Size forwards to Inner.
func (t *TrackAllocator[Inner]) Size(b []byte) int {
	return t.inner.Size(b)
}

// GetUsedMemory returns the bytes currently live through this tracker.
func (t *TrackAllocator[Inner]) GetUsedMemory() int { return t.used }

// PeakMemory returns the highest value GetUsedMemory has ever reported.
func (t *TrackAllocator[Inner]) PeakMemory() int { return t.peak }

// Metrics returns a snapshot of this tracker's counters.
func (t *TrackAllocator[Inner]) Metrics() TrackMetrics {
	return TrackMetrics{UsedMemory: t.used, PeakMemory: t.peak}
}

// TrackMetrics is a point-in-time snapshot of a TrackAllocator's counters.
type TrackMetrics struct {
	UsedMemory int
	PeakMemory int
}
