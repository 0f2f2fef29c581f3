// Package memkit implements a pluggable memory-management core: a family
// of allocators behind one contract, a per-goroutine allocator stack that
// lets any scope redirect allocation without touching call sites, and two
// value types (Outcome and Buffer) built on top of that contract.
//
// # Overview
//
// Every allocator in memkit implements the same three-operation contract:
//
//	type Allocator interface {
//	    Allocate(n int) []byte
//	    Free(b []byte)
//	    Size(b []byte) int
//	}
//
// StandardAllocator delegates to the Go heap. BoundedAllocator wraps
// another allocator behind a fixed byte budget. ScratchAllocator and
// StackAllocator are monotonic bump allocators — the former over a
// heap-obtained region, the latter over an inline region embedded in the
// allocator value itself, with no heap indirection at all. TrackAllocator
// decorates any of the above with live/peak byte counters.
//
// # Allocator Stack
//
// Rather than threading an Allocator through every call site, code reads
// the allocator active on the calling goroutine:
//
//	memkit.Push(tracker)
//	defer memkit.Pop()
//
//	w := memkit.New[Widget](nil)
//
// New[T] only consults this stack for types that embed AllocatorAware. A
// plain T (an int, a struct with no AllocatorAware field) is allocated
// from a fixed, process-wide default pool instead, regardless of what is
// pushed — so a TrackAllocator on the stack never sees plain allocations.
//
// ScopedAllocator wraps the push/pop pair so cleanup happens on every
// exit path:
//
//	scope := memkit.PushScope(tracker)
//	defer scope.Pop()
//
// # Allocator-Aware Types
//
// A type that embeds AllocatorAware captures the allocator active at its
// construction and routes its own allocations through it for the rest of
// its life, even if the stack changes underneath it later:
//
//	type Widget struct {
//	    memkit.AllocatorAware
//	    payload []byte
//	}
//
//	w := memkit.New[Widget](func(w *Widget) {
//	    w.payload = w.GetAllocator().Allocate(100)
//	})
//
// If Widget owns allocations beyond its own footprint, as above, it should
// implement Destroy() so Delete releases them before freeing Widget itself:
//
//	func (w *Widget) Destroy() { w.GetAllocator().Free(w.payload) }
//
// # Thread Safety
//
// The allocator stack is strictly per-goroutine: a push on one goroutine
// is never visible to Get() on another. Individual allocator instances are
// not internally synchronized — callers sharing one across goroutines are
// responsible for serializing access to it, the same way SafeArena would
// wrap an Arena in this package's teacher.
//
// # Important Notes
//
//   - There is no garbage collection of allocator-obtained memory beyond
//     what the Go runtime already does for the underlying []byte; lifetimes
//     are explicit — call Free/Delete/Release yourself.
//   - ScratchAllocator and StackAllocator are not resettable in this
//     revision; treat that as a future extension, not a bug.
package memkit
