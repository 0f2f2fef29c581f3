package memkit

import "unsafe"

// AllocatorAware is embedded by types that want to capture the allocator
// active at their construction and route all of their own internal
// allocations through it for the rest of their life, regardless of what
// the stack top later becomes. New[T] captures it automatically when T
// embeds AllocatorAware; types constructed outside New must call Init or
// InitWith themselves as the first step of their own constructor.
type AllocatorAware struct {
	allocator Allocator
}

// Init captures Get() — the allocator currently on top of the calling
// goroutine's stack.
func (b *AllocatorAware) Init() { b.allocator = Get() }

// InitWith captures an explicit allocator instead of consulting the stack.
func (b *AllocatorAware) InitWith(a Allocator) { b.allocator = a }

// GetAllocator returns the allocator captured at construction. Internal
// allocations should always route through this, never through Get()
// again — the stack top may have changed since construction.
func (b *AllocatorAware) GetAllocator() Allocator { return b.allocator }

// setAllocator/getAllocator back the unexported allocatorAware trait so
// New/Delete can detect allocator-aware types without exporting mutation
// of the captured allocator.
func (b *AllocatorAware) setAllocator(a Allocator) { b.allocator = a }
func (b *AllocatorAware) getAllocator() Allocator  { return b.allocator }

// allocatorAware is the compile-time trait New[T]/Delete[T] test T
// against to choose between the plain and allocator-aware construction
// paths.
type allocatorAware interface {
	setAllocator(Allocator)
	getAllocator() Allocator
}

// destroyer is an optional trait: a T that owns allocations beyond its own
// sizeof(T) footprint (a payload it allocated through GetAllocator() in its
// own constructor, say) implements Destroy to release them. Delete[T]
// checks for this the same way it checks for allocatorAware, mirroring the
// C++ "destroy the T in place, then free the storage" two-step with the
// tools Go actually has: an optional interface plus a type assertion.
type destroyer interface {
	Destroy()
}

// New allocates storage for a T, zeroes it, and runs init (if non-nil) to
// finish constructing the value in place. It returns nil without calling
// init if the allocation fails.
//
// The source of that storage depends on whether T embeds AllocatorAware:
// an allocator-aware T is allocated through Get() — the allocator on top
// of the calling goroutine's stack — and has that same allocator captured
// into it for its own future use. A plain T never consults the stack at
// all; it always comes from the fixed process-wide default pool, so a
// TrackAllocator pushed onto the stack never observes plain allocations.
func New[T any](init func(*T)) *T {
	var probe T
	if _, ok := any(&probe).(allocatorAware); ok {
		return NewWith[T](Get(), init)
	}
	return NewWith[T](processDefault, init)
}

// NewWith is New against an explicit allocator instead of the current
// stack top.
func NewWith[T any](a Allocator, init func(*T)) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	b := a.Allocate(size)
	if b == nil {
		return nil
	}
	clear(b)
	p := (*T)(unsafe.Pointer(&b[0]))
	if aware, ok := any(p).(allocatorAware); ok {
		aware.setAllocator(a)
	}
	if init != nil {
		init(p)
	}
	return p
}

// NewSlice allocates storage for n contiguous, zeroed T values from the
// fixed process-wide default pool and returns them as a slice. It returns
// nil if n <= 0 or the allocation fails. Elements are not individually
// allocator-aware — this mirrors the plain/POD path only, matching this
// package's teacher's own AllocSlice, so like New[T]'s plain path it never
// consults the allocator stack.
func NewSlice[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	a := processDefault
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b := a.Allocate(elemSize * n)
	if b == nil {
		return nil
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// Delete destroys t — calling Destroy() first if T implements it, to
// release any allocations t made beyond its own sizeof(T) footprint — then
// frees t's own storage. If t is allocator-aware, that storage is freed
// through the allocator captured at construction (GetAllocator()); a plain
// t is freed through the same fixed process-wide default pool it was
// allocated from in New, never through Get(). Deleting nil is a no-op.
func Delete[T any](t *T) {
	if t == nil {
		return
	}
	if d, ok := any(t).(destroyer); ok {
		d.Destroy()
	}
	a := processDefault
	if aware, ok := any(t).(allocatorAware); ok {
		a = aware.getAllocator()
	}
	size := int(unsafe.Sizeof(*t))
	b := unsafe.Slice((*byte)(unsafe.Pointer(t)), size)
	a.Free(b)
}
