package memkit

// Buffer is an owning byte region whose storage comes from the allocator
// active at construction. Go has no copy/move constructors or
// destructors, so Buffer's value semantics are expressed as explicit
// methods instead: Clone/CloneFrom stand in for copy, Take/MoveFrom for
// move, and Release for the destructor.
//
// size == 0 iff data == nil, always.
type Buffer struct {
	data      []byte
	allocator Allocator
}

// NewBuffer returns an empty Buffer if n <= 0, or a Buffer owning n bytes
// obtained from Get() — the allocator on top of the calling goroutine's
// stack. If that allocation fails, the returned Buffer is left empty
// (size 0, data nil); callers check via GetSize()/GetData().
func NewBuffer(n int) *Buffer {
	buf := &Buffer{}
	if n <= 0 {
		return buf
	}
	a := Get()
	d := a.Allocate(n)
	if d == nil {
		return buf
	}
	buf.data = d
	buf.allocator = a
	return buf
}

// GetSize returns the number of bytes b owns.
func (b *Buffer) GetSize() int { return len(b.data) }

// GetData returns the backing byte slice. It is nil iff GetSize() == 0.
func (b *Buffer) GetData() []byte { return b.data }

// At returns a mutable pointer to the byte at index i. Out-of-range i
// panics via ordinary slice indexing rather than the silent undefined
// behavior the core allocator contract allows elsewhere — Buffer is not a
// bounds-checked container by design, but Go offers no cheaper way to
// skip the check than the runtime already does for slice indexing.
func (b *Buffer) At(i int) *byte { return &b.data[i] }

// Clone returns a new Buffer holding a copy of b's bytes, allocated
// through Get() at the time Clone is called — the copy belongs to the
// caller's current scope, not to b's captured allocator.
func (b *Buffer) Clone() *Buffer {
	out := NewBuffer(len(b.data))
	if out.data != nil {
		copy(out.data, b.data)
	}
	return out
}

// CloneFrom deep-copies src into b, first releasing whatever storage b
// currently owns. The new storage comes from Get() at the time CloneFrom
// is called, mirroring C++ copy-assignment.
func (b *Buffer) CloneFrom(src *Buffer) {
	if b == src {
		return
	}
	b.Release()
	if len(src.data) == 0 {
		return
	}
	a := Get()
	d := a.Allocate(len(src.data))
	if d == nil {
		return
	}
	copy(d, src.data)
	b.data = d
	b.allocator = a
}

// Take transfers ownership of src's storage into a new Buffer and empties
// src (size 0, data nil), mirroring C++ move-construction.
func Take(src *Buffer) *Buffer {
	out := &Buffer{data: src.data, allocator: src.allocator}
	src.data = nil
	src.allocator = nil
	return out
}

// MoveFrom releases whatever b currently owns, then transfers src's
// storage into b and empties src (size 0, data nil), mirroring C++
// move-assignment.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src {
		return
	}
	b.Release()
	b.data = src.data
	b.allocator = src.allocator
	src.data = nil
	src.allocator = nil
}

// Release frees b's storage through the allocator captured at
// construction, standing in for the destructor Go doesn't have. It is
// safe to call more than once and safe to call on an already-empty
// Buffer.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	b.allocator.Free(b.data)
	b.data = nil
	b.allocator = nil
}
