package memkit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsProcessDefaultWhenEmpty(t *testing.T) {
	assert.Equal(t, processDefault, Get())
}

func TestPushGetPopBalance(t *testing.T) {
	a := NewBoundedAllocator(1000)

	Push(a)
	assert.Same(t, Allocator(a), Get())

	popped := Pop()
	assert.Same(t, Allocator(a), popped)
	assert.NotSame(t, Allocator(a), Get())
	assert.Equal(t, processDefault, Get())
}

func TestPushIsLIFO(t *testing.T) {
	outer := NewBoundedAllocator(10)
	inner := NewBoundedAllocator(20)

	Push(outer)
	defer Pop()
	Push(inner)

	require.Same(t, Allocator(inner), Get())
	popped := Pop()
	require.Same(t, Allocator(inner), popped)
	require.Same(t, Allocator(outer), Get())
}

func TestPopOnEmptyStackPanics(t *testing.T) {
	assert.Panics(t, func() {
		Pop()
	})
}

func TestScopedAllocatorPushPop(t *testing.T) {
	a := NewBoundedAllocator(1000)

	scope := PushScope(a)
	require.Same(t, Allocator(a), Get())

	popped := scope.Pop()
	require.Same(t, Allocator(a), popped)
	require.NotSame(t, Allocator(a), Get())

	// A second Pop/Close is a harmless no-op, not a double-pop.
	assert.NotPanics(t, func() { scope.Close() })
}

func TestScopedAllocatorNesting(t *testing.T) {
	outer := PushScope(NewBoundedAllocator(1))
	defer outer.Pop()

	inner := PushScope(NewBoundedAllocator(2))
	got := Get()
	inner.Pop()

	require.NotEqual(t, got, Get())
}

// TestThreadIsolation is scenario S2: a push on one goroutine must never
// be visible to Get() on another, and the effect must hold during the
// concurrent window, not just before/after.
func TestThreadIsolation(t *testing.T) {
	a := NewBoundedAllocator(1000)

	var wg sync.WaitGroup
	pushed := make(chan struct{})
	checked := make(chan Allocator, 1)
	release := make(chan struct{})
	seenAfterPush := make(chan Allocator, 1)
	seenAfterPop := make(chan Allocator, 1)

	// Assertions run only on this goroutine, the one testing.T was handed;
	// the worker goroutines just report what they observed over channels.
	wg.Add(2)
	go func() {
		defer wg.Done()
		Push(a)
		seenAfterPush <- Get()
		close(pushed)
		<-release
		seenAfterPop <- Pop()
	}()

	go func() {
		defer wg.Done()
		<-pushed
		checked <- Get()
	}()

	require.Same(t, Allocator(a), <-seenAfterPush)

	select {
	case seenByB := <-checked:
		assert.NotSame(t, Allocator(a), seenByB, "goroutine B observed goroutine A's pushed allocator")
		assert.Equal(t, processDefault, seenByB)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for goroutine B to check Get()")
	}

	close(release)
	require.Same(t, Allocator(a), <-seenAfterPop)
	wg.Wait()

	assert.NotSame(t, Allocator(a), Get())
}
