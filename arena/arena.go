// Package arena owns raw, contiguous element storage for a fixed number
// of slots. It allocates, addresses and transfers storage — and nothing
// else: no slot in an Arena is ever assumed to hold a valid element, and
// the arena never constructs or destroys one. Object lifetime is entirely
// the owning container's responsibility.
//
// This file declares Arena, sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrNegativeCapacity - requested slot count is negative.
//	ErrArenaTooLarge    - capacity * element size overflows the address space.
package arena

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// Sentinel errors for arena allocation.
var (
	// ErrNegativeCapacity indicates a negative slot count was requested.
	ErrNegativeCapacity = errors.New("arena: capacity must be non-negative")

	// ErrArenaTooLarge indicates the requested block size cannot be
	// represented, so the allocator cannot satisfy the request.
	ErrArenaTooLarge = errors.New("arena: capacity exceeds addressable size")
)

// noCopy makes `go vet -copylocks` flag accidental value copies of Arena.
// An Arena's block is uniquely owned; duplicating the struct would alias it.
type noCopy struct{}

// Lock is a no-op used by vet's copylocks checker.
func (*noCopy) Lock() {}

// Unlock is a no-op used by vet's copylocks checker.
func (*noCopy) Unlock() {}

// Arena is the exclusive owner of one contiguous block of element slots.
// The zero value is a valid empty arena (capacity 0, no block).
//
// Ownership moves via Grab and Swap only — never by struct assignment;
// keep arenas behind pointers, as New does.
// The block's slots carry no liveness information: they start zeroed, but
// the arena makes no promise about their contents after use, and reading
// a slot the owner has not constructed is a contract violation at the
// container layer.
type Arena[T any] struct {
	noCopy noCopy

	// block backs exactly Cap() slots; nil iff capacity is 0.
	block []T
}

// New allocates raw storage for capacity slots.
// A capacity of 0 yields an empty arena with no block.
// Fails with ErrNegativeCapacity or ErrArenaTooLarge, leaving no partial
// state — on error the returned Arena is empty and valid.
// Complexity: O(capacity) for the zeroed allocation.
func New[T any](capacity int) (*Arena[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("arena: New(%d): %w", capacity, ErrNegativeCapacity)
	}
	if capacity == 0 {
		return &Arena[T]{}, nil
	}
	// Reject requests whose byte size cannot be represented before make
	// gets a chance to abort the process.
	var probe T
	if size := unsafe.Sizeof(probe); size > 0 && uintptr(capacity) > math.MaxInt/size {
		return nil, fmt.Errorf("arena: New(%d): %w", capacity, ErrArenaTooLarge)
	}

	return &Arena[T]{block: make([]T, capacity)}, nil
}

// Cap returns the slot count of the owned block.
// Complexity: O(1).
func (a *Arena[T]) Cap() int {
	return len(a.block)
}

// At returns the address of slot i, valid for 0 ≤ i < Cap().
// Out-of-range access is a precondition violation and panics.
// The arena says nothing about whether the slot holds a live element.
// Complexity: O(1).
func (a *Arena[T]) At(i int) *T {
	if i < 0 || i >= len(a.block) {
		panic(fmt.Sprintf("arena: slot index %d out of range [0,%d)", i, len(a.block)))
	}

	return &a.block[i]
}

// Slots returns the raw window [i, j) of the block, valid for
// 0 ≤ i ≤ j ≤ Cap(). One-past-end is permitted so owners can build
// shifting and relocation logic against the window boundaries.
// Out-of-range bounds are a precondition violation and panic.
// Complexity: O(1).
func (a *Arena[T]) Slots(i, j int) []T {
	if i < 0 || j < i || j > len(a.block) {
		panic(fmt.Sprintf("arena: slot window [%d,%d) out of range [0,%d]", i, j, len(a.block)))
	}

	return a.block[i:j:j]
}

// Swap exchanges the owned blocks of a and other in O(1). Non-failing.
func (a *Arena[T]) Swap(other *Arena[T]) {
	a.block, other.block = other.block, a.block
}

// Grab transfers ownership of the block out of a, returning a new Arena
// that owns it. After Grab, a is empty (capacity 0, no block) and remains
// valid for reuse. This is the move-construct of the storage layer.
// Non-failing. Complexity: O(1).
func (a *Arena[T]) Grab() *Arena[T] {
	moved := &Arena[T]{block: a.block}
	a.block = nil

	return moved
}

// Release drops the owned block, returning the arena to its empty state.
// It destroys no elements — the owner must have already destroyed any
// live ones. Safe to call repeatedly. Complexity: O(1).
func (a *Arena[T]) Release() {
	a.block = nil
}
