// Package arena_test verifies allocation, addressing and ownership
// transfer of the raw storage layer.
package arena_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rawseq/arena"
)

// TestNew_Empty verifies that a zero-capacity arena owns no block
// and is still fully usable for Swap/Grab/Release.
func TestNew_Empty(t *testing.T) {
	a, err := arena.New[int](0)
	require.NoError(t, err, "capacity 0 must not fail")
	assert.Equal(t, 0, a.Cap(), "empty arena has no slots")

	// Ownership operations on an empty arena are valid no-ops.
	b := a.Grab()
	assert.Equal(t, 0, b.Cap())
	a.Release()
}

// TestNew_Sized verifies slot count and slot addressability.
func TestNew_Sized(t *testing.T) {
	a, err := arena.New[string](5)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Cap(), "arena must expose requested capacity")

	// Every slot in [0, Cap) is addressable and writable.
	for i := 0; i < a.Cap(); i++ {
		*a.At(i) = "x"
	}
	assert.Equal(t, "x", *a.At(4))
}

// TestNew_NegativeCapacity ensures a negative request is a recoverable
// allocation error, not a panic.
func TestNew_NegativeCapacity(t *testing.T) {
	_, err := arena.New[int](-1)
	assert.ErrorIs(t, err, arena.ErrNegativeCapacity, "negative capacity must error")
}

// TestNew_TooLarge ensures an unrepresentable block size is rejected
// before the runtime allocator sees it.
func TestNew_TooLarge(t *testing.T) {
	type page = [1 << 20]byte
	_, err := arena.New[page](math.MaxInt)
	assert.ErrorIs(t, err, arena.ErrArenaTooLarge, "overflowing byte size must error")
}

// TestAt_OutOfRange verifies that bad slot indices are precondition
// violations (panics), for both negative and past-capacity indices.
func TestAt_OutOfRange(t *testing.T) {
	a, err := arena.New[int](3)
	require.NoError(t, err)

	assert.Panics(t, func() { a.At(-1) }, "negative index must panic")
	assert.Panics(t, func() { a.At(3) }, "index == capacity must panic")
}

// TestSlots_Windows verifies window addressing, including the permitted
// one-past-end bound, and panics on invalid bounds.
func TestSlots_Windows(t *testing.T) {
	a, err := arena.New[int](4)
	require.NoError(t, err)

	assert.Len(t, a.Slots(0, 4), 4, "full window covers every slot")
	assert.Len(t, a.Slots(4, 4), 0, "one-past-end window is empty but valid")
	assert.Len(t, a.Slots(1, 3), 2)

	assert.Panics(t, func() { a.Slots(-1, 2) }, "negative low bound must panic")
	assert.Panics(t, func() { a.Slots(2, 1) }, "inverted window must panic")
	assert.Panics(t, func() { a.Slots(0, 5) }, "past-capacity high bound must panic")
}

// TestSlots_WindowAliasesBlock verifies the window addresses the owned
// block itself, not a copy.
func TestSlots_WindowAliasesBlock(t *testing.T) {
	a, err := arena.New[int](4)
	require.NoError(t, err)

	w := a.Slots(1, 3)
	w[0] = 42
	assert.Equal(t, 42, *a.At(1), "window writes must land in the block")
}

// TestSwap exchanges blocks and capacities in both directions.
func TestSwap(t *testing.T) {
	a, err := arena.New[int](2)
	require.NoError(t, err)
	b, err := arena.New[int](7)
	require.NoError(t, err)
	*a.At(0) = 1
	*b.At(0) = 9

	a.Swap(b)

	assert.Equal(t, 7, a.Cap(), "a must own b's block after swap")
	assert.Equal(t, 2, b.Cap(), "b must own a's block after swap")
	assert.Equal(t, 9, *a.At(0))
	assert.Equal(t, 1, *b.At(0))
}

// TestGrab verifies move semantics: the destination owns the block,
// the source is left empty and reusable.
func TestGrab(t *testing.T) {
	a, err := arena.New[int](3)
	require.NoError(t, err)
	*a.At(2) = 5

	moved := a.Grab()

	assert.Equal(t, 3, moved.Cap(), "moved-to arena owns the block")
	assert.Equal(t, 5, *moved.At(2), "slot contents travel with the block")
	assert.Equal(t, 0, a.Cap(), "moved-from arena is empty")

	// The moved-from arena accepts new ownership again.
	moved.Swap(a)
	assert.Equal(t, 3, a.Cap())
}

// TestRelease verifies the block is dropped and that Release is
// idempotent.
func TestRelease(t *testing.T) {
	a, err := arena.New[int](3)
	require.NoError(t, err)

	a.Release()
	assert.Equal(t, 0, a.Cap(), "released arena owns nothing")
	a.Release() // second release is a no-op
	assert.Equal(t, 0, a.Cap())
}
