// This file declares Sequence and its construction, assignment, growth
// and access operations. Positional insert/erase live in insert.go.
package seq

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/rawseq/arena"
)

// Sequence is a contiguous growable container of T.
//
// It owns exactly one arena block and tracks how many leading slots
// hold live, constructed elements: slots [0, Len) are live, slots
// [Len, Cap) are raw and never read. Every failable mutating operation
// either completes fully or leaves the container in its pre-call
// observable state; the build-aside-then-swap pattern on each growth
// path is what makes that hold (see doc.go).
//
// A Sequence is single-threaded: one goroutine may mutate an instance
// at a time, and concurrent read-only access is safe only while no
// mutation is in flight.
//
// Use New or NewSized; the zero value works but must not be copied once
// populated (it owns its arena uniquely).
type Sequence[T any] struct {
	data *arena.Arena[T] // owned raw storage
	size int             // live element count, 0 ≤ size ≤ data.Cap()
	life Lifecycle[T]
}

// New creates an empty Sequence with capacity 0.
// Non-failing. Complexity: O(1).
func New[T any](opts ...Option[T]) *Sequence[T] {
	s := &Sequence[T]{data: &arena.Arena[T]{}}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewSized creates a Sequence of n default-constructed elements with
// capacity n. If any construction fails, every element constructed by
// this call is destroyed and the storage released before the error is
// returned — all-or-nothing. Complexity: O(n).
func NewSized[T any](n int, opts ...Option[T]) (*Sequence[T], error) {
	s := New[T](opts...)
	store, err := arena.New[T](n)
	if err != nil {
		return nil, opErrorf("NewSized", err)
	}
	slots := store.Slots(0, n)
	for i := range slots {
		v, err := s.construct()
		if err != nil {
			s.destroyRange(slots[:i])
			store.Release()

			return nil, opErrorf(fmt.Sprintf("NewSized: element %d", i), err)
		}
		slots[i] = v
	}
	s.data = store
	s.size = n

	return s, nil
}

// Clone returns a deep, independent copy of s with capacity equal to
// s.Len(). Elements are copy-constructed in order; on any failure the
// constructed prefix is destroyed and the storage released before the
// error is returned. Complexity: O(n) copies.
func (s *Sequence[T]) Clone() (*Sequence[T], error) {
	return s.cloneFrom(s, "Clone")
}

// cloneFrom builds a fresh Sequence holding copies of src's elements,
// made and owned under s's lifecycle hooks, with the usual rollback on
// a failed copy. Clone passes itself; CopyFrom passes rhs, so both
// assignment paths copy with the destination's hooks.
func (s *Sequence[T]) cloneFrom(src *Sequence[T], op string) (*Sequence[T], error) {
	store, err := arena.New[T](src.size)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	dst := store.Slots(0, src.size)
	for i := range dst {
		v, err := s.copyOf(*src.store().At(i))
		if err != nil {
			s.destroyRange(dst[:i])
			store.Release()

			return nil, opErrorf(fmt.Sprintf("%s: element %d", op, i), err)
		}
		dst[i] = v
	}

	return &Sequence[T]{data: store, size: src.size, life: s.life}, nil
}

// Grab move-constructs: it returns a new Sequence that has taken s's
// storage and elements, leaving s empty, valid and reusable.
// Non-failing. Complexity: O(1).
func (s *Sequence[T]) Grab() *Sequence[T] {
	out := &Sequence[T]{data: &arena.Arena[T]{}, life: s.life}
	out.Swap(s)

	return out
}

// Swap exchanges the full state (storage, live count, lifecycle) of s
// and other in O(1). Non-failing.
func (s *Sequence[T]) Swap(other *Sequence[T]) {
	s.store().Swap(other.store())
	s.size, other.size = other.size, s.size
	s.life, other.life = other.life, s.life
}

// MoveFrom move-assigns: s and rhs exchange state, so s takes rhs's
// elements and rhs ends up with s's previous ones.
// Non-failing. Complexity: O(1).
func (s *Sequence[T]) MoveFrom(rhs *Sequence[T]) {
	if s == rhs {
		return
	}
	s.Swap(rhs)
}

// CopyFrom copy-assigns rhs's elements into s.
//
// When rhs needs more room than s's capacity, a full independent copy
// of rhs is built aside and swapped in, so the assignment is
// all-or-nothing even if an element copy fails (the always-copy rule on
// this path is deliberate: a failed copy must leave the original
// observable). Within capacity, the overlapping prefix is copy-assigned
// elementwise, the tail is destroyed or copy-constructed as needed, and
// the live count updates only after every step succeeded; a failure
// while extending destroys the partial tail, restoring the pre-call
// contents, while a failure mid-prefix leaves a valid container whose
// already-assigned prefix keeps the new values.
//
// Both paths duplicate rhs's elements with s's own lifecycle hooks, and
// s's lifecycle is never changed by assignment — only the elements are.
// Complexity: O(max(Len, rhs.Len)) copies.
func (s *Sequence[T]) CopyFrom(rhs *Sequence[T]) error {
	if s == rhs {
		return nil
	}
	if rhs.size > s.Cap() {
		tmp, err := s.cloneFrom(rhs, "CopyFrom")
		if err != nil {
			return err
		}
		s.Swap(tmp)
		tmp.Release() // retire s's previous elements and storage

		return nil
	}

	overlap := min(rhs.size, s.size)
	for i := 0; i < overlap; i++ {
		if err := s.copyAssignSlot(s.store().At(i), *rhs.store().At(i)); err != nil {
			return opErrorf(fmt.Sprintf("CopyFrom: element %d", i), err)
		}
	}
	if rhs.size < s.size {
		s.destroyRange(s.store().Slots(rhs.size, s.size))
	} else if rhs.size > s.size {
		tail := s.store().Slots(s.size, rhs.size)
		for i := range tail {
			v, err := s.copyOf(*rhs.store().At(s.size + i))
			if err != nil {
				s.destroyRange(tail[:i])

				return opErrorf(fmt.Sprintf("CopyFrom: element %d", s.size+i), err)
			}
			tail[i] = v
		}
	}
	s.size = rhs.size

	return nil
}

// Release destroys all live elements and releases the owned storage,
// returning s to the empty, capacity-0 state. Idempotent, non-failing.
func (s *Sequence[T]) Release() {
	s.destroyRange(s.store().Slots(0, s.size))
	s.size = 0
	s.store().Release()
}

// Len returns the live element count. Complexity: O(1).
func (s *Sequence[T]) Len() int {
	return s.size
}

// Cap returns the slot capacity of the owned storage. Complexity: O(1).
func (s *Sequence[T]) Cap() int {
	return s.store().Cap()
}

// At returns the address of live element i, valid for 0 ≤ i < Len().
// Out-of-range access is a precondition violation and panics. The
// pointer stays valid until the next mutating operation.
func (s *Sequence[T]) At(i int) *T {
	if i < 0 || i >= s.size {
		panic(fmt.Sprintf("seq: index %d out of range [0,%d)", i, s.size))
	}

	return s.data.At(i)
}

// Get returns live element i by value. Bounds-asserted like At.
func (s *Sequence[T]) Get(i int) T {
	return *s.At(i)
}

// All returns a finite, restartable iterator over exactly the live
// elements in index order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, *s.data.At(i)) {
				return
			}
		}
	}
}

// Values returns a finite, restartable iterator over the live element
// values in index order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(*s.data.At(i)) {
				return
			}
		}
	}
}

// Reserve guarantees capacity for at least n elements. A no-op when
// n ≤ Cap(); otherwise new storage of capacity n is allocated aside,
// the live elements are relocated into it (moved only when moving
// provably cannot fail, copied otherwise), the old elements are
// destroyed and the new storage swapped in. A failed copy-relocation
// releases the side storage and leaves s untouched.
// Complexity: O(Len) relocations on growth.
func (s *Sequence[T]) Reserve(n int) error {
	if n <= s.Cap() {
		return nil
	}
	side, err := arena.New[T](n)
	if err != nil {
		return opErrorf("Reserve", err)
	}
	if err := s.relocateSlots(side.Slots(0, s.size), s.store().Slots(0, s.size)); err != nil {
		side.Release()

		return opErrorf("Reserve", err)
	}
	s.destroyRange(s.data.Slots(0, s.size))
	s.data.Swap(side)
	side.Release()

	return nil
}

// Resize sets the live element count to n. Growth reserves storage and
// default-constructs the new tail [Len, n); if a construction fails the
// partial tail is destroyed and the error returned with the container
// unchanged. Shrinking destroys [n, Len). The live count updates last.
// A negative n is a precondition violation and panics.
func (s *Sequence[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("seq: Resize(%d): negative size", n))
	}
	if n > s.size {
		if err := s.Reserve(n); err != nil {
			return opErrorf("Resize", err)
		}
		tail := s.data.Slots(s.size, n)
		for i := range tail {
			v, err := s.construct()
			if err != nil {
				s.destroyRange(tail[:i])

				return opErrorf(fmt.Sprintf("Resize: element %d", s.size+i), err)
			}
			tail[i] = v
		}
	} else {
		s.destroyRange(s.store().Slots(n, s.size))
	}
	s.size = n

	return nil
}

// Append push_backs a copy of v. Amortized O(1); strong guarantee.
func (s *Sequence[T]) Append(v T) error {
	_, err := s.EmplaceBack(func() (T, error) { return s.copyOf(v) })

	return err
}

// AppendMove push_backs by transferring *v, leaving it empty but valid.
// Amortized O(1); if growth allocation fails, *v is not consumed.
func (s *Sequence[T]) AppendMove(v *T) error {
	_, err := s.EmplaceBack(func() (T, error) { return s.moveFromSlot(v) })

	return err
}

// EmplaceBack constructs a new last element via ctor and returns its
// address (valid until the next mutating operation).
//
// At capacity, storage doubles (minimum 1): the new element is
// constructed before any existing element is touched, so a ctor failure
// leaves the container unchanged; only then are the old elements
// relocated, destroyed, and the new storage swapped in. A failed
// copy-relocation destroys the new element, releases the side storage
// and leaves the old state intact. Below capacity the element is
// constructed directly at slot Len. The live count increments only
// after the new element exists.
func (s *Sequence[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if ctor == nil {
		return nil, opErrorf("EmplaceBack", ErrNilConstructor)
	}
	if s.size == s.Cap() {
		return s.growingEmplace(s.size, ctor, "EmplaceBack")
	}
	v, err := ctor()
	if err != nil {
		return nil, opErrorf("EmplaceBack", err)
	}
	slot := s.data.At(s.size)
	*slot = v
	s.size++

	return slot, nil
}

// PopBack destroys the last live element, if any, and decrements the
// live count. Non-failing; no-op on empty. Complexity: O(1).
func (s *Sequence[T]) PopBack() {
	if s.size == 0 {
		return
	}
	s.size--
	s.destroy(s.data.At(s.size))
}

// grownCapacity is the amortized-doubling growth policy: max(1, 2×Cap).
func (s *Sequence[T]) grownCapacity() int {
	if c := s.Cap(); c > 0 {
		return 2 * c
	}

	return 1
}

// store returns the owned arena, materializing an empty one for a
// zero-value Sequence.
func (s *Sequence[T]) store() *arena.Arena[T] {
	if s.data == nil {
		s.data = &arena.Arena[T]{}
	}

	return s.data
}
