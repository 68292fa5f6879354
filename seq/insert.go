// This file implements positional emplace/insert/erase — the densest
// failure-sensitive logic in the container. Two regimes:
//
//   - at capacity: build new storage aside, construct the new element at
//     its final offset, relocate prefix and suffix around it, and commit
//     with a single non-failing swap;
//   - below capacity: duplicate the last element into the one-past-end
//     slot, shift [pos, Len-1) rightward by move-assignment, and
//     construct the new element at pos.
//
// Rollback rules for each regime are spelled out on the methods.
package seq

import (
	"fmt"

	"github.com/katalvlaran/rawseq/arena"
)

// Emplace constructs a new element via ctor at position pos, shifting
// [pos, Len) one slot rightward, and returns the new element's address
// (valid until the next mutating operation). Requires 0 ≤ pos ≤ Len();
// violating that is a precondition violation and panics.
//
// The new element always exists before the live count grows. When ctor
// fails, nothing has been touched. When storage must grow, a failed
// copy-relocation destroys the already-constructed new element and
// releases the side storage, leaving the old state intact. When
// shifting in place fails mid-way, the duplicated tail slot is
// destroyed before the error propagates, so no logical element is ever
// live twice; the container stays valid at its previous length.
// Complexity: O(Len - pos) shifts, O(Len) relocations on growth.
func (s *Sequence[T]) Emplace(pos int, ctor func() (T, error)) (*T, error) {
	if pos < 0 || pos > s.size {
		panic(fmt.Sprintf("seq: Emplace position %d out of range [0,%d]", pos, s.size))
	}
	if ctor == nil {
		return nil, opErrorf("Emplace", ErrNilConstructor)
	}
	if s.size == s.Cap() {
		return s.growingEmplace(pos, ctor, "Emplace")
	}

	return s.shiftingEmplace(pos, ctor)
}

// Insert emplaces a copy of v at pos. See Emplace for the guarantees.
func (s *Sequence[T]) Insert(pos int, v T) (*T, error) {
	return s.Emplace(pos, func() (T, error) { return s.copyOf(v) })
}

// InsertMove emplaces at pos by transferring *v, which is left empty
// but valid. If growth allocation fails, *v is not consumed.
// See Emplace for the guarantees.
func (s *Sequence[T]) InsertMove(pos int, v *T) (*T, error) {
	return s.Emplace(pos, func() (T, error) { return s.moveFromSlot(v) })
}

// Erase removes the element at pos by move-assigning (pos, Len) one
// slot leftward and popping the last element. Requires 0 ≤ pos < Len();
// violating that is a precondition violation and panics.
//
// Returns the index now denoting the element that followed the erased
// one (pos itself). Never fails for lifecycles whose move-assignment
// cannot fail; otherwise a mid-shift failure returns the error with
// every slot still live and the length unchanged.
// Complexity: O(Len - pos).
func (s *Sequence[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= s.size {
		panic(fmt.Sprintf("seq: Erase position %d out of range [0,%d)", pos, s.size))
	}
	for i := pos; i < s.size-1; i++ {
		if err := s.moveAssignSlot(s.data.At(i), s.data.At(i+1)); err != nil {
			return pos, opErrorf(fmt.Sprintf("Erase at %d", pos), err)
		}
	}
	s.PopBack()

	return pos, nil
}

// growingEmplace is the at-capacity regime shared by Emplace and
// EmplaceBack: side storage of max(1, 2×Cap), new element constructed
// at its final offset pos, prefix [0,pos) and suffix [pos,Len) relocated
// around it, old elements destroyed, storage swapped, count bumped.
func (s *Sequence[T]) growingEmplace(pos int, ctor func() (T, error), op string) (*T, error) {
	side, err := arena.New[T](s.grownCapacity())
	if err != nil {
		return nil, opErrorf(op, err)
	}
	v, err := ctor()
	if err != nil {
		side.Release()

		return nil, opErrorf(op, err)
	}
	slot := side.At(pos)
	*slot = v

	// Prefix, then suffix; each relocation cleans its own partial
	// output on failure, so rollback only has to retire the new
	// element and whatever completed before the failing batch.
	if err := s.relocateSlots(side.Slots(0, pos), s.data.Slots(0, pos)); err != nil {
		s.destroy(slot)
		side.Release()

		return nil, opErrorf(op, err)
	}
	if err := s.relocateSlots(side.Slots(pos+1, s.size+1), s.data.Slots(pos, s.size)); err != nil {
		s.destroyRange(side.Slots(0, pos))
		s.destroy(slot)
		side.Release()

		return nil, opErrorf(op, err)
	}

	s.destroyRange(s.data.Slots(0, s.size))
	s.data.Swap(side)
	side.Release()
	s.size++

	return s.data.At(pos), nil
}

// shiftingEmplace is the below-capacity regime: the element value is
// produced first (so a ctor failure touches nothing, and an inserted
// value read from this very sequence is captured before any shifting),
// then the tail shifts right and the value lands at pos.
func (s *Sequence[T]) shiftingEmplace(pos int, ctor func() (T, error)) (*T, error) {
	v, err := ctor()
	if err != nil {
		return nil, opErrorf("Emplace", err)
	}
	if pos == s.size {
		slot := s.data.At(s.size)
		*slot = v
		s.size++

		return slot, nil
	}

	// Duplicate the current last element into the one-past-end slot.
	endSlot := s.data.At(s.size)
	last, err := s.moveFromSlot(s.data.At(s.size - 1))
	if err != nil {
		s.destroy(&v)

		return nil, opErrorf("Emplace", err)
	}
	*endSlot = last

	// Shift [pos, size-1) one slot rightward, back to front.
	for i := s.size - 1; i > pos; i-- {
		if err := s.moveAssignSlot(s.data.At(i), s.data.At(i-1)); err != nil {
			// Never leave two live copies of one logical element.
			s.destroy(endSlot)
			s.destroy(&v)

			return nil, opErrorf("Emplace", err)
		}
	}

	// The slot at pos now duplicates its right neighbor; retire it and
	// land the new element.
	target := s.data.At(pos)
	s.destroy(target)
	*target = v
	s.size++

	return target, nil
}
