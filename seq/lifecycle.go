// Package seq implements Sequence, a contiguous growable container that
// layers full object-lifecycle management over the raw storage of the
// arena package.
//
// This file declares the element Lifecycle contract, Sequence options,
// sentinel errors, and the lifecycle dispatch used by every container
// operation.
//
// Errors:
//
//	ErrNilConstructor - Emplace/EmplaceBack received a nil constructor.
package seq

import (
	"errors"
	"fmt"
)

// ErrNilConstructor indicates Emplace or EmplaceBack was given a nil
// element constructor.
var ErrNilConstructor = errors.New("seq: nil element constructor")

// opErrorf wraps an element-reported failure with operation context.
func opErrorf(op string, err error) error {
	return fmt.Errorf("seq: %s: %w", op, err)
}

// Lifecycle declares how elements of type T are constructed, duplicated,
// relocated and destroyed, and - crucially - whether relocating by move
// can fail. Every hook is optional; a nil hook falls back to plain value
// semantics (zero value for New, struct copy for Copy, copy-then-zero
// for Move, zeroing the slot for Destroy), all of which cannot fail.
//
// Capability declaration (move-vs-copy relocation):
//
//   - MoveSafe asserts Move and MoveAssign never return an error. The
//     container then relocates elements into new storage by move.
//   - A Lifecycle declaring Move but no Copy describes a move-only type:
//     it is relocated by move even without MoveSafe, because copying is
//     not available at all.
//   - Otherwise relocation copies, so a mid-relocation failure leaves
//     the original elements intact and the operation can roll back.
//
// A zero-value Lifecycle is therefore a fully trivial, non-failing
// element contract, and is what Sequence uses unless WithLifecycle says
// otherwise.
type Lifecycle[T any] struct {
	// New default-constructs an element (used by NewSized and Resize).
	New func() (T, error)

	// Copy duplicates src into a fresh element.
	Copy func(src T) (T, error)

	// CopyAssign replaces *dst with a duplicate of src. When nil, the
	// container copies via Copy and then retires the old value.
	CopyAssign func(dst *T, src T) error

	// Move transfers src's state into a fresh element, leaving *src
	// empty but valid.
	Move func(src *T) (T, error)

	// MoveAssign transfers *src's state into *dst. When nil, the
	// container moves via Move and then retires the old value.
	MoveAssign func(dst, src *T) error

	// Destroy retires an element. Runs exactly once per constructed
	// element, rollback paths included.
	Destroy func(*T)

	// MoveSafe declares that Move and MoveAssign cannot fail.
	MoveSafe bool
}

// DefaultLifecycle returns the trivial value-semantics contract.
func DefaultLifecycle[T any]() Lifecycle[T] {
	return Lifecycle[T]{}
}

// moveOnly reports whether T can only be relocated by move: a declared
// Move hook with no way to duplicate.
func (lc Lifecycle[T]) moveOnly() bool {
	return lc.Move != nil && lc.Copy == nil
}

// moveCannotFail reports whether moving is provably non-failing: either
// declared MoveSafe, or no custom move hooks exist at all.
func (lc Lifecycle[T]) moveCannotFail() bool {
	return lc.MoveSafe || (lc.Move == nil && lc.MoveAssign == nil)
}

// relocateByMove selects the relocation strategy: move when failure is
// provably impossible or when copying is unavailable, copy otherwise.
// A failed copy leaves old storage intact, so the operation can still
// roll back; a failed move cannot be undone.
func (lc Lifecycle[T]) relocateByMove() bool {
	return lc.moveCannotFail() || lc.moveOnly()
}

// Option configures a Sequence at construction time.
type Option[T any] func(*Sequence[T])

// WithLifecycle installs a custom element lifecycle contract.
func WithLifecycle[T any](lc Lifecycle[T]) Option[T] {
	return func(s *Sequence[T]) { s.life = lc }
}

// construct default-constructs one element via the lifecycle.
func (s *Sequence[T]) construct() (T, error) {
	if s.life.New != nil {
		return s.life.New()
	}
	var zero T

	return zero, nil
}

// copyOf duplicates src via the lifecycle.
func (s *Sequence[T]) copyOf(src T) (T, error) {
	if s.life.Copy != nil {
		return s.life.Copy(src)
	}

	return src, nil
}

// copyAssignSlot replaces *dst with a duplicate of src. The fallback
// duplicates first, so a failing copy leaves *dst untouched.
func (s *Sequence[T]) copyAssignSlot(dst *T, src T) error {
	if s.life.CopyAssign != nil {
		return s.life.CopyAssign(dst, src)
	}
	v, err := s.copyOf(src)
	if err != nil {
		return err
	}
	s.destroy(dst)
	*dst = v

	return nil
}

// moveFromSlot transfers *src into a fresh element, leaving *src empty.
func (s *Sequence[T]) moveFromSlot(src *T) (T, error) {
	if s.life.Move != nil {
		return s.life.Move(src)
	}
	v := *src
	var zero T
	*src = zero

	return v, nil
}

// moveAssignSlot transfers *src into *dst. The fallback moves first, so
// a failing move leaves *dst untouched.
func (s *Sequence[T]) moveAssignSlot(dst, src *T) error {
	if s.life.MoveAssign != nil {
		return s.life.MoveAssign(dst, src)
	}
	v, err := s.moveFromSlot(src)
	if err != nil {
		return err
	}
	s.destroy(dst)
	*dst = v

	return nil
}

// destroy retires one element and leaves its slot dead (zeroed in the
// trivial case, so released references are visible to the GC).
func (s *Sequence[T]) destroy(p *T) {
	if s.life.Destroy != nil {
		s.life.Destroy(p)

		return
	}
	var zero T
	*p = zero
}

// destroyRange retires every element in slots, in index order.
func (s *Sequence[T]) destroyRange(slots []T) {
	for i := range slots {
		s.destroy(&slots[i])
	}
}

// relocateSlots constructs src's elements into dst (same length
// windows), by move or copy per relocateByMove. On a failed copy the
// partially filled dst prefix is destroyed and src stays fully intact,
// so callers can roll back. A failed move (possible only for move-only
// types that did not declare MoveSafe) also destroys the dst prefix,
// but consumed src elements cannot be restored.
func (s *Sequence[T]) relocateSlots(dst, src []T) error {
	if s.life.relocateByMove() {
		for i := range src {
			v, err := s.moveFromSlot(&src[i])
			if err != nil {
				s.destroyRange(dst[:i])

				return err
			}
			dst[i] = v
		}

		return nil
	}
	for i := range src {
		v, err := s.copyOf(src[i])
		if err != nil {
			s.destroyRange(dst[:i])

			return err
		}
		dst[i] = v
	}

	return nil
}
