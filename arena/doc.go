// Package arena provides the raw-storage layer of rawseq: exclusive
// ownership of one contiguous block of element slots, with zero object
// lifecycle.
//
// 🚀 What is an Arena?
//
//	A fixed-capacity block of T slots plus nothing else. The arena can
//	allocate the block, hand out slot addresses, transfer or swap
//	ownership, and release the block — it never constructs, copies,
//	moves or destroys an element. Pairing it with an explicit live-slot
//	count is the owning container's job (see the seq package).
//
// ✨ Key properties:
//   - block non-nil iff capacity > 0 — an empty arena owns nothing
//   - unique ownership: copying an Arena is disallowed (vet-checked);
//     ownership moves only via Grab (move) and Swap
//   - At(i) addresses any slot i < Cap(); Slots(i, j) permits the
//     one-past-end bound j == Cap() for building shift/relocate logic
//   - Release frees the block without touching slot contents — the
//     owner must destroy live elements first
//   - allocation failure (negative or unrepresentable capacity) is a
//     recoverable error leaving no partial state; bad slot indices are
//     precondition violations and panic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rawseq/arena"
//
//	a, err := arena.New[string](8) // 8 raw slots
//	if err != nil { ... }
//	*a.At(0) = "first"             // caller tracks liveness itself
//	b := a.Grab()                  // b owns the block, a is empty
//	b.Release()
//
// Performance: every operation is O(1) except New, which pays for the
// zeroed block allocation.
package arena
