// Package seq provides Sequence, a contiguous growable container with
// amortized O(1) append, positional insert/erase, and strong failure
// guarantees, built on the raw storage of the arena package.
//
// 🚀 What is a Sequence?
//
//	A dynamic array that manages object lifetime itself. The arena
//	below it owns nothing but slots; the Sequence tracks exactly which
//	leading slots hold live elements and performs every construct /
//	copy / move / destroy step explicitly, so it can promise precise
//	rollback when an element operation reports failure.
//
// ✨ Key features:
//   - amortized doubling growth: capacity 1, 2, 4, 8, … as appends
//     cross each threshold
//   - build-aside-then-swap on every growth path: replacement storage
//     is completed off to the side and committed by one non-failing
//     swap — the backbone of the strong guarantee
//   - a declared element Lifecycle: relocation moves only when the
//     type says moving cannot fail (MoveSafe) or cannot be copied at
//     all; otherwise it copies, keeping the original intact for
//     rollback
//   - positional Emplace/Insert/Erase with explicit mid-shift cleanup
//   - range-over-func iteration (All, Values) over exactly the live
//     elements in index order
//
// 💪 Failure model:
//
//	Element hooks (New, Copy, CopyAssign, Move, MoveAssign) may return
//	errors; every failable container operation then either completes
//	fully or restores its pre-call observable state (documented
//	per-method deviations aside). Grab, Swap, MoveFrom, PopBack,
//	Release never fail. Out-of-range indices and positions are
//	contract violations: they panic, they are not recoverable errors.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rawseq/seq"
//
//	s := seq.New[int]()
//	_ = s.Append(1)            // capacity 1
//	_ = s.Append(2)            // capacity 2
//	_ = s.Append(3)            // capacity 4
//	_, _ = s.Insert(1, 9)      // [1 9 2 3]
//	_, _ = s.Erase(2)          // [1 9 3]
//	for i, v := range s.All() { fmt.Println(i, v) }
//
// Element types with failable or move-only semantics declare them via
// Lifecycle and seq.WithLifecycle; see lifecycle.go.
//
// Performance: Append amortized O(1); Insert/Erase O(n - pos);
// Reserve/Resize O(n) relocations; Len/Cap/At O(1).
package seq
