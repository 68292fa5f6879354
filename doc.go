// Package rawseq is a contiguous, growable sequence container built
// directly on raw storage — for when you need full control over
// allocation timing, element lifetime and failure rollback instead of
// a pre-built dynamic array.
//
// 🚀 What is rawseq?
//
//	A two-layer, pure-Go container library that separates:
//		• Raw storage ownership — arena.Arena[T]: one contiguous block
//		  sized for a fixed slot count, no element lifecycle, unique
//		  ownership transferred by move/swap only
//		• Object lifecycle — seq.Sequence[T]: tracks exactly which
//		  leading slots hold live elements, and implements every
//		  construct/copy/move/destroy step on top of the arena
//
// ✨ Why choose rawseq?
//
//   - Strong guarantees — every failable mutation either completes or
//     leaves the container in precisely its pre-call state
//   - Amortized O(1) append with doubling growth (1, 2, 4, 8, …)
//   - Positional insert/erase with explicit rollback on mid-shift failure
//   - A declared element Lifecycle: the container relocates by move only
//     when the type says moving cannot fail, by copy otherwise
//   - Pure Go — no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	arena/ — raw storage owner: allocation, addressing, ownership transfer
//	seq/   — the Sequence container and the element Lifecycle contract
//
// Quick sketch:
//
//	capacity = 6, size = 4
//	┌───┬───┬───┬───┬ ─ ┬ ─ ┐
//	│ a │ b │ c │ d │ ..│ ..│   [0,size) live, [size,cap) raw
//	└───┴───┴───┴───┴ ─ ┴ ─ ┘
//
// Dive into seq/doc.go for the failure-safety rules and arena/doc.go for
// the ownership model.
//
//	go get github.com/katalvlaran/rawseq/seq
package rawseq
