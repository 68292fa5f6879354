package seq_test

import (
	"testing"

	"github.com/katalvlaran/rawseq/seq"
)

// benchmarkAppend is a helper that appends n elements per iteration,
// exercising the full doubling-growth path from empty.
func benchmarkAppend(b *testing.B, n int) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		s := seq.New[int]()
		for v := 0; v < n; v++ {
			if err := s.Append(v); err != nil {
				b.Fatalf("Append failed: %v", err)
			}
		}
	}
}

// BenchmarkAppend_Small appends 64 elements from empty.
func BenchmarkAppend_Small(b *testing.B) {
	benchmarkAppend(b, 64)
}

// BenchmarkAppend_Large appends 64Ki elements from empty.
func BenchmarkAppend_Large(b *testing.B) {
	benchmarkAppend(b, 1<<16)
}

// BenchmarkAppend_Reserved appends into pre-reserved storage, isolating
// per-element cost from growth cost.
func BenchmarkAppend_Reserved(b *testing.B) {
	const n = 1 << 16
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := seq.New[int]()
		if err := s.Reserve(n); err != nil {
			b.Fatalf("Reserve failed: %v", err)
		}
		for v := 0; v < n; v++ {
			if err := s.Append(v); err != nil {
				b.Fatalf("Append failed: %v", err)
			}
		}
	}
}

// BenchmarkInsert_Front measures the worst positional case: every
// insert shifts the whole container.
func BenchmarkInsert_Front(b *testing.B) {
	const n = 1 << 10
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := seq.New[int]()
		for v := 0; v < n; v++ {
			if _, err := s.Insert(0, v); err != nil {
				b.Fatalf("Insert failed: %v", err)
			}
		}
	}
}

// BenchmarkErase_Front measures the matching worst erase case.
func BenchmarkErase_Front(b *testing.B) {
	const n = 1 << 10
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := seq.New[int]()
		for v := 0; v < n; v++ {
			if err := s.Append(v); err != nil {
				b.Fatalf("Append failed: %v", err)
			}
		}
		b.StartTimer()
		for s.Len() > 0 {
			if _, err := s.Erase(0); err != nil {
				b.Fatalf("Erase failed: %v", err)
			}
		}
	}
}
