// Package seq_test shared helpers: an instrumented int Lifecycle with
// per-hook counters and injectable k-th-operation failures, used to
// observe relocation policy and to exercise every rollback path.
package seq_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rawseq/seq"
)

// errInjected is the failure reported by instrumented hooks.
var errInjected = errors.New("injected element failure")

// tracker counts lifecycle hook invocations and can make the k-th call
// of a hook fail (1-based; 0 disables). Counters are compared after a
// reset() taken once the fixture container is built, so setup noise
// never leaks into assertions.
type tracker struct {
	news, copies, moves, moveAssigns, destroys int

	failNewAt        int
	failCopyAt       int
	failMoveAssignAt int
}

// reset zeroes the counters (failure thresholds are kept).
func (tr *tracker) reset() {
	tr.news, tr.copies, tr.moves, tr.moveAssigns, tr.destroys = 0, 0, 0, 0, 0
}

// lifecycle builds an instrumented Lifecycle[int]. With moveSafe the
// container is told moves cannot fail and will relocate by move;
// without it, the declared Copy hook forces relocation by copy.
func (tr *tracker) lifecycle(moveSafe bool) seq.Lifecycle[int] {
	return seq.Lifecycle[int]{
		New: func() (int, error) {
			tr.news++
			if tr.failNewAt > 0 && tr.news == tr.failNewAt {
				return 0, errInjected
			}

			return 0, nil
		},
		Copy: func(src int) (int, error) {
			tr.copies++
			if tr.failCopyAt > 0 && tr.copies == tr.failCopyAt {
				return 0, errInjected
			}

			return src, nil
		},
		Move: func(src *int) (int, error) {
			tr.moves++
			v := *src
			*src = 0

			return v, nil
		},
		MoveAssign: func(dst, src *int) error {
			tr.moveAssigns++
			if tr.failMoveAssignAt > 0 && tr.moveAssigns == tr.failMoveAssignAt {
				return errInjected
			}
			*dst = *src
			*src = 0

			return nil
		},
		Destroy: func(p *int) {
			tr.destroys++
			*p = 0
		},
		MoveSafe: moveSafe,
	}
}

// buildInts returns a Sequence holding vs in order, failing the test on
// any append error.
func buildInts(t testing.TB, vs ...int) *seq.Sequence[int] {
	s := seq.New[int]()
	for _, v := range vs {
		if err := s.Append(v); err != nil {
			t.Fatalf("setup append %d: %v", v, err)
		}
	}

	return s
}

// contents snapshots the live elements of s in index order.
func contents(s *seq.Sequence[int]) []int {
	out := make([]int, 0, s.Len())
	for v := range s.Values() {
		out = append(out, v)
	}

	return out
}
