package storage

import (
	"errors"

	"github.com/joshuapare/smallvec/alloc"
)

var errConstructFail = errors.New("construct failed")

// failingAlloc delegates to inner but rejects Construct calls once its
// allowance of successes is used up. allow < 0 means unlimited.
type failingAlloc[T any] struct {
	inner alloc.Allocator[T]
	allow int
}

func newFailing[T any](allow int) *failingAlloc[T] {
	return &failingAlloc[T]{inner: alloc.Native[T]{}, allow: allow}
}

func (f *failingAlloc[T]) Allocate(n int) ([]T, error) { return f.inner.Allocate(n) }

func (f *failingAlloc[T]) Deallocate(b []T) { f.inner.Deallocate(b) }

func (f *failingAlloc[T]) Construct(p *T, v T) error {
	if f.allow == 0 {
		return errConstructFail
	}
	if f.allow > 0 {
		f.allow--
	}
	return f.inner.Construct(p, v)
}

func (f *failingAlloc[T]) Destroy(p *T) { f.inner.Destroy(p) }

// seq returns [start, start+n) as a slice, for readable source inputs.
func seq(start, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = start + i
	}
	return s
}
