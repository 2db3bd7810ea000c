package alloc

import "fmt"

// Limited wraps another Allocator and enforces a budget of outstanding slots.
// Once an Allocate call would push the outstanding total past the budget it
// fails with ErrNoSpace, which makes out-of-space paths reproducible without
// actually exhausting memory. Deallocate returns slots to the budget.
//
// Limited is not safe for concurrent use.
type Limited[T any] struct {
	inner  Allocator[T]
	budget int
	used   int
}

var _ Allocator[int] = (*Limited[int])(nil)

// NewLimited wraps inner (or Native if nil) with a budget of maxSlots
// outstanding slots.
func NewLimited[T any](inner Allocator[T], maxSlots int) *Limited[T] {
	if inner == nil {
		inner = Native[T]{}
	}
	return &Limited[T]{inner: inner, budget: maxSlots}
}

// Remaining returns the number of slots still available under the budget.
func (l *Limited[T]) Remaining() int { return l.budget - l.used }

func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n > l.budget-l.used {
		return nil, fmt.Errorf("%w: need %d slots, %d remaining", ErrNoSpace, n, l.budget-l.used)
	}
	b, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.used += len(b)
	return b, nil
}

func (l *Limited[T]) Deallocate(b []T) {
	l.used -= len(b)
	l.inner.Deallocate(b)
}

func (l *Limited[T]) Construct(p *T, v T) error { return l.inner.Construct(p, v) }

func (l *Limited[T]) Destroy(p *T) { l.inner.Destroy(p) }
