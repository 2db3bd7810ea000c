package alloc

import (
	"fmt"

	"github.com/joshuapare/smallvec/internal/buf"
)

// Native is the default allocator, backed by the Go runtime heap.
//
// Allocate is a bounds-checked make. Deallocate only scrubs the buffer and
// leaves reclamation to the garbage collector. Construct and Destroy are plain
// assignment and zeroing, so element lifetimes carry no bookkeeping and Native
// reports RawCopySafe.
//
// Native is stateless; the zero value is ready to use.
type Native[T any] struct{}

var _ Allocator[int] = Native[int]{}
var _ RawCopier = Native[int]{}

// Allocate returns a zeroed buffer of exactly n slots.
func (Native[T]) Allocate(n int) ([]T, error) {
	if err := buf.CheckSlotCount(n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCount, err)
	}
	return make([]T, n), nil
}

// Deallocate scrubs the buffer so stale views stop pinning element contents,
// then leaves the memory to the garbage collector.
func (Native[T]) Deallocate(b []T) {
	clear(b)
}

// Construct makes the slot at p live with value v. It never fails.
func (Native[T]) Construct(p *T, v T) error {
	*p = v
	return nil
}

// Destroy zeroes the slot at p. Dead slots therefore read back as zero values,
// which surfaces use-after-destroy bugs and releases anything the element
// referenced.
func (Native[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// RawCopySafe reports true: native element lifetimes are trivial, so bitwise
// copies of live slots are equivalent to constructing them.
func (Native[T]) RawCopySafe() bool { return true }
