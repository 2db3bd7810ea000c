package storage

import "github.com/joshuapare/smallvec/alloc"

// AllocationTransaction holds at most one tentative buffer allocation.
//
// Protocol: make the transaction, defer Release, Allocate, do the fallible
// work, then Commit on the success path. Commit transfers the buffer out and
// disarms the deferred Release; any early return leaves the transaction armed
// and Release returns the buffer to the allocator, so no failure path can
// leak an allocation.
type AllocationTransaction[T any] struct {
	alloc alloc.Allocator[T]
	data  []T
	held  bool
}

// NewTransaction returns a transaction bound to a.
func NewTransaction[T any](a alloc.Allocator[T]) *AllocationTransaction[T] {
	return &AllocationTransaction[T]{alloc: a}
}

// Allocate obtains a buffer of exactly n slots and records it. On failure
// nothing is recorded. Allocating while an allocation is already held is a
// misuse panic; release or commit the first one before asking for another.
func (tx *AllocationTransaction[T]) Allocate(n int) ([]T, error) {
	if tx.held {
		panic("storage: allocation transaction already holds a buffer")
	}
	b, err := tx.alloc.Allocate(n)
	if err != nil {
		return nil, err
	}
	tx.data = b
	tx.held = true
	return b, nil
}

// DidAllocate reports whether the transaction currently holds an allocation.
func (tx *AllocationTransaction[T]) DidAllocate() bool { return tx.held }

// Commit transfers the held buffer to the caller and clears the record, so a
// later Release is a no-op. Committing an empty transaction is a misuse panic.
func (tx *AllocationTransaction[T]) Commit() []T {
	if !tx.held {
		panic("storage: commit of an empty allocation transaction")
	}
	b := tx.data
	tx.data = nil
	tx.held = false
	return b
}

// Release returns the held buffer to the allocator, if any. Safe to call
// unconditionally; intended for defer.
func (tx *AllocationTransaction[T]) Release() {
	if !tx.held {
		return
	}
	tx.alloc.Deallocate(tx.data)
	tx.data = nil
	tx.held = false
}
