package storage

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/smallvec/alloc"
	"github.com/joshuapare/smallvec/internal/buf"
)

// Storage is the core of a small-buffer-optimized dynamic array: a tagged
// inline/heap buffer, a packed size+flag metadata word, and an injected
// allocator.
//
// The type parameter A is the inline backing array and must be [N]T for the
// wanted inline capacity N; New panics otherwise. While not heap-allocated,
// the logical capacity is exactly N and elements live in the embedded array;
// once a size exceeds N, elements live in an allocator-provided heap buffer
// whose length is the capacity.
//
// Invariants, after every exported operation:
//
//   - exactly the first Size() slots of the active buffer are live
//   - inline: Size() <= N, capacity == N
//   - allocated: heap buffer non-nil, capacity >= Size()
//   - the inactive representation is meaningless and never read
//
// Storage must not be copied by value (the inline view aliases the embedded
// array) and performs no internal synchronization.
type Storage[T any, A any] struct {
	alloc alloc.Allocator[T]

	// packed is the size+flag word: low bit is the allocated discriminator,
	// remaining bits are the live-element count. Every mutation rewrites the
	// whole word at once so a count is never seen with the wrong flag.
	packed uint64

	// heap is the allocated representation: len(heap) is the capacity.
	// Meaningful only while the allocated bit is set.
	heap []T

	// inline is the embedded backing array; inlineSlots is its []T view,
	// derived once at construction. Only the live prefix is meaningful while
	// the allocated bit is clear.
	inline      A
	inlineSlots []T
}

// New returns an empty, inline Storage using allocator a, or alloc.Native if
// a is nil. New panics if A is not an array of T.
func New[T any, A any](a alloc.Allocator[T]) *Storage[T, A] {
	if a == nil {
		a = alloc.Native[T]{}
	}
	s := &Storage[T, A]{alloc: a}
	s.inlineSlots = inlineView[T](&s.inline)
	return s
}

// inlineView returns arr's slots as []T, sharing the array's memory. The
// reflect round-trip both validates that A is [N]T and produces the slice
// without reinterpreting memory through unsafe pointers.
func inlineView[T any, A any](arr *A) []T {
	v := reflect.ValueOf(arr).Elem()
	if v.Kind() != reflect.Array || v.Type().Elem() != reflect.TypeFor[T]() {
		panic(fmt.Sprintf("storage: backing type %v is not an array of %v",
			v.Type(), reflect.TypeFor[T]()))
	}
	return v.Slice(0, v.Len()).Interface().([]T)
}

// Size returns the count of live elements.
func (s *Storage[T, A]) Size() int { return int(s.packed >> 1) }

// IsAllocated reports whether the heap representation is active.
func (s *Storage[T, A]) IsAllocated() bool { return s.packed&1 != 0 }

// InlineCapacity returns N, the slot count of the embedded array.
func (s *Storage[T, A]) InlineCapacity() int { return len(s.inlineSlots) }

// Capacity returns the logical capacity of the active representation.
func (s *Storage[T, A]) Capacity() int {
	if s.IsAllocated() {
		return len(s.heap)
	}
	return len(s.inlineSlots)
}

// View snapshots the active buffer. The snapshot is invalidated by any
// operation that reallocates or retags the storage.
func (s *Storage[T, A]) View() View[T] {
	if s.IsAllocated() {
		return View[T]{Data: s.heap, Size: s.Size()}
	}
	return View[T]{Data: s.inlineSlots, Size: s.Size()}
}

// Allocator returns the injected allocator.
func (s *Storage[T, A]) Allocator() alloc.Allocator[T] { return s.alloc }

// RawCopySafe reports whether live slots of this storage may be duplicated by
// raw bitwise copy. True exactly when the allocator declares element
// lifetimes trivial.
func (s *Storage[T, A]) RawCopySafe() bool { return alloc.RawCopySafe[T](s.alloc) }

// InlineData returns the inline slot slice. It is always addressable, but its
// contents are meaningful only while the storage is not allocated (or while
// an operation is staging elements into it).
func (s *Storage[T, A]) InlineData() []T { return s.inlineSlots }

// AllocatedData returns the heap slot slice. Panics when the heap
// representation is not active.
func (s *Storage[T, A]) AllocatedData() []T {
	if !s.IsAllocated() {
		panic("storage: AllocatedData on inline storage")
	}
	return s.heap
}

// --- low-level mutators -------------------------------------------------
//
// These primitives exist for the consuming vector type's insert/erase/swap
// logic. They each update a single field and keep the packed word coherent,
// but composing them into valid states is the caller's job.

// SetSize sets the live count, preserving the allocated flag.
func (s *Storage[T, A]) SetSize(n int) {
	checkSize(n)
	s.packed = uint64(n)<<1 | s.packed&1
}

// SetAllocatedSize sets the live count and the allocated flag in one write.
func (s *Storage[T, A]) SetAllocatedSize(n int) {
	checkSize(n)
	s.packed = uint64(n)<<1 | 1
}

// SetInlinedSize sets the live count and clears the allocated flag in one write.
func (s *Storage[T, A]) SetInlinedSize(n int) {
	checkSize(n)
	s.packed = uint64(n) << 1
}

// AddSize increases the live count by delta, preserving the flag.
func (s *Storage[T, A]) AddSize(delta int) {
	checkSize(delta)
	s.packed += uint64(delta) << 1
}

// SubtractSize decreases the live count by delta, preserving the flag.
func (s *Storage[T, A]) SubtractSize(delta int) {
	if delta < 0 || delta > s.Size() {
		panic("storage: size underflow")
	}
	s.packed -= uint64(delta) << 1
}

// SetIsAllocated sets the allocated flag, preserving the count.
func (s *Storage[T, A]) SetIsAllocated() { s.packed |= 1 }

// UnsetIsAllocated clears the allocated flag, preserving the count.
func (s *Storage[T, A]) UnsetIsAllocated() { s.packed &^= 1 }

// SetHeapBuffer installs b as the heap representation's buffer. The allocated
// flag is managed separately.
func (s *Storage[T, A]) SetHeapBuffer(b []T) { s.heap = b }

// DeallocateIfAllocated returns the heap buffer to the allocator when the
// heap representation is active. The flag is left for the caller to retag.
func (s *Storage[T, A]) DeallocateIfAllocated() {
	if s.IsAllocated() {
		s.alloc.Deallocate(s.heap)
		s.heap = nil
	}
}

// AcquireAllocation commits tx's held buffer into the heap representation.
func (s *Storage[T, A]) AcquireAllocation(tx *AllocationTransaction[T]) {
	s.heap = tx.Commit()
}

// SwapPacked exchanges only the packed size+flag words of s and other.
func (s *Storage[T, A]) SwapPacked(other *Storage[T, A]) {
	s.packed, other.packed = other.packed, s.packed
}

// SwapHeapBuffer exchanges only the heap buffers of s and other. Together
// with SwapPacked this gives an O(1) structural swap when both sides are
// heap-allocated.
func (s *Storage[T, A]) SwapHeapBuffer(other *Storage[T, A]) {
	s.heap, other.heap = other.heap, s.heap
}

// RawCopyFrom overwrites s's representation with a bitwise copy of other's:
// packed word, heap descriptor, and inline array contents. Legal only when
// other is heap-allocated or raw copies are safe; copying a live inline
// buffer between objects otherwise duplicates element lifetimes, so this
// panics. Afterwards both objects reference any shared heap buffer; exactly
// one of them must go on to own it.
func (s *Storage[T, A]) RawCopyFrom(other *Storage[T, A]) {
	if !other.IsAllocated() && !other.RawCopySafe() {
		panic("storage: raw copy of a live inline buffer with non-trivial elements")
	}
	s.packed = other.packed
	s.heap = other.heap
	s.inline = other.inline
	// s.inlineSlots still views s's own array, which now holds the copy.
}

// --- lifecycle algorithms -----------------------------------------------

// Initialize populates a freshly constructed storage with n elements from
// src. Calling it on a storage that is non-empty or allocated is a
// programming error and panics.
//
// When n exceeds the inline capacity, the heap buffer is recorded and tagged
// before any element is constructed: if construction then fails, the storage
// is still coherent and DestroyAndDeallocate will free the buffer.
func (s *Storage[T, A]) Initialize(src Source[T], n int) error {
	if s.IsAllocated() || s.Size() != 0 {
		panic("storage: Initialize on a non-empty storage")
	}
	checkSize(n)

	slots := s.inlineSlots
	if n > s.InlineCapacity() {
		b, err := s.alloc.Allocate(n)
		if err != nil {
			return err
		}
		s.SetHeapBuffer(b)
		s.SetIsAllocated()
		slots = b
	}

	if err := ConstructRange(s.alloc, slots[:n], src); err != nil {
		return err
	}

	// The count started at 0 and the flag is already correct for either
	// branch, so adding lands on the exact packed word.
	s.AddSize(n)
	return nil
}

// Assign replaces the logical contents with n elements from src.
//
// When n exceeds the current capacity the replacement is transactional: a new
// buffer of exactly n slots is filled, the old elements destroyed, and only
// then does the storage retag; on failure the old state is untouched. Within
// the current capacity the work happens in place, and a failure partway
// leaves a partially updated prefix behind (the live count is unchanged, so
// the storage itself stays coherent).
//
// src is consumed in one forward pass: assignments, then constructions, then
// destructions.
func (s *Storage[T, A]) Assign(src Source[T], n int) error {
	checkSize(n)
	v := s.View()

	tx := NewTransaction[T](s.alloc)
	defer tx.Release()

	var assignSlots, constructSlots, destroySlots []T
	switch {
	case n > v.Capacity():
		b, err := tx.Allocate(n)
		if err != nil {
			return err
		}
		constructSlots = b
		destroySlots = v.Live()
	case n > v.Size:
		assignSlots = v.Data[:v.Size]
		constructSlots = v.Data[v.Size:n]
	default:
		assignSlots = v.Data[:n]
		destroySlots = v.Data[n:v.Size]
	}

	if err := AssignRange(assignSlots, src); err != nil {
		return err
	}
	if err := ConstructRange(s.alloc, constructSlots, src); err != nil {
		return err
	}
	DestroyRange(s.alloc, destroySlots)

	if tx.DidAllocate() {
		s.DeallocateIfAllocated()
		s.AcquireAllocation(tx)
		s.SetIsAllocated()
	}
	s.SetSize(n)
	return nil
}

// ShrinkToFit moves the live elements into the smallest buffer that holds
// them: the inline buffer when they fit there, otherwise a fresh heap buffer
// of exactly Size() slots. A no-op on inline storages and when size already
// equals capacity. If moving fails, the storage still references the
// original, untouched heap buffer and is logically unchanged.
func (s *Storage[T, A]) ShrinkToFit() error {
	if !s.IsAllocated() {
		return nil
	}
	v := View[T]{Data: s.heap, Size: s.Size()}

	tx := NewTransaction[T](s.alloc)
	defer tx.Release()

	var dst []T
	switch {
	case v.Size <= s.InlineCapacity():
		dst = s.inlineSlots[:v.Size]
	case v.Size < v.Capacity():
		b, err := tx.Allocate(v.Size)
		if err != nil {
			return err
		}
		dst = b
	default:
		// Already tight.
		return nil
	}

	move := &movingSource[T]{from: v.Live()}
	if err := ConstructRange(s.alloc, dst, move); err != nil {
		// The heap representation was never modified: s.heap still points at
		// the intact original buffer, so the failed move left the storage
		// logically unchanged. Staged slots were rolled back by
		// ConstructRange.
		return err
	}

	DestroyRange(s.alloc, v.Live())
	s.alloc.Deallocate(v.Data)

	if tx.DidAllocate() {
		s.AcquireAllocation(tx)
	} else {
		s.heap = nil
		s.UnsetIsAllocated()
	}
	return nil
}

// DestroyAndDeallocate destroys every live element in the active buffer,
// frees the heap buffer if one is held, and resets the storage to empty
// inline. Safe to call unconditionally and repeatedly; after it, the storage
// must be re-populated with Initialize before use.
func (s *Storage[T, A]) DestroyAndDeallocate() {
	DestroyRange(s.alloc, s.View().Live())
	s.DeallocateIfAllocated()
	s.packed = 0
}

func checkSize(n int) {
	if err := buf.CheckSlotCount(n); err != nil {
		panic("storage: " + err.Error())
	}
}
