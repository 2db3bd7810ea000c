package storage

import "github.com/joshuapare/smallvec/alloc"

// DestroyRange destroys every live element in slots, in ascending order.
// It never fails. Destroyed slots read back as zero values, which surfaces
// use-after-destroy bugs and drops any references the elements held.
func DestroyRange[T any](a alloc.Allocator[T], slots []T) {
	for i := range slots {
		a.Destroy(&slots[i])
	}
}

// ConstructRange constructs one element per slot, pulling values from src in
// order. Strong guarantee: if constructing slot i fails, slots [0,i) are
// destroyed before the error is returned and slots [i,len) are never touched,
// so the whole range is dead again when ConstructRange fails.
func ConstructRange[T any](a alloc.Allocator[T], slots []T, src Source[T]) error {
	for i := range slots {
		if err := src.ConstructNext(a, &slots[i]); err != nil {
			DestroyRange(a, slots[:i])
			return err
		}
	}
	return nil
}

// AssignRange assigns one value per slot over already-live elements, pulling
// from src in order. No rollback: on failure, slots before the failing index
// keep their new values and the rest keep their old ones.
func AssignRange[T any](slots []T, src Source[T]) error {
	for i := range slots {
		if err := src.AssignNext(&slots[i]); err != nil {
			return err
		}
	}
	return nil
}
