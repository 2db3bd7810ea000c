package alloc

// Allocator supplies element buffers and drives individual element lifetimes.
//
// A slot is either dead (no live element, no teardown obligation) or live
// (made so by Construct, ended by Destroy). Buffers returned by Allocate
// consist entirely of dead slots; callers must Destroy every live element
// before handing a buffer back to Deallocate.
//
// Implementations are not required to be safe for concurrent use.
type Allocator[T any] interface {
	// Allocate returns a buffer of exactly n dead slots. It fails with an
	// out-of-space condition; it never returns a short buffer.
	Allocate(n int) ([]T, error)

	// Deallocate returns a buffer previously obtained from Allocate.
	// It never fails.
	Deallocate(buf []T)

	// Construct makes the dead slot at p live with value v. On failure the
	// slot remains dead.
	Construct(p *T, v T) error

	// Destroy ends the live element at p, leaving the slot dead.
	// It never fails.
	Destroy(p *T)
}

// RawCopier is an optional capability an Allocator may implement to declare
// that element lifetimes carry no bookkeeping or side effects, making a raw
// bitwise copy of live slots between buffers equivalent to constructing them.
type RawCopier interface {
	RawCopySafe() bool
}

// RawCopySafe reports whether a declares raw bitwise copies of its live
// elements safe. Allocators that do not implement RawCopier are conservatively
// treated as unsafe.
func RawCopySafe[T any](a Allocator[T]) bool {
	rc, ok := a.(RawCopier)
	return ok && rc.RawCopySafe()
}
