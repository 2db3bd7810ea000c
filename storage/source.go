package storage

import (
	"iter"

	"github.com/joshuapare/smallvec/alloc"
)

// Source produces one value per call for bulk construction or assignment.
//
// A source is a single-pass cursor: each successful ConstructNext or
// AssignNext consumes exactly one value, in order. Sources hold no
// compensating state; when a call fails, rolling back any earlier slots is
// the caller's responsibility. Reading past the values a source has to give
// is a programming error and panics.
type Source[T any] interface {
	// ConstructNext constructs the source's next value into the dead slot at
	// dst using allocator a. The cursor advances only on success.
	ConstructNext(a alloc.Allocator[T], dst *T) error

	// AssignNext assigns the source's next value over the live element at dst.
	AssignNext(dst *T) error
}

// SliceSource yields the elements of a slice in order.
type SliceSource[T any] struct {
	values []T
	next   int
}

var _ Source[int] = (*SliceSource[int])(nil)

// FromSlice returns a source yielding the elements of values in order. The
// slice is not copied; it must not be mutated while the source is in use.
func FromSlice[T any](values []T) *SliceSource[T] {
	return &SliceSource[T]{values: values}
}

func (s *SliceSource[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	if err := a.Construct(dst, s.values[s.next]); err != nil {
		return err
	}
	s.next++
	return nil
}

func (s *SliceSource[T]) AssignNext(dst *T) error {
	*dst = s.values[s.next]
	s.next++
	return nil
}

// SeqSource yields the values of an iter.Seq in order.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

var _ Source[int] = (*SeqSource[int])(nil)

// FromSeq returns a source backed by a pull cursor over seq. Call Stop when
// done with the source to release the underlying iterator.
//
// Unlike SliceSource, a value pulled for a ConstructNext that then fails is
// consumed; the source is single-pass and is expected to be discarded along
// with the failed operation.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

// Stop releases the underlying iterator. Safe to call more than once.
func (s *SeqSource[T]) Stop() { s.stop() }

func (s *SeqSource[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	v, ok := s.next()
	if !ok {
		panic("storage: value source exhausted")
	}
	return a.Construct(dst, v)
}

func (s *SeqSource[T]) AssignNext(dst *T) error {
	v, ok := s.next()
	if !ok {
		panic("storage: value source exhausted")
	}
	*dst = v
	return nil
}

// RepeatSource yields the same value on every call.
type RepeatSource[T any] struct {
	value T
}

var _ Source[int] = (*RepeatSource[int])(nil)

// Repeat returns a source yielding copies of v indefinitely.
func Repeat[T any](v T) *RepeatSource[T] {
	return &RepeatSource[T]{value: v}
}

func (s *RepeatSource[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	return a.Construct(dst, s.value)
}

func (s *RepeatSource[T]) AssignNext(dst *T) error {
	*dst = s.value
	return nil
}

// ZeroSource yields freshly default-constructed (zero) values.
type ZeroSource[T any] struct{}

var _ Source[int] = ZeroSource[int]{}

// Zeroes returns a source yielding zero values indefinitely.
func Zeroes[T any]() ZeroSource[T] {
	return ZeroSource[T]{}
}

func (ZeroSource[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	var zero T
	return a.Construct(dst, zero)
}

func (ZeroSource[T]) AssignNext(dst *T) error {
	var zero T
	*dst = zero
	return nil
}

// FuncSource yields values from a caller-supplied function, which may fail.
type FuncSource[T any] struct {
	produce func() (T, error)
}

var _ Source[int] = (*FuncSource[int])(nil)

// FromFunc returns a source that calls produce for each value. An error from
// produce propagates as the failure of the slot being filled.
func FromFunc[T any](produce func() (T, error)) *FuncSource[T] {
	return &FuncSource[T]{produce: produce}
}

func (s *FuncSource[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	v, err := s.produce()
	if err != nil {
		return err
	}
	return a.Construct(dst, v)
}

func (s *FuncSource[T]) AssignNext(dst *T) error {
	v, err := s.produce()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// movingSource drains live elements out of a buffer, one per call. Each move
// copies the element's value; the original stays behind in a moved-from,
// not-yet-destroyed state for the caller to destroy afterwards.
type movingSource[T any] struct {
	from []T
	next int
}

func (m *movingSource[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	if err := a.Construct(dst, m.from[m.next]); err != nil {
		return err
	}
	m.next++
	return nil
}

func (m *movingSource[T]) AssignNext(dst *T) error {
	*dst = m.from[m.next]
	m.next++
	return nil
}
