package storage

// View is an ephemeral snapshot of a storage's active buffer: the full slot
// slice (len == capacity) and the count of live elements at its front. A View
// owns nothing and is valid only for the duration of the operation that
// captured it.
type View[T any] struct {
	Data []T
	Size int
}

// Capacity returns the total slot count of the viewed buffer.
func (v View[T]) Capacity() int { return len(v.Data) }

// Live returns the prefix of Data holding live elements.
func (v View[T]) Live() []T { return v.Data[:v.Size] }
