package alloc

// Stats is a snapshot of the lifecycle events observed by a Counting allocator.
type Stats struct {
	Allocates   int // Allocate calls that succeeded
	Deallocates int // Deallocate calls
	Constructs  int // Construct calls that succeeded
	Destroys    int // Destroy calls
	SlotsOut    int // slots currently allocated and not yet returned
}

// Balanced reports whether every construction has been matched by a
// destruction and every buffer has been returned.
func (s Stats) Balanced() bool {
	return s.Constructs == s.Destroys && s.SlotsOut == 0
}

// Counting wraps another Allocator and counts every lifecycle event passing
// through it. It is the package's instrumentation hook: after tearing down a
// structure built on a Counting allocator, Stats().Balanced() must hold or
// the structure leaked or double-destroyed an element.
//
// A Counting allocator deliberately does not implement RawCopier: elements
// whose lifetimes are being counted must not be duplicated by bitwise copy.
//
// Counting is not safe for concurrent use.
type Counting[T any] struct {
	inner Allocator[T]
	stats Stats
}

var _ Allocator[int] = (*Counting[int])(nil)

// NewCounting wraps inner, or Native if inner is nil.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Native[T]{}
	}
	return &Counting[T]{inner: inner}
}

// Stats returns a snapshot of the counters.
func (c *Counting[T]) Stats() Stats { return c.stats }

// Live returns the number of currently live elements.
func (c *Counting[T]) Live() int { return c.stats.Constructs - c.stats.Destroys }

func (c *Counting[T]) Allocate(n int) ([]T, error) {
	b, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.stats.Allocates++
	c.stats.SlotsOut += len(b)
	return b, nil
}

func (c *Counting[T]) Deallocate(b []T) {
	c.stats.Deallocates++
	c.stats.SlotsOut -= len(b)
	c.inner.Deallocate(b)
}

func (c *Counting[T]) Construct(p *T, v T) error {
	if err := c.inner.Construct(p, v); err != nil {
		return err
	}
	c.stats.Constructs++
	return nil
}

func (c *Counting[T]) Destroy(p *T) {
	c.stats.Destroys++
	c.inner.Destroy(p)
}
