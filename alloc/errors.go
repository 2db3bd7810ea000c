package alloc

import "errors"

var (
	// ErrNoSpace indicates the allocator cannot satisfy the requested buffer size.
	ErrNoSpace = errors.New("alloc: no space for requested buffer")

	// ErrBadCount indicates a slot count that is negative or too large to represent.
	ErrBadCount = errors.New("alloc: bad slot count")
)
