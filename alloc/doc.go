// Package alloc provides the allocator contract for the smallvec storage engine.
//
// # Overview
//
// The storage engine never talks to the Go runtime directly. Every buffer it
// uses and every element lifetime it manages flows through an Allocator, so
// allocation policy, instrumentation, and fault injection can all be swapped
// in from outside.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface, which supports:
//
//   - Allocate(n): Obtain a buffer of exactly n element slots
//   - Deallocate(buf): Return a buffer; never fails
//   - Construct(p, v): Make a dead slot live with value v
//   - Destroy(p): End the live element at p; never fails
//
// # Implementations
//
// Native: Default allocator backed by the Go runtime heap
//
//   - Allocate is a checked make; Deallocate defers to the garbage collector
//   - Construct and Destroy are plain assignment and zeroing
//   - Reports RawCopySafe, enabling bitwise bulk-copy fast paths
//
// Counting: Instrumentation wrapper around any Allocator
//
//   - Counts allocations, deallocations, constructions, destructions
//   - Used to verify lifetime accounting (constructs == destroys at teardown)
//
// Limited: Budget-enforcing wrapper around any Allocator
//
//   - Fails with ErrNoSpace once a slot budget is exhausted
//   - Used to exercise out-of-memory paths deterministically
package alloc
