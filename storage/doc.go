// Package storage implements the storage engine of a small-buffer-optimized
// dynamic array.
//
// # Overview
//
// A Storage embeds up to N element slots directly inside the object (the
// inline buffer) and spills to an allocator-provided heap buffer only when a
// size exceeds N. One packed metadata word carries both the live-element count
// and the inline/heap discriminator, and a single invariant governs the whole
// engine: exactly the first Size() slots of the active buffer are live, every
// other reachable slot is dead.
//
// # Lifecycle operations
//
// A Storage starts empty and inline. It is populated exactly once with
// Initialize, mutated with Assign and ShrinkToFit, and torn down with
// DestroyAndDeallocate:
//
//   - Initialize(src, n): First population; picks inline or heap by n vs N
//   - Assign(src, n): Replace contents; reallocates only when n exceeds capacity
//   - ShrinkToFit(): Move elements into the smallest buffer that holds them
//   - DestroyAndDeallocate(): Destroy all live elements, free the heap buffer
//
// # Failure guarantees
//
// Failures only ever originate from the allocator or a value source; the
// engine adds none of its own. ConstructRange gives the strong guarantee (a
// failed range is fully rolled back to dead slots), reallocating Assign and
// ShrinkToFit leave the old state untouched on failure, and the two in-place
// Assign paths deliberately stop where they failed, leaving a partially
// updated prefix. AllocationTransaction backs every reallocating path so no
// failure can leak a buffer.
//
// # Low-level surface
//
// The consuming vector type implements insert, erase, and swap on top of the
// exported field-level mutators (SetSize, SetHeapBuffer, swap primitives,
// RawCopyFrom) and the bulk range operations. Those primitives trust their
// callers: they update one field at a time and panic only on outright misuse.
//
// Storage performs no internal synchronization and must not be copied by
// value; share a *Storage and serialize access externally.
package storage
