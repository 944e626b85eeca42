// Package layers tracks named boolean layers in a single bitmask.
//
// A layer is a symbolic name whose position in a caller-supplied ordered
// sequence assigns it a bit index. A [Mask] is a plain uint64 value whose bit
// i records whether the layer at index i is enabled. The package-level
// operations translate names to indices and delegate the bit work to Mask;
// [Define] binds a fixed sequence once and returns a [Set] whose methods omit
// the repeated sequence argument.
//
// The sequence gives a mask its meaning. Callers must pass the same ordered
// sequence for every operation performed against a given mask; a different
// order or membership silently reinterprets the bits. The library cannot
// check this.
//
// # Architecture boundaries
//
// layers is a pure in-memory value library. Masks and sequences are immutable
// inputs; every operation returns a new value. The package holds no state of
// its own.
//
// # What this package must NOT do
//
//   - Perform I/O, persist masks, or coordinate across processes.
//   - Attach payloads or behavior to layers beyond their names.
//   - Mutate a mask or a sequence in place, ever.
//   - Grow past the native word: a Mask is exactly [MaskWidth] bits.
//
// # Concurrency
//
// Every operation is a pure function over immutable values. Concurrent
// callers may share sequences and Sets and derive masks independently without
// coordination; there is no shared mutable state to lock.
package layers
