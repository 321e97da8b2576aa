// Package fn provides a value-semantic, type-erased callable container.
//
// A Function[A, R] holds any value satisfying Callable[A, R] (a named
// type with a Call method, or a plain func/closure adapted through Fn)
// without its declaration site naming the concrete type. All type-specific
// behavior (copy, move, destroy, invoke) is reached through an operation
// table selected once at bind time.
//
// # Storage
//
// Every Function owns one pointer-sized storage cell. A small callable
// that carries no runtime-tracked references is stored inline in the cell
// and costs no allocation; anything else is boxed behind a single owned
// heap slot. The container stores no mode tag: which interpretation
// applies is encoded entirely in which operation table is installed.
//
// # Operation tables
//
// One immutable table exists per (signature, concrete type) pair, built
// lazily on first bind and shared process-wide. Concurrent first use from
// several goroutines observes the same table. Table identity doubles as
// the erased type's identity: Defined compares against the signature's
// empty table, Target compares against the requested type's table.
//
// # Contracts
//
//   - Invoke on an empty Function returns ErrNoTarget; it never reads the
//     cell. Panics from the bound callable pass through unchanged.
//   - CopyFrom gives the strong guarantee: built as copy-then-swap, a
//     failed copy leaves both operands exactly as they were.
//   - Move and MoveFrom never fail and leave their source empty.
//   - Swap is its own inverse and works across storage modes.
//
// A Function is not internally synchronized; see the type's documentation
// for the concurrency contract.
package fn
