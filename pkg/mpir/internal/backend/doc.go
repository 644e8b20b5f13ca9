// Package backend is the engine layer behind the public mpir API.
//
// # Design Principles
//
// 1. Isolation: ALL CGO code lives in this package. No other package in the
//    module imports "C".
//
// 2. Two engines, one contract: the file built with `-tags=mpir` calls the
//    native MPIR mpz_* entry points through cgo; every other build delegates
//    to math/big. Both implement the same function set with the same
//    semantics (truncating division, non-negative Mod, the MPIR base-62
//    digit alphabet), so the public package and its tests are identical
//    regardless of engine.
//
// 3. Handles, not values: an Int is an opaque per-engine handle. New
//    allocates and zero-initializes, Clear releases. Clear must be called
//    exactly once per handle; the public package enforces this through
//    ownership, not this package.
//
// 4. Preconditions live above: division entry points assume a non-zero
//    divisor and Sqrt a non-negative operand. The native library's behavior
//    on a zero divisor is undefined, so the safe layer checks before calling
//    down.
//
// 5. No global state: nothing in this package touches MPIR's process-wide
//    configuration (custom allocators are deliberately not exposed).
//
// Allocation failure is not recoverable: MPIR aborts the process when a
// big-integer growth allocation fails, and New panics if the handle header
// itself cannot be allocated. No partially initialized handle ever escapes.
package backend
