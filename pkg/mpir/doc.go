// Package mpir provides safe arbitrary-precision signed integers backed by
// the MPIR library (Multiple Precision Integers and Rationals).
//
// # Engines
//
// Builds with `-tags=mpir` (cgo, non-Windows) link against the native MPIR
// library; all other builds use a portable math/big engine with identical
// semantics. The public API and its behavior do not depend on the engine;
// EngineVersion reports which one is active.
//
// # Memory Management
//
// Each Int owns exactly one native object. Release it deterministically with
// Close when done:
//
//	x, err := mpir.FromString("123456789012345678901234567890", 10)
//	if err != nil {
//	    return err
//	}
//	defer x.Close()
//
// A finalizer is set as a safety net, but explicit cleanup is recommended for
// values with native backing. Close is idempotent; any other use of a closed
// Int panics rather than observing a stale value. Copies are always deep
// (Clone), so no two live Ints ever share backing storage.
//
// # Value Semantics
//
// Operations never mutate their operands; every arithmetic method returns a
// freshly allocated result. Division (Quo, Rem, QuoRem) truncates toward
// zero and the remainder takes the dividend's sign, matching the native
// library's tdiv family; Mod is the always-non-negative variant. Division by
// zero returns ErrDivisionByZero; it is checked before the native call,
// whose behavior on a zero divisor is undefined.
//
// # Text Representation
//
// Bases 2 through 62 are supported. Through base 36, parsing is
// case-insensitive and output uses lowercase letters. For bases 37-62 the
// MPIR alphabet applies: digits, then A-Z for 10-35, then a-z for 36-61,
// case-sensitive. Canonical output has no leading zeros (except "0" itself)
// and a leading '-' only for negative values. Whitespace in input is
// rejected, never trimmed.
//
// # Concurrency
//
// An Int is safely transferable between goroutines, but the package provides
// no internal locking: a single Int must not be used concurrently with Close,
// and concurrent access to one value requires external synchronization.
// Distinct Ints are always independent. No operation blocks, so there are no
// cancellation or timeout semantics.
package mpir
