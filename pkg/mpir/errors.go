package mpir

import (
	"errors"
	"strconv"
)

// Parse failures. FromString wraps these in a *ParseError carrying the
// offending input and base.
var (
	// ErrEmptyInput reports an empty string, or a bare sign with no digits.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidDigit reports a character outside the digit alphabet for the
	// requested base. Whitespace is rejected, not trimmed.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrInvalidBase reports a base outside the native library's 2-62 range.
	ErrInvalidBase = errors.New("invalid base (must be 2..62)")
)

// Arithmetic failures. These are returned, never panicked: they depend on
// operand values, not on caller correctness.
var (
	// ErrDivisionByZero reports a zero divisor or modulus. The check happens
	// before delegating to the native routine, whose behavior on a zero
	// divisor is undefined.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeExponent reports a negative exponent passed to PowMod.
	ErrNegativeExponent = errors.New("negative exponent")

	// ErrSqrtOfNegative reports a negative receiver passed to Sqrt.
	ErrSqrtOfNegative = errors.New("square root of negative number")
)

// ParseError records a failed FromString call. It wraps one of the parse
// sentinels, so errors.Is(err, mpir.ErrInvalidDigit) and friends work.
type ParseError struct {
	Input string
	Base  int
	Err   error
}

func (e *ParseError) Error() string {
	return "mpir: parsing " + strconv.Quote(e.Input) + " in base " +
		strconv.Itoa(e.Base) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
