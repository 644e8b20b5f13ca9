package backend

import "errors"

// ErrSyntax reports that an engine rejected an integer string. The public
// package validates input before calling SetString, so seeing this error
// indicates a digit the MPIR alphabet does not cover for the given base.
var ErrSyntax = errors.New("malformed integer string")

// FitsInt64 reports whether x is within [math.MinInt64, math.MaxInt64].
// Implemented over Bytes/Sign so both engines share one definition
// (mpz_fits_slong_p is about the native long, which is narrower than int64
// on LLP64 targets).
func FitsInt64(x Int) bool {
	b := Bytes(x)
	if len(b) < 8 {
		return true
	}
	if len(b) > 8 {
		return false
	}
	if b[0] < 0x80 {
		return true
	}
	if Sign(x) >= 0 {
		return false
	}
	// Negative values reach down to -2^63 exactly.
	if b[0] != 0x80 {
		return false
	}
	for _, c := range b[1:] {
		if c != 0 {
			return false
		}
	}
	return true
}

// Int64 returns the value of x. The result is meaningful only when
// FitsInt64(x) is true.
func Int64(x Int) int64 {
	var u uint64
	for _, c := range Bytes(x) {
		u = u<<8 | uint64(c)
	}
	if Sign(x) < 0 {
		return -int64(u)
	}
	return int64(u)
}

// FitsUint64 reports whether x is within [0, math.MaxUint64].
func FitsUint64(x Int) bool {
	return Sign(x) >= 0 && len(Bytes(x)) <= 8
}

// Uint64 returns the value of x. The result is meaningful only when
// FitsUint64(x) is true.
func Uint64(x Int) uint64 {
	var u uint64
	for _, c := range Bytes(x) {
		u = u<<8 | uint64(c)
	}
	return u
}
