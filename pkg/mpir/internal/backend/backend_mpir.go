//go:build mpir && cgo && !windows

package backend

/*
#cgo LDFLAGS: -lmpir
#include <stdlib.h>
#include <mpir.h>

// mpz_sgn, mpz_odd_p and mpz_even_p are macros; cgo needs real functions.
static int go_mpz_sgn(mpz_srcptr x)  { return mpz_sgn(x); }
static int go_mpz_odd(mpz_srcptr x)  { return mpz_odd_p(x); }
*/
import "C"

import "unsafe"

// Int is a pointer to a malloc'd, mpz_init'ed native integer. The public
// package owns exactly one live handle per value and releases it through
// Clear.
type Int = *C.__mpz_struct

// New allocates a zero-valued native integer. A failed header allocation is
// fatal: MPIR itself aborts on out-of-memory during limb growth, and a
// half-built handle must never escape.
func New() Int {
	p := (Int)(C.malloc(C.sizeof___mpz_struct))
	if p == nil {
		panic("mpir: out of memory")
	}
	C.mpz_init(p)
	return p
}

// NewSet allocates a deep copy of x (mpz_init_set).
func NewSet(x Int) Int {
	p := (Int)(C.malloc(C.sizeof___mpz_struct))
	if p == nil {
		panic("mpir: out of memory")
	}
	C.mpz_init_set(p, x)
	return p
}

// Clear releases the native integer. Must be called exactly once per handle.
func Clear(x Int) {
	C.mpz_clear(x)
	C.free(unsafe.Pointer(x))
}

// setUint64Abs stores v through 32-bit halves so the code does not depend on
// the width of the native unsigned long.
func setUint64Abs(x Int, v uint64) {
	C.mpz_set_ui(x, C.ulong(v>>32))
	C.mpz_mul_2exp(x, x, 32)
	C.mpz_add_ui(x, x, C.ulong(v&0xffffffff))
}

func SetInt64(x Int, v int64) {
	if v >= 0 {
		setUint64Abs(x, uint64(v))
		return
	}
	setUint64Abs(x, -uint64(v))
	C.mpz_neg(x, x)
}

func SetUint64(x Int, v uint64) { setUint64Abs(x, v) }

// SetString parses s in the given base using the MPIR digit alphabet
// (case-insensitive through base 36; A-Z before a-z for 37-62).
func SetString(x Int, s string, base int) error {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	if C.mpz_set_str(x, cs, C.int(base)) != 0 {
		return ErrSyntax
	}
	return nil
}

// Text formats x in the given base. MPIR emits lowercase letters through base
// 36 and the digits/upper/lower alphabet for 37-62, which is the canonical
// form the public package documents.
func Text(x Int, base int) string {
	p := C.mpz_get_str(nil, C.int(base), x)
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

// SetBytes sets x to the non-negative integer with big-endian magnitude b.
func SetBytes(x Int, b []byte) {
	if len(b) == 0 {
		C.mpz_set_ui(x, 0)
		return
	}
	C.mpz_import(x, C.size_t(len(b)), 1, 1, 1, 0, unsafe.Pointer(&b[0]))
}

// Bytes returns the big-endian magnitude of x, nil for zero.
func Bytes(x Int) []byte {
	if C.go_mpz_sgn(x) == 0 {
		return nil
	}
	n := (int(C.mpz_sizeinbase(x, 2)) + 7) / 8
	buf := make([]byte, n)
	var written C.size_t
	C.mpz_export(unsafe.Pointer(&buf[0]), &written, 1, 1, 1, 0, x)
	return buf[:written]
}

func Sign(x Int) int { return int(C.go_mpz_sgn(x)) }

func Add(z, a, b Int) { C.mpz_add(z, a, b) }
func Sub(z, a, b Int) { C.mpz_sub(z, a, b) }
func Mul(z, a, b Int) { C.mpz_mul(z, a, b) }
func Neg(z, a Int)    { C.mpz_neg(z, a) }
func Abs(z, a Int)    { C.mpz_abs(z, a) }

// Quo, Rem and QuoRem are truncating division (mpz_tdiv_*): the quotient
// rounds toward zero and the remainder takes the dividend's sign. The
// divisor must be non-zero; the safe layer checks before calling.
func Quo(z, a, b Int)       { C.mpz_tdiv_q(z, a, b) }
func Rem(z, a, b Int)       { C.mpz_tdiv_r(z, a, b) }
func QuoRem(q, r, a, b Int) { C.mpz_tdiv_qr(q, r, a, b) }

// Mod is mpz_mod: the divisor's sign is ignored and the result is always
// non-negative.
func Mod(z, a, b Int) { C.mpz_mod(z, a, b) }

// Pow raises a to the e-th power (mpz_pow_ui; 0^0 is 1). The exponent is
// passed through as the native unsigned long.
func Pow(z, a Int, e uint64) {
	if uint64(C.ulong(e)) != e {
		panic("mpir: pow exponent exceeds the native word size")
	}
	C.mpz_pow_ui(z, a, C.ulong(e))
}

// PowMod computes base^exp mod |mod| (mpz_powm). The exponent must be
// non-negative and the modulus non-zero.
func PowMod(z, base, exp, mod Int) { C.mpz_powm(z, base, exp, mod) }

func GCD(z, a, b Int) { C.mpz_gcd(z, a, b) }
func LCM(z, a, b Int) { C.mpz_lcm(z, a, b) }

// Sqrt is the truncated integer square root (mpz_sqrt). The operand must be
// non-negative.
func Sqrt(z, a Int) { C.mpz_sqrt(z, a) }

func And(z, a, b Int) { C.mpz_and(z, a, b) }
func Or(z, a, b Int)  { C.mpz_ior(z, a, b) }
func Xor(z, a, b Int) { C.mpz_xor(z, a, b) }
func Not(z, a Int)    { C.mpz_com(z, a) }

func Lsh(z, a Int, n uint) { C.mpz_mul_2exp(z, a, C.mp_bitcnt_t(n)) }

// Rsh divides by 2^n truncating toward zero (mpz_tdiv_q_2exp), not an
// arithmetic shift: -1 >> 1 is 0.
func Rsh(z, a Int, n uint) { C.mpz_tdiv_q_2exp(z, a, C.mp_bitcnt_t(n)) }

func Cmp(a, b Int) int {
	return norm(int(C.mpz_cmp(a, b)))
}

func CmpAbs(a, b Int) int {
	return norm(int(C.mpz_cmpabs(a, b)))
}

func norm(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

func Bit(x Int, i uint) uint {
	return uint(C.mpz_tstbit(x, C.mp_bitcnt_t(i)))
}

// BitLen returns the length of the absolute value of x in bits, 0 for zero.
func BitLen(x Int) int {
	if C.go_mpz_sgn(x) == 0 {
		return 0
	}
	return int(C.mpz_sizeinbase(x, 2))
}

func Odd(x Int) bool { return C.go_mpz_odd(x) != 0 }

// EngineVersion reports the linked native library version.
func EngineVersion() string {
	return "mpir " + C.GoString(C.mpir_version)
}
