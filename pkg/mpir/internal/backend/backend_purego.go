//go:build !mpir || !cgo || windows

package backend

import "math/big"

// Int is backed by math/big when the native library is not linked in
// (builds without the mpir tag, without cgo, or on Windows). The function
// set below reproduces MPIR semantics exactly (truncating division,
// non-negative Mod, the MPIR base-62 digit alphabet) so the public package
// behaves identically on either engine.
type Int = *big.Int

func New() Int { return new(big.Int) }

func NewSet(x Int) Int { return new(big.Int).Set(x) }

// Clear drops the magnitude so a released handle can never resurrect an old
// value through a stale reference.
func Clear(x Int) { x.SetInt64(0) }

func SetInt64(x Int, v int64) { x.SetInt64(v) }

func SetUint64(x Int, v uint64) { x.SetUint64(v) }

// SetString parses s using the MPIR digit alphabet. math/big and MPIR agree
// through base 36; for 37-62 their letter orders are opposite (MPIR counts
// A-Z before a-z, math/big the reverse), so letters are case-swapped on the
// way in.
func SetString(x Int, s string, base int) error {
	if base > 36 {
		s = swapLetterCase(s)
	}
	if _, ok := x.SetString(s, base); !ok {
		return ErrSyntax
	}
	return nil
}

// Text formats x in the given base, case-swapping letters above base 36 to
// restore the MPIR alphabet.
func Text(x Int, base int) string {
	s := x.Text(base)
	if base > 36 {
		s = swapLetterCase(s)
	}
	return s
}

// swapLetterCase maps between the MPIR base-62 alphabet (0-9, A-Z, a-z) and
// the math/big one (0-9, a-z, A-Z).
func swapLetterCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case 'a' <= c && c <= 'z':
			b[i] = c - 'a' + 'A'
		case 'A' <= c && c <= 'Z':
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func SetBytes(x Int, b []byte) { x.SetBytes(b) }

// Bytes returns the big-endian magnitude of x, nil for zero.
func Bytes(x Int) []byte {
	if x.Sign() == 0 {
		return nil
	}
	return x.Bytes()
}

func Sign(x Int) int { return x.Sign() }

func Add(z, a, b Int) { z.Add(a, b) }
func Sub(z, a, b Int) { z.Sub(a, b) }
func Mul(z, a, b Int) { z.Mul(a, b) }
func Neg(z, a Int)    { z.Neg(a) }
func Abs(z, a Int)    { z.Abs(a) }

// Quo, Rem and QuoRem are truncating division, matching mpz_tdiv_*. The
// divisor must be non-zero; the safe layer checks before calling.
func Quo(z, a, b Int) { z.Quo(a, b) }
func Rem(z, a, b Int) { z.Rem(a, b) }

func QuoRem(q, r, a, b Int) { q.QuoRem(a, b, r) }

// Mod matches mpz_mod: the divisor's sign is ignored and the result is
// always non-negative. big.Int.Mod implements Euclidean modulus, which is
// the same function.
func Mod(z, a, b Int) { z.Mod(a, b) }

// Pow raises a to the e-th power; 0^0 is 1, matching mpz_pow_ui.
func Pow(z, a Int, e uint64) {
	z.Exp(a, new(big.Int).SetUint64(e), nil)
}

// PowMod computes base^exp mod |mod|. The exponent must be non-negative and
// the modulus non-zero.
func PowMod(z, base, exp, mod Int) { z.Exp(base, exp, mod) }

// GCD is always non-negative: GCD(a,0) = |a|, GCD(0,0) = 0. big.Int.GCD
// requires positive operands, so signs and zeros are normalized here.
func GCD(z, a, b Int) {
	var aa, bb big.Int
	aa.Abs(a)
	bb.Abs(b)
	if aa.Sign() == 0 {
		z.Set(&bb)
		return
	}
	if bb.Sign() == 0 {
		z.Set(&aa)
		return
	}
	z.GCD(nil, nil, &aa, &bb)
}

// LCM is non-negative and zero when either operand is zero, matching
// mpz_lcm.
func LCM(z, a, b Int) {
	if a.Sign() == 0 || b.Sign() == 0 {
		z.SetInt64(0)
		return
	}
	var g, p big.Int
	GCD(&g, a, b)
	p.Mul(a, b)
	p.Abs(&p)
	z.Quo(&p, &g)
}

// Sqrt is the truncated integer square root. The operand must be
// non-negative.
func Sqrt(z, a Int) { z.Sqrt(a) }

func And(z, a, b Int) { z.And(a, b) }
func Or(z, a, b Int)  { z.Or(a, b) }
func Xor(z, a, b Int) { z.Xor(a, b) }
func Not(z, a Int)    { z.Not(a) }

func Lsh(z, a Int, n uint) { z.Lsh(a, n) }

// Rsh divides by 2^n truncating toward zero, matching mpz_tdiv_q_2exp.
// big.Int.Rsh is an arithmetic (flooring) shift, so negative operands go
// through the absolute value: trunc(a / 2^n) = -(|a| >> n) for a < 0.
func Rsh(z, a Int, n uint) {
	if a.Sign() >= 0 {
		z.Rsh(a, n)
		return
	}
	z.Abs(a)
	z.Rsh(z, n)
	z.Neg(z)
}

func Cmp(a, b Int) int    { return a.Cmp(b) }
func CmpAbs(a, b Int) int { return a.CmpAbs(b) }

func Bit(x Int, i uint) uint { return x.Bit(int(i)) }

// BitLen returns the length of the absolute value of x in bits, 0 for zero.
func BitLen(x Int) int { return x.BitLen() }

func Odd(x Int) bool { return x.Bit(0) == 1 }

// EngineVersion identifies the portable engine.
func EngineVersion() string { return "math/big" }
