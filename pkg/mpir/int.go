package mpir

import (
	"runtime"

	"github.com/mpirlabs/mpir-go/pkg/mpir/internal/backend"
)

// Int is an arbitrary-precision signed integer. The zero of the type is not
// usable; construct values with New, FromInt64, FromUint64, FromBytes,
// FromString, or as the result of an operation.
//
// Each Int owns exactly one engine handle. Close releases it; a finalizer is
// set as a safety net for values that are never closed explicitly. Using an
// Int after Close panics: the value is gone, and observing a stale or
// half-released native object would be worse than the panic.
//
// Methods never mutate their receiver or operands. Results always live in
// freshly allocated storage, so it is safe to use an operand as many times
// as needed, from the goroutine that owns it.
type Int struct {
	handle backend.Int
}

func newInt() *Int {
	z := &Int{handle: backend.New()}
	runtime.SetFinalizer(z, (*Int).Close)
	return z
}

// ref returns the live handle, panicking on a nil or closed receiver. Every
// method funnels handle access through here so a lifecycle violation fails
// loudly instead of touching released native memory.
func (x *Int) ref() backend.Int {
	if x == nil || x.handle == nil {
		panic("mpir: use of closed Int")
	}
	return x.handle
}

// New returns a new Int with value zero. It never fails: allocation failure
// in the native library is a process abort, not an error.
func New() *Int {
	return newInt()
}

// FromInt64 returns a new Int with the given value. Exact and total.
func FromInt64(v int64) *Int {
	z := newInt()
	backend.SetInt64(z.handle, v)
	return z
}

// FromUint64 returns a new Int with the given value. Exact and total.
func FromUint64(v uint64) *Int {
	z := newInt()
	backend.SetUint64(z.handle, v)
	return z
}

// FromBytes returns a new non-negative Int whose magnitude is the big-endian
// byte slice b. An empty or nil slice yields zero.
func FromBytes(b []byte) *Int {
	z := newInt()
	backend.SetBytes(z.handle, b)
	return z
}

// FromString parses s in the given base (2-62). An optional leading '+' or
// '-' is allowed; everything after it must be digits valid for the base (see
// the package comment for the alphabet). Whitespace is rejected, not
// trimmed. On failure the returned error is a *ParseError wrapping
// ErrInvalidBase, ErrEmptyInput or ErrInvalidDigit.
func FromString(s string, base int) (*Int, error) {
	if perr := checkString(s, base); perr != nil {
		return nil, perr
	}
	// The native parser takes '-' but not '+'.
	t := s
	if t[0] == '+' {
		t = t[1:]
	}
	z := newInt()
	if err := backend.SetString(z.handle, t, base); err != nil {
		z.Close()
		return nil, &ParseError{Input: s, Base: base, Err: ErrInvalidDigit}
	}
	return z, nil
}

// Clone returns a deep copy of x with its own backing storage. The clone is
// fully independent: closing either value does not affect the other.
func (x *Int) Clone() *Int {
	z := &Int{handle: backend.NewSet(x.ref())}
	runtime.SetFinalizer(z, (*Int).Close)
	runtime.KeepAlive(x)
	return z
}

// Close releases the native object. It is idempotent; any other use of the
// Int after Close panics.
func (x *Int) Close() {
	if x == nil || x.handle == nil {
		return
	}
	backend.Clear(x.handle)
	x.handle = nil
	runtime.SetFinalizer(x, nil)
}

// binary allocates the result and applies op to (x, y).
func (x *Int) binary(y *Int, op func(z, a, b backend.Int)) *Int {
	z := newInt()
	op(z.handle, x.ref(), y.ref())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return z
}

// unary allocates the result and applies op to x.
func (x *Int) unary(op func(z, a backend.Int)) *Int {
	z := newInt()
	op(z.handle, x.ref())
	runtime.KeepAlive(x)
	return z
}

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Int) Sign() int {
	s := backend.Sign(x.ref())
	runtime.KeepAlive(x)
	return s
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.Sign() == 0 }

// Odd reports whether x is odd.
func (x *Int) Odd() bool {
	odd := backend.Odd(x.ref())
	runtime.KeepAlive(x)
	return odd
}

// Even reports whether x is even.
func (x *Int) Even() bool { return !x.Odd() }

// Bit returns bit i of x (0 or 1), treating x as two's complement; for
// negative x high bits read as 1 indefinitely.
func (x *Int) Bit(i uint) uint {
	b := backend.Bit(x.ref(), i)
	runtime.KeepAlive(x)
	return b
}

// BitLen returns the length of the absolute value of x in bits, 0 for zero.
func (x *Int) BitLen() int {
	n := backend.BitLen(x.ref())
	runtime.KeepAlive(x)
	return n
}

// Int64 returns the value of x as an int64. The second result is false when
// x does not fit; truncation is never silent.
func (x *Int) Int64() (int64, bool) {
	h := x.ref()
	if !backend.FitsInt64(h) {
		runtime.KeepAlive(x)
		return 0, false
	}
	v := backend.Int64(h)
	runtime.KeepAlive(x)
	return v, true
}

// Uint64 returns the value of x as a uint64. The second result is false when
// x is negative or does not fit.
func (x *Int) Uint64() (uint64, bool) {
	h := x.ref()
	if !backend.FitsUint64(h) {
		runtime.KeepAlive(x)
		return 0, false
	}
	v := backend.Uint64(h)
	runtime.KeepAlive(x)
	return v, true
}

// Bytes returns the big-endian magnitude of x. The sign is dropped; zero
// yields nil. FromBytes(x.Bytes()) reconstructs |x|.
func (x *Int) Bytes() []byte {
	b := backend.Bytes(x.ref())
	runtime.KeepAlive(x)
	return b
}

// String returns the canonical base-10 representation of x.
func (x *Int) String() string {
	s := backend.Text(x.ref(), 10)
	runtime.KeepAlive(x)
	return s
}

// Text returns the canonical representation of x in the given base (2-62):
// no leading zeros except the literal "0", a leading '-' for negative values
// only, lowercase letters through base 36 and the MPIR digits/upper/lower
// alphabet for 37-62. Fails only with ErrInvalidBase.
func (x *Int) Text(base int) (string, error) {
	if base < 2 || base > 62 {
		return "", ErrInvalidBase
	}
	s := backend.Text(x.ref(), base)
	runtime.KeepAlive(x)
	return s, nil
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int { return x.binary(y, backend.Add) }

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int { return x.binary(y, backend.Sub) }

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int { return x.binary(y, backend.Mul) }

// Neg returns -x.
func (x *Int) Neg() *Int { return x.unary(backend.Neg) }

// Abs returns |x|.
func (x *Int) Abs() *Int { return x.unary(backend.Abs) }

// Quo returns the quotient x / y truncated toward zero. Fails with
// ErrDivisionByZero when y is zero; the check happens here because the
// native routine's behavior on a zero divisor is undefined.
func (x *Int) Quo(y *Int) (*Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return x.binary(y, backend.Quo), nil
}

// Rem returns the remainder x % y of truncating division; the result has the
// sign of x and |result| < |y|. Fails with ErrDivisionByZero when y is zero.
func (x *Int) Rem(y *Int) (*Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return x.binary(y, backend.Rem), nil
}

// QuoRem returns both results of truncating division, satisfying
// x == y*q + r. Fails with ErrDivisionByZero when y is zero.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	if y.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	q, r = newInt(), newInt()
	backend.QuoRem(q.handle, r.handle, x.ref(), y.ref())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return q, r, nil
}

// Mod returns x mod y with the divisor's sign ignored: the result is always
// in [0, |y|). Fails with ErrDivisionByZero when y is zero.
func (x *Int) Mod(y *Int) (*Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return x.binary(y, backend.Mod), nil
}

// Pow returns x**e. The zero-to-the-zero case is defined as 1, following the
// native library's documented convention.
func (x *Int) Pow(e uint64) *Int {
	z := newInt()
	backend.Pow(z.handle, x.ref(), e)
	runtime.KeepAlive(x)
	return z
}

// PowMod returns x**e mod |m|, with the result in [0, |m|). Fails with
// ErrDivisionByZero when m is zero and ErrNegativeExponent when e is
// negative.
func (x *Int) PowMod(e, m *Int) (*Int, error) {
	if m.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if e.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	z := newInt()
	backend.PowMod(z.handle, x.ref(), e.ref(), m.ref())
	runtime.KeepAlive(x)
	runtime.KeepAlive(e)
	runtime.KeepAlive(m)
	return z, nil
}

// GCD returns the greatest common divisor of x and y. The result is always
// non-negative; GCD(x, 0) is |x| and GCD(0, 0) is 0.
func (x *Int) GCD(y *Int) *Int { return x.binary(y, backend.GCD) }

// LCM returns the least common multiple of x and y, non-negative, and zero
// when either operand is zero.
func (x *Int) LCM(y *Int) *Int { return x.binary(y, backend.LCM) }

// Sqrt returns the truncated integer square root of x. Fails with
// ErrSqrtOfNegative when x is negative.
func (x *Int) Sqrt() (*Int, error) {
	if x.Sign() < 0 {
		return nil, ErrSqrtOfNegative
	}
	return x.unary(backend.Sqrt), nil
}

// Bitwise operations behave as if two's complement arithmetic were used,
// although the underlying representation is sign-magnitude, matching the
// native library.

// And returns x & y.
func (x *Int) And(y *Int) *Int { return x.binary(y, backend.And) }

// Or returns x | y.
func (x *Int) Or(y *Int) *Int { return x.binary(y, backend.Or) }

// Xor returns x ^ y.
func (x *Int) Xor(y *Int) *Int { return x.binary(y, backend.Xor) }

// Not returns the one's complement ^x == -x-1.
func (x *Int) Not() *Int { return x.unary(backend.Not) }

// Lsh returns x * 2**n.
func (x *Int) Lsh(n uint) *Int {
	z := newInt()
	backend.Lsh(z.handle, x.ref(), n)
	runtime.KeepAlive(x)
	return z
}

// Rsh returns x / 2**n truncated toward zero. Note this is not an arithmetic
// shift: FromInt64(-1).Rsh(1) is 0, not -1.
func (x *Int) Rsh(n uint) *Int {
	z := newInt()
	backend.Rsh(z.handle, x.ref(), n)
	runtime.KeepAlive(x)
	return z
}

// Cmp returns -1, 0 or +1 according to whether x is less than, equal to or
// greater than y. The order is total and consistent with the sign of x - y.
func (x *Int) Cmp(y *Int) int {
	c := backend.Cmp(x.ref(), y.ref())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return c
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	c := backend.CmpAbs(x.ref(), y.ref())
	runtime.KeepAlive(x)
	runtime.KeepAlive(y)
	return c
}

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }
