package mpir_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpirlabs/mpir-go/pkg/mpir"
)

func fromStr(t *testing.T, s string) *mpir.Int {
	t.Helper()
	x, err := mpir.FromString(s, 10)
	require.NoError(t, err)
	t.Cleanup(x.Close)
	return x
}

func fromInt(t *testing.T, v int64) *mpir.Int {
	t.Helper()
	x := mpir.FromInt64(v)
	t.Cleanup(x.Close)
	return x
}

func TestFromStringRoundTrip(t *testing.T) {
	// Round-trips modulo sign/leading-zero canonicalization.
	tests := []struct {
		in, want string
	}{
		{"-123", "-123"},
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"007", "7"},
		{"-000123", "-123"},
		{"+42", "42"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-999999999999999999999999999999999999", "-999999999999999999999999999999999999"},
	}
	for _, tc := range tests {
		x, err := mpir.FromString(tc.in, 10)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, x.String(), "input %q", tc.in)
		x.Close()
	}
}

func TestFromStringRejects(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want error
	}{
		{"", 10, mpir.ErrEmptyInput},
		{"-", 10, mpir.ErrEmptyInput},
		{"+", 10, mpir.ErrEmptyInput},
		{" 12", 10, mpir.ErrInvalidDigit}, // whitespace is rejected, not trimmed
		{"12 ", 10, mpir.ErrInvalidDigit},
		{"1 2", 10, mpir.ErrInvalidDigit},
		{"\t5", 10, mpir.ErrInvalidDigit},
		{"12a", 10, mpir.ErrInvalidDigit},
		{"2", 2, mpir.ErrInvalidDigit},
		{"g", 16, mpir.ErrInvalidDigit},
		{"--5", 10, mpir.ErrInvalidDigit},
		{"5", 1, mpir.ErrInvalidBase},
		{"5", 0, mpir.ErrInvalidBase},
		{"5", 63, mpir.ErrInvalidBase},
	}
	for _, tc := range tests {
		x, err := mpir.FromString(tc.in, tc.base)
		require.Nil(t, x, "input %q base %d", tc.in, tc.base)
		require.ErrorIs(t, err, tc.want, "input %q base %d", tc.in, tc.base)

		var perr *mpir.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, tc.in, perr.Input)
		assert.Equal(t, tc.base, perr.Base)
	}
}

func TestTextAcrossBases(t *testing.T) {
	x := fromStr(t, "255")
	for base, want := range map[int]string{
		2:  "11111111",
		8:  "377",
		10: "255",
		16: "ff",
		36: "73",
	} {
		got, err := x.Text(base)
		require.NoError(t, err)
		assert.Equal(t, want, got, "base %d", base)
	}

	_, err := x.Text(1)
	assert.ErrorIs(t, err, mpir.ErrInvalidBase)
	_, err = x.Text(63)
	assert.ErrorIs(t, err, mpir.ErrInvalidBase)
}

func TestBase62CaseConvention(t *testing.T) {
	// MPIR alphabet for bases above 36: A-Z is 10..35, a-z is 36..61.
	upper, err := mpir.FromString("A", 62)
	require.NoError(t, err)
	defer upper.Close()
	lower, err := mpir.FromString("a", 62)
	require.NoError(t, err)
	defer lower.Close()

	v, ok := upper.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(10), v)
	v, ok = lower.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(36), v)

	// Round-trip a multi-digit base-62 value.
	x, err := mpir.FromString("3Zz9", 62)
	require.NoError(t, err)
	defer x.Close()
	s, err := x.Text(62)
	require.NoError(t, err)
	assert.Equal(t, "3Zz9", s)
}

func TestBase16CaseInsensitive(t *testing.T) {
	a, err := mpir.FromString("DEADBEEF", 16)
	require.NoError(t, err)
	defer a.Close()
	b, err := mpir.FromString("deadbeef", 16)
	require.NoError(t, err)
	defer b.Close()
	assert.True(t, a.Equal(b))
}

func TestInt64Conversion(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		got, ok := fromInt(t, v).Int64()
		require.True(t, ok, "value %d", v)
		assert.Equal(t, v, got)
	}

	// i64::MAX + 1 is strictly greater than i64::MAX and no longer fits.
	sum := fromInt(t, math.MaxInt64).Add(fromInt(t, 1))
	defer sum.Close()
	assert.Equal(t, 1, sum.Cmp(fromInt(t, math.MaxInt64)))
	_, ok := sum.Int64()
	assert.False(t, ok, "truncation must never be silent")

	u, ok := sum.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(1)<<63, u)

	_, ok = fromInt(t, -1).Uint64()
	assert.False(t, ok)
}

func TestBytesRoundTrip(t *testing.T) {
	x := fromStr(t, "1234567890123456789012345678901234567890")
	y := mpir.FromBytes(x.Bytes())
	defer y.Close()
	assert.True(t, x.Equal(y))

	// Sign is dropped on export: FromBytes(x.Bytes()) reconstructs |x|.
	n := fromStr(t, "-255")
	m := mpir.FromBytes(n.Bytes())
	defer m.Close()
	assert.Equal(t, "255", m.String())

	z := mpir.New()
	defer z.Close()
	assert.Nil(t, z.Bytes())
	e := mpir.FromBytes(nil)
	defer e.Close()
	assert.True(t, e.IsZero())
}

func TestAddSubMul(t *testing.T) {
	a := fromStr(t, "123456789012345678901234567890")
	b := fromStr(t, "987654321098765432109876543210")

	sum := a.Add(b)
	defer sum.Close()
	assert.Equal(t, "1111111110111111111011111111100", sum.String())

	diff := b.Sub(a)
	defer diff.Close()
	assert.Equal(t, "864197532086419753208641975320", diff.String())

	// Operands are never mutated by an operation.
	assert.Equal(t, "123456789012345678901234567890", a.String())
	assert.Equal(t, "987654321098765432109876543210", b.String())

	prod := fromInt(t, -3).Mul(fromInt(t, 7))
	defer prod.Close()
	assert.Equal(t, "-21", prod.String())
}

func TestDivisionIdentity(t *testing.T) {
	// a == b*(a/b) + a%b for all b != 0, with a%b taking a's sign.
	values := []int64{7, -7, 100, -100, 3, -3, 1, -1, math.MaxInt64, math.MinInt64}
	divisors := []int64{3, -3, 7, -7, 1, -1, math.MaxInt64}
	for _, av := range values {
		for _, bv := range divisors {
			a, b := fromInt(t, av), fromInt(t, bv)
			q, r, err := a.QuoRem(b)
			require.NoError(t, err)

			back := b.Mul(q).Add(r)
			assert.True(t, back.Equal(a), "%d = %d*%s + %s", av, bv, q, r)
			if r.Sign() != 0 {
				assert.Equal(t, a.Sign(), r.Sign(), "remainder sign follows dividend: %d %% %d", av, bv)
				assert.Equal(t, -1, r.CmpAbs(b), "|r| < |b|: %d %% %d", av, bv)
			}
			back.Close()
			q.Close()
			r.Close()
		}
	}
}

func TestRemSignFollowsDividend(t *testing.T) {
	r, err := fromInt(t, -7).Rem(fromInt(t, 3))
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "-1", r.String())

	q, err := fromInt(t, -7).Quo(fromInt(t, 3))
	require.NoError(t, err)
	defer q.Close()
	assert.Equal(t, "-2", q.String(), "quotient truncates toward zero")
}

func TestModNonNegative(t *testing.T) {
	tests := []struct {
		a, b int64
		want string
	}{
		{-7, 3, "2"},
		{-7, -3, "2"},
		{7, -3, "1"},
		{7, 3, "1"},
	}
	for _, tc := range tests {
		m, err := fromInt(t, tc.a).Mod(fromInt(t, tc.b))
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.String(), "%d mod %d", tc.a, tc.b)
		m.Close()
	}
}

func TestDivisionByZero(t *testing.T) {
	a := fromInt(t, 7)
	zero := mpir.New()
	defer zero.Close()

	_, err := a.Quo(zero)
	assert.ErrorIs(t, err, mpir.ErrDivisionByZero)
	_, err = a.Rem(zero)
	assert.ErrorIs(t, err, mpir.ErrDivisionByZero)
	_, _, err = a.QuoRem(zero)
	assert.ErrorIs(t, err, mpir.ErrDivisionByZero)
	_, err = a.Mod(zero)
	assert.ErrorIs(t, err, mpir.ErrDivisionByZero)
	_, err = a.PowMod(fromInt(t, 2), zero)
	assert.ErrorIs(t, err, mpir.ErrDivisionByZero)

	// Zero dividends are fine; only the divisor matters.
	q, err := zero.Quo(a)
	require.NoError(t, err)
	defer q.Close()
	assert.True(t, q.IsZero())
}

func TestPow(t *testing.T) {
	one := fromInt(t, 7).Pow(0)
	defer one.Close()
	assert.True(t, one.Equal(fromInt(t, 1)))

	// 0^0 is defined as 1 (documented convention, not a fallback).
	zz := mpir.New().Pow(0)
	defer zz.Close()
	assert.Equal(t, "1", zz.String())

	big := fromInt(t, 2).Pow(128)
	defer big.Close()
	assert.Equal(t, "340282366920938463463374607431768211456", big.String())

	neg := fromInt(t, -2).Pow(3)
	defer neg.Close()
	assert.Equal(t, "-8", neg.String())
}

func TestPowMod(t *testing.T) {
	z, err := fromInt(t, 2).PowMod(fromInt(t, 10), fromInt(t, 1000))
	require.NoError(t, err)
	defer z.Close()
	assert.Equal(t, "24", z.String())

	// Result is in [0, |m|) even for negative bases.
	z2, err := fromInt(t, -2).PowMod(fromInt(t, 3), fromInt(t, 5))
	require.NoError(t, err)
	defer z2.Close()
	assert.Equal(t, "2", z2.String())

	_, err = fromInt(t, 2).PowMod(fromInt(t, -1), fromInt(t, 5))
	assert.ErrorIs(t, err, mpir.ErrNegativeExponent)
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b int64
		want string
	}{
		{0, 0, "0"},
		{12, 0, "12"},
		{-12, 0, "12"},
		{0, -5, "5"},
		{-4, 6, "2"},
		{54, 24, "6"},
	}
	for _, tc := range tests {
		g := fromInt(t, tc.a).GCD(fromInt(t, tc.b))
		assert.Equal(t, tc.want, g.String(), "gcd(%d,%d)", tc.a, tc.b)
		g.Close()
	}
}

func TestLCM(t *testing.T) {
	l := fromInt(t, -4).LCM(fromInt(t, 6))
	defer l.Close()
	assert.Equal(t, "12", l.String())

	z := fromInt(t, 0).LCM(fromInt(t, 5))
	defer z.Close()
	assert.True(t, z.IsZero())
}

func TestSqrt(t *testing.T) {
	r, err := fromInt(t, 10).Sqrt()
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "3", r.String(), "square root truncates")

	r2, err := fromStr(t, "152415787532388367501905199875019052100").Sqrt()
	require.NoError(t, err)
	defer r2.Close()
	assert.Equal(t, "12345678901234567890", r2.String())

	_, err = fromInt(t, -1).Sqrt()
	assert.ErrorIs(t, err, mpir.ErrSqrtOfNegative)
}

func TestCmpTotalOrder(t *testing.T) {
	values := []*mpir.Int{
		fromStr(t, "-99999999999999999999999"),
		fromInt(t, -2),
		mpir.New(),
		fromInt(t, 1),
		fromStr(t, "99999999999999999999999"),
	}
	for i, a := range values {
		for j, b := range values {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, a.Cmp(b), "values[%d] vs values[%d]", i, j)
			// Antisymmetry and consistency with the sign of a-b.
			assert.Equal(t, -want, b.Cmp(a))
			d := a.Sub(b)
			assert.Equal(t, want, d.Sign())
			d.Close()
		}
	}
}

func TestCmpAbs(t *testing.T) {
	assert.Equal(t, 0, fromInt(t, -5).CmpAbs(fromInt(t, 5)))
	assert.Equal(t, 1, fromInt(t, -7).CmpAbs(fromInt(t, 5)))
	assert.Equal(t, -1, fromInt(t, 3).CmpAbs(fromInt(t, -5)))
}

func TestNegAbs(t *testing.T) {
	n := fromInt(t, 42).Neg()
	defer n.Close()
	assert.Equal(t, "-42", n.String())

	a := n.Abs()
	defer a.Close()
	assert.Equal(t, "42", a.String())

	z := mpir.New().Neg()
	defer z.Close()
	assert.True(t, z.IsZero())
}

func TestBitwise(t *testing.T) {
	a, b := fromInt(t, -6), fromInt(t, 10)

	and := a.And(b)
	defer and.Close()
	or := a.Or(b)
	defer or.Close()
	xor := a.Xor(b)
	defer xor.Close()
	not := a.Not()
	defer not.Close()

	check := func(z *mpir.Int, want int64) {
		got, ok := z.Int64()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	check(and, -6&10)
	check(or, -6|10)
	check(xor, -6^10)
	check(not, ^int64(-6))
}

func TestShifts(t *testing.T) {
	l := fromInt(t, 3).Lsh(64)
	defer l.Close()
	assert.Equal(t, "55340232221128654848", l.String())

	r := l.Rsh(64)
	defer r.Close()
	assert.Equal(t, "3", r.String())

	// Rsh truncates toward zero, unlike an arithmetic shift.
	nr := fromInt(t, -1).Rsh(1)
	defer nr.Close()
	assert.True(t, nr.IsZero())
	nr2 := fromInt(t, -7).Rsh(1)
	defer nr2.Close()
	assert.Equal(t, "-3", nr2.String())
}

func TestBitAccessors(t *testing.T) {
	x := fromInt(t, 0b101000)
	assert.Equal(t, 6, x.BitLen())
	assert.Equal(t, uint(1), x.Bit(3))
	assert.Equal(t, uint(0), x.Bit(4))
	assert.True(t, x.Even())
	assert.True(t, fromInt(t, -3).Odd())
	assert.Equal(t, 0, mpir.New().BitLen())
}

func TestCloneIsDeep(t *testing.T) {
	x := fromStr(t, "123456789012345678901234567890")
	y := x.Clone()
	assert.True(t, x.Equal(y))

	// The clone has its own storage: it survives the source being closed.
	x.Close()
	assert.Equal(t, "123456789012345678901234567890", y.String())
	y.Close()
}

func TestCloseLifecycle(t *testing.T) {
	x := mpir.FromInt64(42)
	x.Close()
	x.Close() // idempotent

	assert.PanicsWithValue(t, "mpir: use of closed Int", func() { _ = x.String() })
	assert.PanicsWithValue(t, "mpir: use of closed Int", func() { x.Add(x) })
	assert.PanicsWithValue(t, "mpir: use of closed Int", func() { x.Sign() })
	assert.PanicsWithValue(t, "mpir: use of closed Int", func() { x.Clone() })

	var nilInt *mpir.Int
	nilInt.Close() // nil receiver is a no-op
	assert.Panics(t, func() { nilInt.Sign() })
}
