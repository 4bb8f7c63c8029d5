package bignum

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var i64 = NewInt

func TestIntFromBigInt(t *testing.T) {
	for idx, tc := range []string{
		"0",
		"1",
		"-1",
		"32767",
		"32768",
		"-32768",
		"9223372036854775807",
		"-9223372036854775808",
		"340282366920938463463374607431768211455",
		"-123456789012345678901234567890123456789012345678901234567890",
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc), func(t *testing.T) {
			tt := assert.WrapTB(t)
			b := bigs(tc)
			v := IntFromBigInt(b)
			tt.MustEqual(tc, v.String())
			tt.MustAssert(b.Cmp(v.AsBigInt()) == 0, "found: %s", v.AsBigInt())
			tt.MustOK(checkCanonical(v))
		})
	}
}

func TestIntZeroValue(t *testing.T) {
	tt := assert.WrapTB(t)

	var z Int
	tt.MustEqual("0", z.String())
	tt.MustEqual(0, z.Sign())
	tt.MustAssert(z.IsZero())
	tt.MustAssert(!z.Bool())
	tt.MustEqual(1, z.LimbLen())
	tt.MustEqual([]uint16{0}, z.Limbs())
	tt.MustAssert(z.Equal(i64(0)))

	var r Int
	r.Add(&z, &z)
	tt.MustOK(checkCanonical(&r))
	tt.MustEqual([]uint16{0}, r.Limbs())
}

func TestIntLimbs(t *testing.T) {
	for _, tc := range []struct {
		in    string
		limbs []uint16
	}{
		{"0", []uint16{0}},
		{"1", []uint16{1}},
		{"32767", []uint16{32767}},
		{"32768", []uint16{0, 1}},
		{"-32769", []uint16{1, 1}},
		{"1073741824", []uint16{0, 0, 1}},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := ints(tc.in)
			tt.MustEqual(tc.limbs, v.Limbs())
			tt.MustEqual(len(tc.limbs), v.LimbLen())

			// Limbs returns a copy
			l := v.Limbs()
			l[0]++
			tt.MustEqual(tc.limbs, v.Limbs())
		})
	}
}

func TestIntAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c string
	}{
		{"1", "2", "3"},
		{"10", "-3", "7"},
		{"-10", "3", "-7"},
		{"3", "-10", "-7"},
		{"-3", "-10", "-13"},
		{"5", "-5", "0"},
		{"-5", "5", "0"},
		{"32767", "1", "32768"}, // carry into a new limb
		{"1073741823", "1", "1073741824"},
		{"-1073741824", "1", "-1073741823"}, // borrow across limbs
		{"123456789012345678901234567890", "123456789012345678901234567890", "246913578024691357802469135780"},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := ints(tc.a), ints(tc.b)
			r := new(Int).Add(a, b)
			tt.MustEqual(tc.c, r.String())
			tt.MustOK(checkCanonical(r))

			// commutative
			tt.MustEqual(tc.c, new(Int).Add(b, a).String())

			// receiver aliasing either operand
			tt.MustEqual(tc.c, a.Clone().Add(a.Clone(), b).String())
			bb := b.Clone()
			tt.MustEqual(tc.c, bb.Add(a, bb).String())
		})
	}
}

func TestIntSub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c string
	}{
		{"3", "2", "1"},
		{"2", "3", "-1"},
		{"-2", "3", "-5"},
		{"2", "-3", "5"},
		{"-2", "-3", "1"},
		{"7", "7", "0"},
		{"32768", "1", "32767"},
		{"1073741824", "1", "1073741823"},
		{"0", "123456789012345678901234567890", "-123456789012345678901234567890"},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := ints(tc.a), ints(tc.b)
			r := new(Int).Sub(a, b)
			tt.MustEqual(tc.c, r.String())
			tt.MustOK(checkCanonical(r))

			a.Sub(a, b)
			tt.MustEqual(tc.c, a.String())
		})
	}
}

func TestIntMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c string
	}{
		{"1", "2", "2"},
		{"-3", "4", "-12"},
		{"-3", "-4", "12"},
		{"0", "-4", "0"},
		{"-4", "0", "0"},
		{"32767", "32767", "1073676289"},
		{"123456789012345678901234567890", "2", "246913578024691357802469135780"},
		{"18446744073709551616", "18446744073709551616", "340282366920938463463374607431768211456"},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := ints(tc.a), ints(tc.b)
			r := new(Int).Mul(a, b)
			tt.MustEqual(tc.c, r.String())
			tt.MustOK(checkCanonical(r))
			tt.MustEqual(tc.c, new(Int).Mul(b, a).String())

			a.Mul(a, b)
			tt.MustEqual(tc.c, a.String())
		})
	}
}

func TestIntMulSquareAliased(t *testing.T) {
	tt := assert.WrapTB(t)
	x := ints("123456789012345678901234567890")
	x.Mul(x, x)
	tt.MustEqual("15241578753238836750495351562536198787501905199875019052100", x.String())
}

func TestIntIdentities(t *testing.T) {
	tt := assert.WrapTB(t)
	zero, one := i64(0), i64(1)

	for i := 0; i < 1000; i++ {
		b := randomBigInt(globalRNG, 400, true)
		x := IntFromBigInt(b)

		tt.MustAssert(new(Int).Add(x, zero).Equal(x), "x + 0 == x for %s", x)
		tt.MustAssert(new(Int).Add(x, new(Int).Neg(x)).IsZero(), "x + -x == 0 for %s", x)
		tt.MustAssert(new(Int).Mul(x, one).Equal(x), "x * 1 == x for %s", x)

		y := IntFromBigInt(randomBigInt(globalRNG, 400, true))
		z := IntFromBigInt(randomBigInt(globalRNG, 400, true))

		// (x + y) + z == x + (y + z)
		l := new(Int).Add(new(Int).Add(x, y), z)
		r := new(Int).Add(x, new(Int).Add(y, z))
		tt.MustAssert(l.Equal(r))

		// (x * y) * z == x * (y * z)
		l.Mul(new(Int).Mul(x, y), z)
		r.Mul(x, new(Int).Mul(y, z))
		tt.MustAssert(l.Equal(r))

		// x * (y + z) == x*y + x*z
		l.Mul(x, new(Int).Add(y, z))
		r.Add(new(Int).Mul(x, y), new(Int).Mul(x, z))
		tt.MustAssert(l.Equal(r))
	}
}

func TestIntCmp(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		c    int
	}{
		{"0", "0", 0},
		{"-0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "0", -1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"-2", "-1", -1},
		{"32768", "32767", 1},
		{"-32768", "-32767", -1},
		{"-32768", "32767", -1}, // signs decide before limb count
		{"123456789012345678901234567890", "123456789012345678901234567891", -1},
	} {
		t.Run(fmt.Sprintf("%s<=>%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := ints(tc.a), ints(tc.b)
			tt.MustEqual(tc.c, a.Cmp(b))
			tt.MustEqual(-tc.c, b.Cmp(a))
			tt.MustEqual(tc.c == 0, a.Equal(b))
			tt.MustEqual(tc.c < 0, a.LessThan(b))
			tt.MustEqual(tc.c <= 0, a.LessOrEqualTo(b))
			tt.MustEqual(tc.c > 0, a.GreaterThan(b))
			tt.MustEqual(tc.c >= 0, a.GreaterOrEqualTo(b))
		})
	}
}

func TestIntCmpAbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(-5).CmpAbs(i64(5)))
	tt.MustEqual(1, i64(-6).CmpAbs(i64(5)))
	tt.MustEqual(-1, i64(4).CmpAbs(i64(-5)))
}

func TestIntIncDec(t *testing.T) {
	for _, tc := range []struct {
		in, inc, dec string
	}{
		{"0", "1", "-1"},
		{"-1", "0", "-2"},
		{"1", "2", "0"},
		{"32767", "32768", "32766"},
		{"-32768", "-32767", "-32769"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			x := ints(tc.in)
			tt.MustEqual(tc.inc, new(Int).Inc(x).String())
			tt.MustEqual(tc.dec, new(Int).Dec(x).String())
			tt.MustEqual(tc.in, x.String())
		})
	}
}

func TestIntNegAbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("-5", new(Int).Neg(i64(5)).String())
	tt.MustEqual("5", new(Int).Neg(i64(-5)).String())
	tt.MustEqual("0", new(Int).Neg(i64(0)).String())
	tt.MustOK(checkCanonical(new(Int).Neg(i64(0))))
	tt.MustEqual("5", new(Int).Abs(i64(-5)).String())
	tt.MustEqual("5", new(Int).Abs(i64(5)).String())
}

func TestIntMulInt32(t *testing.T) {
	for _, tc := range []struct {
		a string
		m int32
		c string
	}{
		{"3", 4, "12"},
		{"3", -4, "-12"},
		{"-3", -4, "12"},
		{"-3", 0, "0"},
		{"123456789012345678901234567890", 2, "246913578024691357802469135780"},
		{"32767", math.MaxInt32, "70366596661249"},
		{"-1", math.MinInt32, "2147483648"},
	} {
		t.Run(fmt.Sprintf("%s*%d=%s", tc.a, tc.m, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := new(Int).MulInt32(ints(tc.a), tc.m)
			tt.MustEqual(tc.c, r.String())
			tt.MustOK(checkCanonical(r))
		})
	}
}

func TestIntLshLimbs(t *testing.T) {
	tt := assert.WrapTB(t)
	x := ints("-5")
	x.LshLimbs(x, 2)
	tt.MustEqual([]uint16{0, 0, 5}, x.Limbs())
	tt.MustEqual(-1, x.Sign())
	tt.MustEqual("-5368709120", x.String())

	tt.MustEqual([]uint16{0}, new(Int).LshLimbs(i64(0), 3).Limbs())
	tt.MustEqual("7", new(Int).LshLimbs(i64(7), 0).String())
}

func TestIntInt64(t *testing.T) {
	for _, tc := range []struct {
		in    string
		ok    bool
		int64 int64
	}{
		{"0", true, 0},
		{"-1", true, -1},
		{"9223372036854775807", true, math.MaxInt64},
		{"-9223372036854775808", true, math.MinInt64},
		{"9223372036854775808", false, 0},
		{"-9223372036854775809", false, 0},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			x := ints(tc.in)
			tt.MustEqual(tc.ok, x.IsInt64())
			if tc.ok {
				tt.MustEqual(tc.int64, x.Int64())
				tt.MustEqual(tc.in, NewInt(tc.int64).String())
			}
		})
	}
}

func TestIntUint64(t *testing.T) {
	tt := assert.WrapTB(t)
	x := new(Int).SetUint64(math.MaxUint64)
	tt.MustEqual("18446744073709551615", x.String())
	tt.MustAssert(x.IsUint64())
	tt.MustEqual(uint64(math.MaxUint64), x.Uint64())

	x.Inc(x)
	tt.MustAssert(!x.IsUint64())
	tt.MustAssert(!i64(-1).IsUint64())
}

func TestIntFloat64(t *testing.T) {
	for _, tc := range []string{
		"0",
		"1",
		"-1",
		"12345678901234567890",
		"-98765432109876543210987654321098765432109876543210",
	} {
		t.Run(tc, func(t *testing.T) {
			tt := assert.WrapTB(t)
			x := ints(tc)
			bf, _ := new(big.Float).SetInt(bigs(tc)).Float64()
			tt.MustEqual(bf, x.Float64())
		})
	}

	tt := assert.WrapTB(t)
	huge := new(Int).Pow(i64(10), 400)
	tt.MustAssert(math.IsInf(huge.Float64(), 1))
}

func TestIntBitLen(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(0).BitLen())
	tt.MustEqual(1, i64(-1).BitLen())
	tt.MustEqual(15, i64(32767).BitLen())
	tt.MustEqual(16, i64(32768).BitLen())
	tt.MustEqual(64, new(Int).SetUint64(math.MaxUint64).BitLen())
}

func TestIntSetClone(t *testing.T) {
	tt := assert.WrapTB(t)
	x := ints("123456789012345678901234567890")
	y := x.Clone()
	y.Inc(y)
	tt.MustEqual("123456789012345678901234567890", x.String())
	tt.MustEqual("123456789012345678901234567891", y.String())

	var z Int
	z.Set(x)
	x.Neg(x)
	tt.MustEqual("123456789012345678901234567890", z.String())
	tt.MustEqual(z.String(), z.Set(&z).String())
}
