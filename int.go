package bignum

import (
	"math/big"
	"strconv"
)

// An Int represents a signed integer of unbounded magnitude.
// The zero value for an Int represents the value 0.
//
// Operations follow the math/big convention: methods are of the form
//
//	func (z *Int) Op(x, y *Int) *Int
//
// and set the receiver z to the result, mutating it in place, so the same
// method serves both as a binary operator (new(Int).Add(x, y)) and as a
// compound assignment (x.Add(x, y)). Operands may alias the receiver.
//
// An Int exclusively owns its limbs. Copy one with Set or Clone rather than by
// assignment. Ints are not safe for concurrent mutation.
type Int struct {
	neg bool // sign; never true for zero
	abs nat  // magnitude
}

var intOne = &Int{abs: natOne}

// NewInt allocates and returns a new Int set to v.
func NewInt(v int64) *Int {
	return new(Int).SetInt64(v)
}

// IntFromString allocates a new Int from s, interpreted in the given base.
// See SetString for the accepted syntax.
func IntFromString(s string, base int) (*Int, error) {
	return new(Int).SetString(s, base)
}

// IntFromBigInt allocates a new Int with the value of v.
func IntFromBigInt(v *big.Int) *Int {
	z := new(Int)
	z.abs = z.abs.setBytes(v.Bytes())
	z.neg = v.Sign() < 0
	return z
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	neg := false
	if v < 0 {
		neg = true
		v = -v // wraps for minInt64; the uint64 conversion below recovers it
	}
	z.abs = z.abs.setUint64(uint64(v))
	z.neg = neg
	return z
}

// SetUint64 sets z to v and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	z.abs = z.abs.setUint64(v)
	z.neg = false
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Clone returns a copy of x that shares no storage with it.
func (x *Int) Clone() *Int {
	return new(Int).Set(x)
}

// AsBigInt returns x as a *big.Int.
func (x *Int) AsBigInt() *big.Int {
	b := new(big.Int).SetBytes(x.abs.bytes())
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Limbs returns a copy of the magnitude of x, least-significant limb first.
// Each limb is in the range [0, Radix). Zero is a single zero limb.
func (x *Int) Limbs() []uint16 {
	abs := x.abs.norm()
	out := make([]uint16, len(abs))
	copy(out, abs)
	return out
}

// LimbLen returns the number of limbs in the canonical magnitude of x.
func (x *Int) LimbLen() int {
	if n := len(x.abs.trim()); n > 0 {
		return n
	}
	return 1
}

// BitLen returns the length of the absolute value of x in bits.
// The bit length of 0 is 0.
func (x *Int) BitLen() int {
	return x.abs.bitLen()
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x *Int) Sign() int {
	if x.abs.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

func (x *Int) IsZero() bool { return x.abs.isZero() }

// Bool reports whether x is non-zero.
func (x *Int) Bool() bool { return !x.abs.isZero() }

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	n := x.abs.bitLen()
	if n <= 63 {
		return true
	}
	return n == 64 && x.neg && x.abs.uint64() == 1<<63
}

// Int64 returns the int64 representation of x. If x cannot be represented in
// an int64, the result is undefined; see IsInt64.
func (x *Int) Int64() int64 {
	v := int64(x.abs.uint64())
	if x.neg {
		v = -v
	}
	return v
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	return !x.neg && x.abs.bitLen() <= 64
}

// Uint64 returns the uint64 representation of x. If x cannot be represented
// in a uint64, the result is undefined; see IsUint64.
func (x *Int) Uint64() uint64 {
	return x.abs.uint64()
}

// Float64 returns the float64 nearest to x. Values beyond the float64 range
// become ±Inf.
func (x *Int) Float64() float64 {
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) (r int) {
	// zero is never negative, so after this check the signs decide
	if x.abs.isZero() && y.abs.isZero() {
		return 0
	}
	switch {
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return r
}

// CmpAbs compares the absolute values of x and y.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

func (x *Int) Equal(y *Int) bool            { return x.Cmp(y) == 0 }
func (x *Int) LessThan(y *Int) bool         { return x.Cmp(y) < 0 }
func (x *Int) LessOrEqualTo(y *Int) bool    { return x.Cmp(y) <= 0 }
func (x *Int) GreaterThan(y *Int) bool      { return x.Cmp(y) > 0 }
func (x *Int) GreaterOrEqualTo(y *Int) bool { return x.Cmp(y) >= 0 }

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = !z.neg && !z.abs.isZero()
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = neg && !z.abs.isZero() // 0 has no sign
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = neg && !z.abs.isZero() // 0 has no sign
	return z
}

// Mul sets z to the product x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = neg && !z.abs.isZero() // 0 has no sign
	return z
}

// Inc sets z to x+1 and returns z.
func (z *Int) Inc(x *Int) *Int {
	return z.Add(x, intOne)
}

// Dec sets z to x-1 and returns z.
func (z *Int) Dec(x *Int) *Int {
	return z.Sub(x, intOne)
}

// MulInt32 sets z to x*m and returns z. This is the short multiply: the sign
// of z is the sign of x flipped if m is negative.
func (z *Int) MulInt32(x *Int, m int32) *Int {
	neg := x.neg != (m < 0)
	z.abs = z.abs.mulAddWW(x.abs, absInt32(m), 0)
	z.neg = neg && !z.abs.isZero()
	return z
}

// LshLimbs sets z to x*Radix^k by inserting k zero limbs at the least
// significant end, and returns z.
func (z *Int) LshLimbs(x *Int, k uint) *Int {
	neg := x.neg
	z.abs = z.abs.shlLimbs(x.abs, k)
	z.neg = neg && !z.abs.isZero()
	return z
}
