package bignum

import (
	"strconv"
)

// A Rat represents an exact quotient a/b of arbitrary magnitude. It is always
// kept in lowest terms with a positive denominator: the sign lives in the
// numerator, and a zero numerator has denominator 1.
//
// The zero value for a Rat represents 0. Like Int, Rat methods set the
// receiver to the result and return it, and operands may alias the receiver.
type Rat struct {
	num Int
	den Int // den.abs == 0 is treated as 1, so that Rat{} is 0/1
}

// NewRat allocates and returns the reduced fraction num/den. It returns
// ErrDivideByZero if den == 0.
func NewRat(num, den int64) (*Rat, error) {
	if den == 0 {
		return nil, ErrDivideByZero
	}
	z := new(Rat)
	z.num.SetInt64(num)
	z.den.SetInt64(den)
	return z.norm(), nil
}

// RatFromInts allocates and returns the reduced fraction num/den. The
// arguments are copied. It returns ErrNilObject if either is nil and
// ErrDivideByZero if den is zero.
func RatFromInts(num, den *Int) (*Rat, error) {
	return new(Rat).SetFrac(num, den)
}

// RatFromInt allocates and returns the integer x as a Rat.
func RatFromInt(x *Int) *Rat {
	return new(Rat).SetInt(x)
}

// RatFromInt64 allocates and returns v as a Rat.
func RatFromInt64(v int64) *Rat {
	return new(Rat).SetInt64(v)
}

// RatFromString allocates a Rat from s; see SetString for the syntax.
func RatFromString(s string) (*Rat, error) {
	return new(Rat).SetString(s)
}

// SetFrac sets z to a/b and returns z. If an error is returned, z is
// unchanged.
func (z *Rat) SetFrac(a, b *Int) (*Rat, error) {
	if z == nil || a == nil || b == nil {
		return nil, ErrNilObject
	}
	if b.IsZero() {
		return nil, ErrDivideByZero
	}
	var num, den Int
	num.Set(a)
	den.Set(b)
	z.num, z.den = num, den
	return z.norm(), nil
}

// SetFrac64 sets z to a/b and returns z. If b == 0, ErrDivideByZero is
// returned and z is unchanged.
func (z *Rat) SetFrac64(a, b int64) (*Rat, error) {
	if z == nil {
		return nil, ErrNilObject
	}
	if b == 0 {
		return nil, ErrDivideByZero
	}
	z.num.SetInt64(a)
	z.den.SetInt64(b)
	return z.norm(), nil
}

// SetInt sets z to x (by making a copy of x) and returns z.
func (z *Rat) SetInt(x *Int) *Rat {
	z.num.Set(x)
	z.den.abs = z.den.abs.setUint64(1)
	z.den.neg = false
	return z
}

// SetInt64 sets z to v and returns z.
func (z *Rat) SetInt64(v int64) *Rat {
	z.num.SetInt64(v)
	z.den.abs = z.den.abs.setUint64(1)
	z.den.neg = false
	return z
}

// Set sets z to x (by making a copy of x) and returns z.
func (z *Rat) Set(x *Rat) *Rat {
	if z != x {
		z.num.Set(&x.num)
		z.den.Set(x.denInt())
	}
	return z
}

// Clone returns a copy of x that shares no storage with it.
func (x *Rat) Clone() *Rat {
	return new(Rat).Set(x)
}

// norm restores the invariants after num or den were assigned: a negative
// denominator moves its sign into the numerator, then both are divided by
// their GCD.
func (z *Rat) norm() *Rat {
	if z.den.abs.isZero() {
		z.den.abs = z.den.abs.setUint64(1)
		z.den.neg = false
	}
	if z.den.neg {
		z.den.neg = false
		z.num.neg = !z.num.neg
	}
	if z.num.abs.isZero() {
		z.num.abs = z.num.abs.setUint64(0)
		z.num.neg = false
		z.den.abs = z.den.abs.setUint64(1)
		return z
	}

	if g := gcd(z.num.abs, z.den.abs); g.cmp(natOne) != 0 {
		z.num.abs, _ = divLong(z.num.abs, g)
		z.den.abs, _ = divLong(z.den.abs, g)
	}
	return z
}

// denInt returns the denominator of x, reading the zero value as 1. The
// result must not be modified.
func (x *Rat) denInt() *Int {
	if x.den.abs.isZero() {
		return intOne
	}
	return &x.den
}

// Num returns a copy of the numerator of x; it may be <= 0.
func (x *Rat) Num() *Int {
	return new(Int).Set(&x.num)
}

// Denom returns a copy of the denominator of x; it is always > 0.
func (x *Rat) Denom() *Int {
	return new(Int).Set(x.denInt())
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x *Rat) Sign() int {
	return x.num.Sign()
}

func (x *Rat) IsZero() bool { return x.num.IsZero() }

// IsInt reports whether the denominator of x is 1.
func (x *Rat) IsInt() bool {
	return x.denInt().abs.cmp(natOne) == 0
}

// Cmp compares x and y by cross multiplication and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Rat) Cmp(y *Rat) int {
	var a, b Int
	a.Mul(&x.num, y.denInt())
	b.Mul(&y.num, x.denInt())
	return a.Cmp(&b)
}

func (x *Rat) Equal(y *Rat) bool            { return x.Cmp(y) == 0 }
func (x *Rat) LessThan(y *Rat) bool         { return x.Cmp(y) < 0 }
func (x *Rat) LessOrEqualTo(y *Rat) bool    { return x.Cmp(y) <= 0 }
func (x *Rat) GreaterThan(y *Rat) bool      { return x.Cmp(y) > 0 }
func (x *Rat) GreaterOrEqualTo(y *Rat) bool { return x.Cmp(y) >= 0 }

// Neg sets z to -x and returns z.
func (z *Rat) Neg(x *Rat) *Rat {
	z.Set(x)
	z.num.neg = !z.num.neg && !z.num.abs.isZero()
	return z
}

// Abs sets z to |x| and returns z.
func (z *Rat) Abs(x *Rat) *Rat {
	z.Set(x)
	z.num.neg = false
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Rat) Add(x, y *Rat) *Rat {
	var a, b, den Int
	a.Mul(&x.num, y.denInt())
	b.Mul(&y.num, x.denInt())
	den.Mul(x.denInt(), y.denInt())
	z.num.Add(&a, &b)
	z.den = den
	return z.norm()
}

// Sub sets z to the difference x-y and returns z.
func (z *Rat) Sub(x, y *Rat) *Rat {
	var a, b, den Int
	a.Mul(&x.num, y.denInt())
	b.Mul(&y.num, x.denInt())
	den.Mul(x.denInt(), y.denInt())
	z.num.Sub(&a, &b)
	z.den = den
	return z.norm()
}

// Mul sets z to the product x*y and returns z.
func (z *Rat) Mul(x, y *Rat) *Rat {
	var num, den Int
	num.Mul(&x.num, &y.num)
	den.Mul(x.denInt(), y.denInt())
	z.num, z.den = num, den
	return z.norm()
}

// Quo sets z to the quotient x/y and returns z. If y == 0, ErrDivideByZero
// is returned and z is unchanged.
func (z *Rat) Quo(x, y *Rat) (*Rat, error) {
	if z == nil || x == nil || y == nil {
		return nil, ErrNilObject
	}
	if y.IsZero() {
		return nil, ErrDivideByZero
	}
	var num, den Int
	num.Mul(&x.num, y.denInt())
	den.Mul(x.denInt(), &y.num)
	z.num, z.den = num, den
	return z.norm(), nil
}

// Inv sets z to 1/x and returns z. If x == 0, ErrDivideByZero is returned
// and z is unchanged.
func (z *Rat) Inv(x *Rat) (*Rat, error) {
	if z == nil || x == nil {
		return nil, ErrNilObject
	}
	if x.IsZero() {
		return nil, ErrDivideByZero
	}
	var num, den Int
	num.Set(x.denInt())
	den.Set(&x.num)
	z.num, z.den = num, den
	return z.norm(), nil
}

// AsDecimal returns x in decimal notation with prec digits after the point,
// rounded half-up (away from zero on a tie). The integer part always has at
// least one digit, and the point is omitted when prec == 0. A value that
// rounds to zero is printed without a sign.
//
//	1/3  -> "0.33" (prec 2)
//	2/3  -> "0.67" (prec 2)
//	-1/2 -> "-1"   (prec 0)
func (x *Rat) AsDecimal(prec uint) string {
	// |num| * 10**(prec+1) / den carries one guard digit for rounding.
	var scale nat
	scale = scale.pow(natTen, prec+1)
	q, _ := divLong(nat(nil).mul(x.num.abs, scale), x.denInt().abs)

	q, guard := q.divW(q, 10)
	if guard >= 5 {
		q = q.add(q, natOne)
	}

	digits := q.itoa(false, 10)
	if pad := int(prec) + 1 - len(digits); pad > 0 {
		padded := make([]byte, pad, pad+len(digits))
		for i := range padded {
			padded[i] = '0'
		}
		digits = append(padded, digits...)
	}

	out := make([]byte, 0, len(digits)+2)
	if x.num.neg && !q.isZero() {
		out = append(out, '-')
	}
	split := len(digits) - int(prec)
	out = append(out, digits[:split]...)
	if prec > 0 {
		out = append(out, '.')
		out = append(out, digits[split:]...)
	}
	return string(out)
}

// Float64 returns the float64 nearest to x. It renders x with AsDecimal at a
// precision of 20 digits beyond the length of the denominator and parses the
// result; the error is strconv's range error if x is out of float64 range.
func (x *Rat) Float64() (float64, error) {
	prec := len(x.denInt().abs.itoa(false, 10)) + 20
	return strconv.ParseFloat(x.AsDecimal(uint(prec)), 64)
}
