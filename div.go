package bignum

// divLong returns q = u / v and r = u % v. v must not be zero. Both results
// are freshly allocated, so u and v may alias anything.
//
// This is schoolbook long division: limbs of u are pulled into a running
// value cur from the most significant end. Whenever cur >= v, the next quotient
// limb is the largest m in [0, Radix) with m*v <= cur, which searchLimb finds
// by bisection. The cost is O(n log Radix) short multiplies per quotient limb.
func divLong(u, v nat) (q, r nat) {
	u, v = u.trim(), v.trim()
	if len(v) == 0 {
		panic("bignum: division by zero")
	}

	if u.cmp(v) < 0 {
		return nat(nil).setUint64(0), nat(nil).set(u)
	}

	if len(v) == 1 {
		var r1 uint32
		q, r1 = nat(nil).divW(u, uint32(v[0]))
		return q, nat(nil).setUint64(uint64(r1))
	}

	q = make(nat, len(u))
	cur := make(nat, 0, len(v)+1)
	cur = cur.setUint64(0)
	var prod nat

	for i := len(u) - 1; i >= 0; i-- {
		// cur = cur*Radix + u[i]; cur < v before the shift, so cur < v*Radix
		// after it and the quotient limb always fits.
		cur = cur.shlLimbs(cur, 1)
		cur[0] = u[i]

		var m uint16
		if cur.cmp(v) >= 0 {
			m = searchLimb(cur, v, &prod)
			prod = prod.mulAddWW(v, uint32(m), 0)
			cur = cur.sub(cur, prod)
		}
		q[i] = m
	}

	return q.norm(), cur.norm()
}

// searchLimb returns the largest m in [0, Radix) such that m*v <= cur. It
// requires cur < v*Radix. prod is scratch space.
func searchLimb(cur, v nat, prod *nat) uint16 {
	lo, hi := uint32(0), uint32(Radix) // lo*v <= cur < hi*v
	for lo+1 < hi {
		mid := (lo + hi) / 2
		*prod = prod.mulAddWW(v, mid, 0)
		switch prod.cmp(cur) {
		case 0:
			return uint16(mid)
		case -1:
			lo = mid
		default:
			hi = mid
		}
	}
	return uint16(lo)
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y and returns
// the pair (z, r) for y != 0. z and r must be distinct.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// See DivMod for floor division. If y == 0, ErrDivideByZero is returned and
// neither z nor r is modified.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if z == nil || x == nil || y == nil || r == nil {
		return nil, nil, ErrNilObject
	}
	if y.abs.isZero() {
		return nil, nil, ErrDivideByZero
	}

	q, rem := divLong(x.abs, y.abs)
	qneg, rneg := x.neg != y.neg, x.neg

	z.abs, z.neg = q, qneg && !q.isZero()
	r.abs, r.neg = rem, rneg && !rem.isZero()
	return z, r, nil
}

// Quo sets z to the quotient x/y for y != 0 and returns z. Quo implements
// truncated division (like Go); see QuoRem for more details.
func (z *Int) Quo(x, y *Int) (*Int, error) {
	var r Int
	if _, _, err := z.QuoRem(x, y, &r); err != nil {
		return nil, err
	}
	return z, nil
}

// Rem sets z to the remainder x%y for y != 0 and returns z. Rem implements
// truncated modulus (like Go); see QuoRem for more details.
func (z *Int) Rem(x, y *Int) (*Int, error) {
	var q Int
	if _, _, err := q.QuoRem(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

// DivMod sets z to the quotient x div y and m to the modulus x mod y and
// returns the pair (z, m) for y != 0. z and m must be distinct.
//
// DivMod implements floor division: the quotient is rounded towards negative
// infinity, so a non-zero modulus always carries the sign of the divisor:
//
//	-7 div 2   == -4,  -7 mod 2   == 1
//	 7 div -2  == -4,   7 mod -2  == -1
//
// If y == 0, ErrDivideByZero is returned and neither z nor m is modified.
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int, error) {
	if z == nil || x == nil || y == nil || m == nil {
		return nil, nil, ErrNilObject
	}
	if y.abs.isZero() {
		return nil, nil, ErrDivideByZero
	}

	q, r := divLong(x.abs, y.abs)
	neg := x.neg != y.neg
	if neg && !r.isZero() {
		q = q.add(q, natOne)
		r = nat(nil).sub(y.abs, r)
	}
	mneg := y.neg

	z.abs, z.neg = q, neg && !q.isZero()
	m.abs, m.neg = r, mneg && !r.isZero()
	return z, m, nil
}

// Div sets z to the quotient x div y for y != 0 and returns z. Div implements
// floor division; see DivMod for more details.
func (z *Int) Div(x, y *Int) (*Int, error) {
	var m Int
	if _, _, err := z.DivMod(x, y, &m); err != nil {
		return nil, err
	}
	return z, nil
}

// Mod sets z to the modulus x mod y for y != 0 and returns z. Mod implements
// floor modulus, so the result has the sign of y; see DivMod for more details.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	var q Int
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

// QuoRemInt32 sets z to x/d truncated towards zero and returns z along with
// |x| mod |d|. As with MulInt32, the sign of z is the sign of x flipped if d
// is negative.
func (z *Int) QuoRemInt32(x *Int, d int32) (*Int, uint32, error) {
	if z == nil || x == nil {
		return nil, 0, ErrNilObject
	}
	if d == 0 {
		return nil, 0, ErrDivideByZero
	}
	neg := x.neg != (d < 0)
	q, r := z.abs.divW(x.abs, absInt32(d))
	z.abs, z.neg = q, neg && !q.isZero()
	return z, r, nil
}

// GCD sets z to the greatest common divisor of |x| and |y| using Euclid's
// algorithm and returns z. GCD(0, 0) == 0.
func (z *Int) GCD(x, y *Int) *Int {
	z.abs = gcd(x.abs, y.abs)
	z.neg = false
	return z
}

func gcd(x, y nat) nat {
	a, b := nat(nil).set(x), nat(nil).set(y)
	for !b.isZero() {
		_, r := divLong(a, b)
		a, b = b, r
	}
	return a
}

func absInt32(v int32) uint32 {
	if v < 0 {
		return uint32(-int64(v))
	}
	return uint32(v)
}
