package bignum

import "math/bits"

// pow sets z = x**e using binary square-and-multiply over the bits of e,
// most significant first. 0**0 == 1.
func (z nat) pow(x nat, e uint) nat {
	if e == 0 {
		return z.setUint64(1)
	}
	x = x.trim()
	if len(x) == 0 {
		return z.setUint64(0)
	}
	if alias(z, x) {
		x = nat(nil).set(x) // z is overwritten before the last read of x
	}

	z = z.set(x)
	for i := bits.Len(e) - 2; i >= 0; i-- {
		z = z.mul(z, z)
		if (e>>uint(i))&1 != 0 {
			z = z.mul(z, x)
		}
	}
	return z
}

// Pow sets z to x**e and returns z. x**0 == 1 for every x, including zero.
func (z *Int) Pow(x *Int, e uint) *Int {
	neg := x.neg && e&1 == 1
	z.abs = z.abs.pow(x.abs, e)
	z.neg = neg && !z.abs.isZero()
	return z
}
