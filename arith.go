package bignum

// This file contains the limb-vector primitives everything else is built on.
// Limbs are held in uint16 but only ever carry LimbBits bits; intermediate
// values are widened to uint32 or uint64 so no primitive can overflow.

// addVV sets z = x + y for equal-length vectors and returns the carry (0 or 1).
func addVV(z, x, y []uint16) (c uint32) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		s := uint32(x[i]) + uint32(y[i]) + c
		z[i] = uint16(s & limbMask)
		c = s >> LimbBits
	}
	return c
}

// addVW sets z = x + y, where y is a carry, and returns the carry out.
func addVW(z, x []uint16, y uint32) (c uint32) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		s := uint32(x[i]) + c
		z[i] = uint16(s & limbMask)
		c = s >> LimbBits
	}
	return c
}

// subVV sets z = x - y for equal-length vectors and returns the borrow (0 or 1).
func subVV(z, x, y []uint16) (b uint32) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		d := int32(x[i]) - int32(y[i]) - int32(b)
		b = 0
		if d < 0 {
			d += Radix
			b = 1
		}
		z[i] = uint16(d)
	}
	return b
}

// subVW sets z = x - y, where y is a borrow, and returns the borrow out.
func subVW(z, x []uint16, y uint32) (b uint32) {
	b = y
	for i := 0; i < len(z) && i < len(x); i++ {
		d := int32(x[i]) - int32(b)
		b = 0
		if d < 0 {
			d += Radix
			b = 1
		}
		z[i] = uint16(d)
	}
	return b
}

// mulAddVWW sets z = x*y + r and returns the carry. The carry can exceed a
// single limb: with y up to 32 bits it is bounded by 2^33.
func mulAddVWW(z, x []uint16, y uint32, r uint64) (c uint64) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		t := uint64(x[i])*uint64(y) + c
		z[i] = uint16(t & limbMask)
		c = t >> LimbBits
	}
	return c
}

// addMulVVW sets z += x*y for a single-limb y and returns the carry, which
// always fits in a limb.
func addMulVVW(z, x []uint16, y uint16) (c uint32) {
	for i := 0; i < len(z) && i < len(x); i++ {
		t := uint32(z[i]) + uint32(x[i])*uint32(y) + c
		z[i] = uint16(t & limbMask)
		c = t >> LimbBits
	}
	return c
}

// divVW sets z = x / y, walking from the most significant limb down, and
// returns the remainder. The running value is always below y*Radix, so each
// committed quotient limb fits.
func divVW(z, x []uint16, y uint32) (r uint32) {
	var acc uint64
	for i := len(z) - 1; i >= 0; i-- {
		acc = acc<<LimbBits | uint64(x[i])
		z[i] = uint16(acc / uint64(y))
		acc %= uint64(y)
	}
	return uint32(acc)
}
