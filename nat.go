package bignum

import (
	"math/bits"
)

// nat is an unsigned magnitude
//
//	x = x[n-1]*Radix^(n-1) + x[n-2]*Radix^(n-2) + ... + x[1]*Radix + x[0]
//
// stored least-significant limb first, with 0 <= x[i] < Radix.
//
// A nat is canonical if it has no most-significant zero limbs, except for the
// value zero which is a single zero limb. Every function that returns a nat
// returns it in canonical form. Functions accept non-canonical input,
// including the empty slice, which is read as zero.
type nat []uint16

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

// trim strips most-significant zero limbs, leaving an empty slice for zero.
func (x nat) trim() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// norm returns z in canonical form.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return append(z[:0], 0)
	}
	return z[:i]
}

func (x nat) isZero() bool {
	return len(x.trim()) == 0
}

func (z nat) set(x nat) nat {
	x = x.trim()
	if len(x) == 0 {
		return z.setUint64(0)
	}
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setUint64(v uint64) nat {
	if v == 0 {
		return append(z[:0], 0)
	}
	z = z[:0]
	for v > 0 {
		z = append(z, uint16(v&limbMask))
		v >>= LimbBits
	}
	return z
}

// bitLen returns the length of x in bits; 0 for zero.
func (x nat) bitLen() int {
	x = x.trim()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*LimbBits + bits.Len16(x[len(x)-1])
}

// uint64 returns the low 64 bits of x.
func (x nat) uint64() uint64 {
	x = x.trim()
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		v = v<<LimbBits | uint64(x[i])
	}
	return v
}

func (x nat) cmp(y nat) (r int) {
	x, y = x.trim(), y.trim()
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	i := m - 1
	for i >= 0 && x[i] == y[i] {
		i--
	}
	switch {
	case i < 0:
		return 0
	case x[i] < y[i]:
		return -1
	default:
		return 1
	}
}

func (z nat) add(x, y nat) nat {
	x, y = x.trim(), y.trim()
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		return z.setUint64(0)
	case n == 0:
		return z.set(x)
	}
	// m >= n > 0

	z = z.make(m + 1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = uint16(c)

	return z.norm()
}

// sub sets z = x - y. It panics if x < y; callers compare first.
func (z nat) sub(x, y nat) nat {
	x, y = x.trim(), y.trim()
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("bignum: underflow")
	case m == 0:
		return z.setUint64(0)
	case n == 0:
		return z.set(x)
	}
	// m >= n > 0

	z = z.make(m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bignum: underflow")
	}

	return z.norm()
}

// mulAddWW sets z = x*y + r; this is the short multiply.
func (z nat) mulAddWW(x nat, y uint32, r uint32) nat {
	x = x.trim()
	m := len(x)
	if m == 0 || y == 0 {
		return z.setUint64(uint64(r))
	}
	// m > 0

	z = z.make(m + 3)
	c := mulAddVWW(z[:m], x, y, uint64(r))
	z[m] = uint16(c & limbMask)
	z[m+1] = uint16((c >> LimbBits) & limbMask)
	z[m+2] = uint16(c >> (2 * LimbBits))

	return z.norm()
}

// divW sets z = x / y and returns the remainder; this is the short divide.
// y must not be zero.
func (z nat) divW(x nat, y uint32) (q nat, r uint32) {
	x = x.trim()
	m := len(x)
	switch {
	case y == 0:
		panic("bignum: division by zero")
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z.setUint64(0) // result is 0
		return
	}
	// m > 0

	z = z.make(m)
	r = divVW(z, x, y)
	q = z.norm()
	return
}

// setPow2 sets z = 2**k.
func (z nat) setPow2(k uint) nat {
	z = z.make(int(k/LimbBits) + 1)
	clear(z)
	z[len(z)-1] = 1 << (k % LimbBits)
	return z
}

// shlLimbs sets z = x * Radix^k by inserting k zero limbs at the least
// significant end.
func (z nat) shlLimbs(x nat, k uint) nat {
	x = x.trim()
	m := len(x)
	if m == 0 {
		return z.setUint64(0)
	}
	if k == 0 {
		return z.set(x)
	}

	n := m + int(k)
	z = z.make(n)
	copy(z[k:], x) // copy is overlap-safe when z aliases x
	clear(z[:k])
	return z
}

// mul sets z = x * y using the schoolbook method: x is short-multiplied by
// each limb of y and accumulated into z one limb position further along.
func (z nat) mul(x, y nat) nat {
	x, y = x.trim(), y.trim()
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return z.setUint64(0)
	}

	// z must not alias the operands; they are read after z is written.
	if alias(z, x) || alias(z, y) {
		z = nil
	}

	z = z.make(m + n)
	clear(z)
	for i, d := range y {
		if d != 0 {
			z[m+i] = uint16(addMulVVW(z[i:i+m], x, d))
		}
	}

	return z.norm()
}

// alias reports whether x and y share the same base array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// setBytes interprets buf as a big-endian unsigned integer and sets z to it.
func (z nat) setBytes(buf []byte) nat {
	z = z[:0]
	var acc uint32
	var nbits uint
	for i := len(buf) - 1; i >= 0; i-- {
		acc |= uint32(buf[i]) << nbits
		nbits += 8
		for nbits >= LimbBits {
			z = append(z, uint16(acc&limbMask))
			acc >>= LimbBits
			nbits -= LimbBits
		}
	}
	if nbits > 0 {
		z = append(z, uint16(acc))
	}
	return z.norm()
}

// bytes returns x as a big-endian byte slice with no leading zero bytes.
func (x nat) bytes() []byte {
	x = x.trim()
	buf := make([]byte, 0, (len(x)*LimbBits+7)/8)
	var acc uint32
	var nbits uint
	for _, w := range x {
		acc |= uint32(w) << nbits
		nbits += LimbBits
		for nbits >= 8 {
			buf = append(buf, byte(acc))
			acc >>= 8
			nbits -= 8
		}
	}
	if nbits > 0 {
		buf = append(buf, byte(acc))
	}
	for len(buf) > 0 && buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	reverseBytes(buf)
	return buf
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
