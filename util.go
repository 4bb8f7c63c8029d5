package bignum

// DifferenceInt returns the result of subtracting the smaller of a and b
// from the larger, which is never negative.
func DifferenceInt(a, b *Int) *Int {
	if a.Cmp(b) >= 0 {
		return new(Int).Sub(a, b)
	}
	return new(Int).Sub(b, a)
}

// LargerInt returns a copy of the larger of a and b.
func LargerInt(a, b *Int) *Int {
	if a.Cmp(b) >= 0 {
		return a.Clone()
	}
	return b.Clone()
}

// SmallerInt returns a copy of the smaller of a and b.
func SmallerInt(a, b *Int) *Int {
	if a.Cmp(b) <= 0 {
		return a.Clone()
	}
	return b.Clone()
}

// Factorial returns n!. 0! == 1.
func Factorial(n uint) *Int {
	z := nat(nil).setUint64(1)
	for i := uint(2); i <= n; i++ {
		if i < Radix {
			z = z.mulAddWW(z, uint32(i), 0)
		} else {
			z = z.mul(z, nat(nil).setUint64(uint64(i)))
		}
	}
	return &Int{abs: z}
}

// Binomial returns the binomial coefficient C(n, k), the number of ways of
// choosing k items from n. It is 0 when k > n.
func Binomial(n, k uint) *Int {
	if k > n {
		return &Int{abs: nat(nil).setUint64(0)}
	}
	if k > n-k {
		k = n - k
	}

	// C(n, i) = C(n, i-1) * (n-i+1) / i; every intermediate is an integer.
	z := nat(nil).setUint64(1)
	var f nat
	for i := uint(1); i <= k; i++ {
		f = f.setUint64(uint64(n - i + 1))
		z = z.mul(z, f)
		if i < Radix {
			z, _ = z.divW(z, uint32(i))
		} else {
			z, _ = divLong(z, f.setUint64(uint64(i)))
		}
	}
	return &Int{abs: z}
}
