package bignum

import (
	"fmt"
	"strings"
)

// RootStrategy selects the algorithm used by RootWith. Both strategies return
// the same result.
type RootStrategy int

const (
	// RootBinarySearch brackets the root by repeated squaring of a seed and
	// bisects the bracket. It is the default used by Root.
	RootBinarySearch RootStrategy = iota

	// RootNewton uses Newton's (Heron's) iteration from a size-matched seed.
	RootNewton
)

func (s RootStrategy) String() string {
	switch s {
	case RootBinarySearch:
		return "binary"
	case RootNewton:
		return "newton"
	default:
		return fmt.Sprintf("RootStrategy(%d)", int(s))
	}
}

// ParseRootStrategy parses the names returned by RootStrategy.String.
func ParseRootStrategy(s string) (RootStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bisect", "":
		return RootBinarySearch, nil
	case "newton", "heron":
		return RootNewton, nil
	default:
		return 0, fmt.Errorf("bignum: unknown root strategy %q", s)
	}
}

// Root sets z to the n-th root of x, truncated towards zero, and returns z.
// For x >= 0 the result r satisfies r**n <= x < (r+1)**n. Odd roots of
// negative numbers are -Root(|x|, n).
//
// Root returns ErrInvalidRootIndex if n == 0 and ErrNegativeRoot if n is even
// and x is negative; z is left unchanged in both cases.
func (z *Int) Root(x *Int, n uint) (*Int, error) {
	return z.RootWith(x, n, RootBinarySearch)
}

// RootWith is like Root but lets the caller choose the algorithm.
func (z *Int) RootWith(x *Int, n uint, strategy RootStrategy) (*Int, error) {
	if z == nil || x == nil {
		return nil, ErrNilObject
	}
	if n == 0 {
		return nil, ErrInvalidRootIndex
	}
	if x.neg && n%2 == 0 {
		return nil, ErrNegativeRoot
	}

	var r nat
	switch strategy {
	case RootBinarySearch:
		r = x.abs.rootBinary(n)
	case RootNewton:
		r = x.abs.rootNewton(n)
	default:
		return nil, fmt.Errorf("bignum: unknown root strategy %d", int(strategy))
	}

	z.abs, z.neg = r, x.neg && !r.isZero()
	return z, nil
}

// rootTrivial handles the cases both strategies share: zero, the first root
// and indexes so large that the root must be 1. ok is false if none applies.
func (x nat) rootTrivial(n uint) (r nat, ok bool) {
	x = x.trim()
	switch {
	case len(x) == 0:
		return nat(nil).setUint64(0), true
	case n == 1:
		return nat(nil).set(x), true
	case uint64(n) >= uint64(x.bitLen()):
		// x < 2**n, so 1 <= root < 2.
		return nat(nil).setUint64(1), true
	}
	return nil, false
}

// rootBinary returns the floor of the n-th root of x by bisection.
//
// The bracket [lo, hi] is found by squaring rootSeed until hi**n >= x, with lo
// the last value whose power was still below x (or zero). The invariant
// lo**n <= x <= hi**n is kept while the bracket is narrowed to width 1.
func (x nat) rootBinary(n uint) nat {
	if r, ok := x.rootTrivial(n); ok {
		return r
	}
	a := x.trim()

	var lo, hi, p nat
	lo = lo.setUint64(0)
	hi = hi.set(rootSeed)
	for p = p.pow(hi, n); p.cmp(a) < 0; p = p.pow(hi, n) {
		lo = lo.set(hi)
		hi = hi.mul(hi, hi)
	}

	var mid, width nat
	for {
		width = width.sub(hi, lo)
		if width.cmp(natOne) <= 0 {
			break
		}
		mid = mid.add(lo, hi)
		mid, _ = mid.divW(mid, 2)

		p = p.pow(mid, n)
		switch p.cmp(a) {
		case 0:
			return mid
		case 1:
			hi = hi.set(mid)
		default:
			lo = lo.set(mid)
		}
	}

	if p = p.pow(hi, n); p.cmp(a) <= 0 {
		return hi
	}
	return lo
}

// rootNewton returns the floor of the n-th root of x using the iteration
//
//	x' = ((n-1)*x + a/x**(n-1)) / n
//
// seeded with 2**ceil(bitLen(a)/n), the smallest power of two whose n-th
// power reaches 2**bitLen(a) > a, so the seed is never below the root and is
// at most twice it. Every iterate after the first is >= the floor of the
// root, so the sequence is followed while it strictly decreases.
// A final correction pass enforces r**n <= a < (r+1)**n whatever the
// iteration stopped on.
func (x nat) rootNewton(n uint) nat {
	if r, ok := x.rootTrivial(n); ok {
		return r
	}
	a := x.trim()

	// n < bitLen(a) here, which keeps n well inside uint32.
	n32 := uint32(n)

	var p nat
	step := func(xk nat) nat {
		p = p.pow(xk, n-1)
		q, _ := divLong(a, p)
		next := nat(nil).mulAddWW(xk, n32-1, 0)
		next = next.add(next, q)
		next, _ = next.divW(next, n32)
		return next
	}

	bl := uint(a.bitLen())
	xk := nat(nil).setPow2((bl + n - 1) / n)
	xk = step(xk)
	for {
		next := step(xk)
		if next.cmp(xk) >= 0 {
			break
		}
		xk = next
	}

	for p = p.pow(xk, n); p.cmp(a) > 0; p = p.pow(xk, n) {
		xk = xk.sub(xk, natOne)
	}
	for {
		next := nat(nil).add(xk, natOne)
		if p = p.pow(next, n); p.cmp(a) > 0 {
			break
		}
		xk = next
	}
	return xk
}
