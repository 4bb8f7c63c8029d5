package bignum

import (
	"github.com/pkg/errors"
)

// Text returns the string representation of x in the given base, which must
// be between MinBase and MaxBase inclusive. Digits above 9 are the uppercase
// letters 'A' to 'Z'. A nil *Int renders as "<nil>".
//
// Text panics if base is out of range, like strconv.FormatInt.
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.itoa(x.neg, base))
}

// Append appends the string representation of x, as generated by Text, to
// buf and returns the extended buffer.
func (x *Int) Append(buf []byte, base int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.abs.itoa(x.neg, base)...)
}

func (x *Int) String() string {
	return x.Text(10)
}

// itoa renders x by repeated short division by base. Digits come out least
// significant first and are reversed once at the end.
func (x nat) itoa(neg bool, base int) []byte {
	if base < MinBase || base > MaxBase {
		panic("bignum: invalid base")
	}

	x = x.trim()
	if len(x) == 0 {
		return []byte{digits[0]}
	}

	q := nat(nil).set(x)
	b := uint32(base)
	out := make([]byte, 0, 1) // append doubles the capacity as it grows

	var r uint32
	for !q.isZero() {
		q, r = q.divW(q, b)
		out = append(out, digits[r])
	}
	if neg {
		out = append(out, '-')
	}
	reverseBytes(out)
	return out
}

// SetString sets z to the value of s, interpreted in the given base, and
// returns z.
//
// s is an optional leading '-' followed by one or more digits from the
// base's digit set. Letters may be upper or lower case. Any other character,
// including a '+' sign, surrounding whitespace or an underscore, is an error
// wrapping ErrMalformedInput. A base outside [MinBase, MaxBase] returns
// ErrInvalidBase. On error z is left unchanged.
func (z *Int) SetString(s string, base int) (*Int, error) {
	if z == nil {
		return nil, ErrNilObject
	}
	if base < MinBase || base > MaxBase {
		return nil, errors.Wrapf(ErrInvalidBase, "base %d", base)
	}

	neg, off := false, 0
	if len(s) > 0 && s[0] == '-' {
		neg, off = true, 1
	}

	abs, err := nat(nil).setString(s[off:], base, off)
	if err != nil {
		return nil, err
	}
	z.abs, z.neg = abs, neg && !abs.isZero()
	return z, nil
}

// setString parses the unsigned digit string s in the given base. It scans
// from the least significant digit, adding digit*base**pos for each position
// with a running power accumulator. off is the offset of s within the
// caller's string, used for error reporting.
func (z nat) setString(s string, base int, off int) (nat, error) {
	if len(s) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no digits")
	}

	var term nat
	pow := nat(nil).setUint64(1)
	z = z.setUint64(0)
	for i := len(s) - 1; i >= 0; i-- {
		d := digitValue(s[i])
		if d >= base {
			return nil, errors.Wrapf(ErrMalformedInput, "invalid character %q at offset %d for base %d", s[i], i+off, base)
		}
		if d != 0 {
			term = term.mulAddWW(pow, uint32(d), 0)
			z = z.add(z, term)
		}
		if i > 0 {
			pow = pow.mulAddWW(pow, uint32(base), 0)
		}
	}
	return z, nil
}

// digitValue returns the value of c as a digit, or MaxBase if c is not a
// digit in any supported base.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	default:
		return MaxBase
	}
}
