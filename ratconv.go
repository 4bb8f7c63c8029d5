package bignum

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// String returns x in the form "a/b", even if b == 1.
func (x *Rat) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.marshal())
}

// RatString returns x in the form "a/b" if b != 1, and in the form "a" if
// b == 1.
func (x *Rat) RatString() string {
	if x.IsInt() {
		return x.num.String()
	}
	return x.String()
}

func (x *Rat) marshal() []byte {
	buf := x.num.Append(nil, 10)
	buf = append(buf, '/')
	return x.denInt().Append(buf, 10)
}

// SetString sets z to the value of s and returns z. s can be given as a
// fraction "a/b", as an integer "a", or as a decimal "a.b" with at least one
// digit on each side of the point. a may carry a leading '-'; b may not.
//
// Parse errors wrap ErrMalformedInput, and a zero denominator returns
// ErrDivideByZero. On error z is unchanged.
func (z *Rat) SetString(s string) (*Rat, error) {
	if z == nil {
		return nil, ErrNilObject
	}

	if sep := strings.IndexByte(s, '/'); sep >= 0 {
		num, neg, err := parseSigned(s[:sep], 0)
		if err != nil {
			return nil, err
		}
		den, err := nat(nil).setString(s[sep+1:], 10, sep+1)
		if err != nil {
			return nil, err
		}
		if den.isZero() {
			return nil, ErrDivideByZero
		}
		z.num.abs, z.num.neg = num, neg
		z.den.abs, z.den.neg = den, false
		return z.norm(), nil
	}

	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		ipart, neg, err := parseSigned(s[:dot], 0)
		if err != nil {
			return nil, err
		}
		frac := s[dot+1:]
		fpart, err := nat(nil).setString(frac, 10, dot+1)
		if err != nil {
			return nil, err
		}

		// ipart.frac == (ipart * 10**len(frac) + fpart) / 10**len(frac)
		den := nat(nil).pow(natTen, uint(len(frac)))
		num := nat(nil).mul(ipart, den)
		num = num.add(num, fpart)
		z.num.abs, z.num.neg = num, neg
		z.den.abs, z.den.neg = den, false
		return z.norm(), nil
	}

	num, neg, err := parseSigned(s, 0)
	if err != nil {
		return nil, err
	}
	z.num.abs, z.num.neg = num, neg
	z.den.abs, z.den.neg = z.den.abs.setUint64(1), false
	return z.norm(), nil
}

// parseSigned parses an optionally '-' prefixed decimal integer found at
// offset off of the caller's input. neg reports the '-' even when abs is
// zero, as in "-0.5"; norm drops the sign of a zero result.
func parseSigned(s string, off int) (abs nat, neg bool, err error) {
	if len(s) > 0 && s[0] == '-' {
		neg, s, off = true, s[1:], off+1
	}
	abs, err = nat(nil).setString(s, 10, off)
	if err != nil {
		return nil, false, err
	}
	return abs, neg, nil
}

// Format implements fmt.Formatter. 's' and 'v' print the "a/b" form. 'f'
// prints the decimal form using AsDecimal, with a default precision of 6.
// Width and the '-' flag pad the result with spaces; '+' forces a sign.
func (x *Rat) Format(s fmt.State, ch rune) {
	var str string
	switch ch {
	case 's', 'v':
		str = x.String()
	case 'f', 'F':
		if x == nil {
			str = "<nil>"
			break
		}
		prec, ok := s.Precision()
		if !ok {
			prec = 6
		}
		str = x.AsDecimal(uint(prec))
		if s.Flag('+') && str[0] != '-' {
			str = "+" + str
		}
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Rat=%s)", ch, x.String())
		return
	}

	var left, right int
	if width, ok := s.Width(); ok && len(str) < width {
		if s.Flag('-') {
			right = width - len(str)
		} else {
			left = width - len(str)
		}
	}
	pad(s, ' ', left)
	fmt.Fprint(s, str)
	pad(s, ' ', right)
}

// Scan implements fmt.Scanner. It consumes one whitespace-delimited token
// and parses it with SetString, for the verbs 's', 'v' and 'f'.
func (z *Rat) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 's', 'v', 'f', 'F':
	default:
		return fmt.Errorf("bignum: Rat.Scan: invalid verb %q", ch)
	}
	tok, err := s.Token(true, isNotSpace)
	if err != nil {
		return err
	}
	_, err = z.SetString(string(tok))
	return err
}

// MarshalText implements encoding.TextMarshaler using the "a/b" form.
func (x *Rat) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.marshal(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// SetString does.
func (z *Rat) UnmarshalText(bts []byte) error {
	if _, err := z.SetString(string(bts)); err != nil {
		return errors.Wrap(err, "bignum: cannot unmarshal into a Rat")
	}
	return nil
}

// MarshalJSON encodes x as a quoted "a/b" string.
func (x *Rat) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted string in any SetString form, or a bare JSON
// number without an exponent.
func (z *Rat) UnmarshalJSON(bts []byte) error {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: rat invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return z.UnmarshalText(bts)
}
