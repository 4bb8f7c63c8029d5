package bignum

import (
	"bytes"
	"fmt"
	"io"
	"unicode"
)

// formatBase maps a fmt verb to the radix it prints in, or 0 if Int does not
// support the verb.
func formatBase(ch rune) int {
	switch ch {
	case 'd', 's', 'v':
		return 10
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b':
		return 2
	default:
		return 0
	}
}

// formatPrefix returns the radix marker written before the digits. 'O'
// always carries one; the others only with the '#' flag.
func formatPrefix(ch rune, alt bool) string {
	if ch == 'O' {
		return "0o"
	}
	if !alt {
		return ""
	}
	switch ch {
	case 'b':
		return "0b"
	case 'o':
		return "0"
	case 'x':
		return "0x"
	case 'X':
		return "0X"
	}
	return ""
}

func pad(s fmt.State, c byte, n int) {
	b := []byte{c}
	for ; n > 0; n-- {
		s.Write(b)
	}
}

// Format implements fmt.Formatter with the same verbs and flags as the
// built-in integers: 'b', 'o', 'O', 'd', 'x' and 'X', plus 's' and 'v' for
// decimal. Precision is a minimum digit count.
func (x *Int) Format(s fmt.State, ch rune) {
	base := formatBase(ch)
	if base == 0 {
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", ch, x.String())
		return
	}
	if x == nil {
		io.WriteString(s, "<nil>")
		return
	}

	var head []byte
	switch {
	case x.neg:
		head = append(head, '-')
	case s.Flag('+'):
		head = append(head, '+')
	case s.Flag(' '):
		head = append(head, ' ')
	}
	head = append(head, formatPrefix(ch, s.Flag('#'))...)

	// itoa renders upper case.
	body := x.abs.itoa(false, base)
	if ch != 'X' {
		body = bytes.ToLower(body)
	}

	minDigits, hasPrec := s.Precision()
	if hasPrec && minDigits == 0 && x.abs.isZero() {
		return
	}
	lead := 0
	if hasPrec && len(body) < minDigits {
		lead = minDigits - len(body)
	}

	var spaceL, spaceR int
	if w, ok := s.Width(); ok {
		if fill := w - len(head) - lead - len(body); fill > 0 {
			switch {
			case s.Flag('-'):
				spaceR = fill
			case s.Flag('0') && !hasPrec:
				lead += fill
			default:
				spaceL = fill
			}
		}
	}

	pad(s, ' ', spaceL)
	s.Write(head)
	pad(s, '0', lead)
	s.Write(body)
	pad(s, ' ', spaceR)
}

func isNotSpace(r rune) bool { return !unicode.IsSpace(r) }

// Scan implements fmt.Scanner. It skips leading space, then consumes exactly
// one whitespace-delimited token and parses it with SetString. It accepts the
// formats 'b' (binary), 'o' (octal), 'd', 's' and 'v' (decimal), and 'x' or
// 'X' (hexadecimal).
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	base := formatBase(ch)
	if base == 0 || ch == 'O' {
		return fmt.Errorf("bignum: Int.Scan: invalid verb %q", ch)
	}

	tok, err := s.Token(true, isNotSpace)
	if err != nil {
		return err
	}
	_, err = z.SetString(string(tok), base)
	return err
}

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (x *Int) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.abs.itoa(x.neg, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it accepts the decimal
// form only.
func (z *Int) UnmarshalText(bts []byte) error {
	_, err := z.SetString(string(bts), 10)
	return err
}

// MarshalJSON encodes x as a quoted decimal string so that values beyond the
// float64 range survive JSON decoders that parse numbers as floats.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts either a quoted decimal string or a bare JSON number
// without fraction or exponent.
func (z *Int) UnmarshalJSON(bts []byte) error {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return z.UnmarshalText(bts)
}
