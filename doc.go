/*
Package bignum provides arbitrary-precision signed integers (Int) and exact
reduced fractions (Rat), implementing most of the math/big.Int and
math/big.Rat API with a few additions.

Magnitudes are stored as 15-bit limbs, least-significant first. Division
comes in two flavours: QuoRem, Quo and Rem truncate like Go's / and %, while
DivMod, Div and Mod floor, so a non-zero remainder always carries the sign of
the divisor:

	x := bignum.NewInt(-7)
	q, m, _ := new(bignum.Int).DivMod(x, bignum.NewInt(2), new(bignum.Int))
	fmt.Println(q, m)
	// Output: -4 1

Int and Rat are mutable. Methods set the receiver to the result and return
it, so operations can be chained and the receiver may alias the operands.
Operations that can fail (division, roots, parsing) return an error instead
of panicking:

	ErrNilObject        nil *Int or *Rat argument
	ErrDivideByZero     zero divisor or zero denominator
	ErrMalformedInput   string with a character outside the base's digit set
	ErrInvalidBase      base outside [2, 36]
	ErrInvalidRootIndex root index of zero
	ErrNegativeRoot     even root of a negative number

A failed operation leaves its receiver unchanged.

Int and Rat support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Scanner
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Integer roots use bisection by default; RootWith can select Newton's
iteration instead. Both return the floor of the exact root.
*/
package bignum
