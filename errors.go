package bignum

import "errors"

// Errors returned by functions in this package. Use errors.Is to test for
// them, as some are returned wrapped with extra context.
var (
	// ErrNilObject is returned when a required *Int or *Rat argument is nil.
	ErrNilObject = errors.New("bignum: nil object")

	// ErrDivideByZero is returned by any division or modulo with a zero divisor,
	// and by rational constructors given a zero denominator.
	ErrDivideByZero = errors.New("bignum: division by zero")

	// ErrMalformedInput is returned when a string contains a character that
	// is not a digit in the requested base, or contains no digits at all.
	ErrMalformedInput = errors.New("bignum: malformed input")

	ErrInvalidBase      = errors.New("bignum: base must be between 2 and 36")
	ErrInvalidRootIndex = errors.New("bignum: root index must be positive")
	ErrNegativeRoot     = errors.New("bignum: even root of negative number")
)
