package magnitude

import "github.com/zeebo/errs"

// Error classes.
var (
	// Error is the class for misuse of the engine (e.g. a shift count out of
	// range).
	Error = errs.Class("magnitude")

	// FormatError is the class for invalid encodings and out of range
	// numeric literals.
	FormatError = errs.Class("format")

	// DivisionByZeroError is the class for a zero denominator.
	DivisionByZeroError = errs.Class("division by zero")

	// OverflowError is the class for results that cannot be represented:
	// negative subtraction results and multiplication accumulator overflow.
	OverflowError = errs.Class("overflow")
)
