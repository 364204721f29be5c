package bignum

import "github.com/calebcase/bignum/magnitude"

// Error classes shared with package magnitude.
var (
	FormatError         = &magnitude.FormatError
	DivisionByZeroError = &magnitude.DivisionByZeroError
	OverflowError       = &magnitude.OverflowError
)
