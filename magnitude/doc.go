// Package magnitude provides unsigned arbitrary precision arithmetic on
// big-endian byte slices.
//
// A magnitude is a []byte holding a non-negative integer, most significant
// byte first. Leading zero bytes are allowed anywhere and never change the
// value, so every operation in this package is length agnostic:
//
//  00 00 01 01 ff ff == 01 01 ff ff
//
// The canonical form of a magnitude has no leading zero byte. The canonical
// form of zero is the empty slice; a single zero byte compares equal to it.
// Trim produces the canonical form.
//
// Ownership
//
// Functions without a suffix are pure: they never write to their arguments
// and always return a freshly allocated slice. Functions with the InPlace
// suffix write their result into the first argument, which the caller must
// exclusively own for the duration of the call. An InPlace function that
// fails leaves its target untouched.
//
// Multiplication
//
// Mul is schoolbook long multiplication over 16 bit lanes. Operands are
// padded on the left to an even number of bytes and split into lanes, least
// significant lane first:
//
//  | 00 00 | 01 01 | ff ff |   a (lanes 2, 1, 0)
//  |       | 00 ff | 0f ff |   b (lanes 1, 0)
//
// Output lane k accumulates a[i]*b[j] for every i+j == k plus the carry from
// lane k-1. Each product is at most 0xFFFF*0xFFFF and fits a uint32; sums are
// kept in a uint64 that must stay within MaxSafeInteger, otherwise Mul fails
// with OverflowError rather than truncate.
//
// Division
//
// DivMod is bit serial binary long division: one shift, compare and
// conditional subtract per bit of the numerator.
//
// Errors
//
// Failures are reported with the error classes FormatError,
// DivisionByZeroError and OverflowError. Use the class Has method to
// discriminate:
//
//  _, err := magnitude.Sub(a, b)
//  if magnitude.OverflowError.Has(err) {
//  	// a < b
//  }
package magnitude
