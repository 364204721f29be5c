// Package commands defines the bignum CLI.
//
// Operands are signed hex as accepted by bignum.FromHex ("-0x1f", "ff0fff")
// and results are printed with Int.String. Negative operands go after "--":
//
//  bignum divmod -- -0101ffff 07
//
// Commands
//
//   - add, sub, mul   Arithmetic on two operands
//   - divmod          Truncated quotient and remainder
//   - modadd          (a + b) mod m
//   - cmp             Three-way comparison (-1, 0, 1)
//   - lsh             Left shift by a bit count
//   - bitlen          Bit length, byte length and leading zero bits
//   - from-int        Render a decimal integer in the safe range
//   - from-utf        Render UTF-8 text as a magnitude
//   - to-utf          Decode a magnitude as UTF-8 text
//   - from-bytes      Reinterpret raw hex bytes, optionally little-endian
//
// The --debug flag dumps parsed operands and results to stderr.
package commands
