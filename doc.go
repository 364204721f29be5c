// Package bignum provides a signed arbitrary precision integer built on the
// unsigned engine in package magnitude.
//
// An Int is a big-endian magnitude plus a sign flag. Values are constructed
// from raw bytes, hexadecimal text, native integers or UTF-8 text:
//
//  a, _ := bignum.FromHex("0x0101ffff")
//  b, _ := bignum.FromInt64(16715775)
//  sum := a.Add(b)          // 02010ffe
//  q, r, _ := a.DivMod(b)   // 01, 02f000
//
// Sign
//
// The magnitude engine never sees the sign. Operations on Int combine the
// signs, delegate to the unsigned operation and reapply the sign. Zero is
// always positive. Division truncates toward zero and the remainder takes the
// sign of the numerator.
//
// Text
//
// Hex renders the magnitude in lower case, two digits per byte, with no sign.
// String and MarshalText prefix negative values with "-", which FromHex
// accepts. Zero renders as "0".
//
// Binary
//
// MarshalBinary uses a zigzag layout: the magnitude shifted left one bit with
// the sign in the least significant bit. Zero is a single zero byte.
//
//  +1   -> 0b0000_0010
//  -1   -> 0b0000_0011
//  -127 -> 0b1111_1111
//
// Ownership
//
// An Int owns a private copy of its magnitude. Every operation returns a new
// Int; SetNegative is the only mutator.
package bignum
