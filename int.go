package bignum

import (
	"strconv"
	"strings"

	"github.com/calebcase/bignum/magnitude"
)

// MaxSafeInteger bounds the native integers accepted by FromInt64 and
// returned by Int64.
const MaxSafeInteger = int64(magnitude.MaxSafeInteger)

// ByteOrder tags the layout of a raw buffer passed to FromBytes.
type ByteOrder int

// Byte orders.
const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// Int is a signed integer.
type Int struct {
	mag []byte
	neg bool
}

// newInt wraps mag without copying and normalizes zero to positive.
func newInt(mag []byte, neg bool) *Int {
	return &Int{
		mag: mag,
		neg: neg && !magnitude.IsZero(mag),
	}
}

// FromBytes returns a positive Int holding a copy of buf.
func FromBytes(buf []byte, order ByteOrder) *Int {
	mag := magnitude.Clone(buf)

	if order == LittleEndian {
		for i, j := 0, len(mag)-1; i < j; i, j = i+1, j-1 {
			mag[i], mag[j] = mag[j], mag[i]
		}
	}

	return newInt(mag, false)
}

// FromHex parses hexadecimal text: an optional "-", an optional "0x" or "0X"
// prefix, then any number of hex digits. Odd length input is padded with a
// leading zero. Anything else fails with FormatError.
func FromHex(s string) (x *Int, err error) {
	digits := s

	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}

	mag, err := decodeHex(digits)
	if err != nil {
		return nil, err
	}

	return newInt(mag, neg), nil
}

// FromInt64 returns n as an Int. It fails with FormatError if n is outside
// ±MaxSafeInteger.
func FromInt64(n int64) (x *Int, err error) {
	if n > MaxSafeInteger || n < -MaxSafeInteger {
		return nil, FormatError.New("%d outside safe integer range", n)
	}

	return FromHex(strconv.FormatInt(n, 16))
}

// FromUTF returns a positive Int whose magnitude is the UTF-8 encoding of s.
func FromUTF(s string) *Int {
	return newInt([]byte(s), false)
}

// Bytes returns a copy of the magnitude.
func (x *Int) Bytes() []byte {
	return magnitude.Clone(x.mag)
}

// BitLength returns the number of significant bits in the magnitude.
func (x *Int) BitLength() int {
	return magnitude.BitLength(x.mag)
}

// ByteLength returns the length of the magnitude, including leading zero
// bytes.
func (x *Int) ByteLength() int {
	return len(x.mag)
}

// ZeroBits returns the number of leading zero bits in the magnitude.
func (x *Int) ZeroBits() int {
	return x.ByteLength()*8 - x.BitLength()
}

// Negative reports whether x is below zero.
func (x *Int) Negative() bool {
	return x.neg
}

// SetNegative sets the sign of x. Zero stays positive.
func (x *Int) SetNegative(neg bool) {
	x.neg = neg && !magnitude.IsZero(x.mag)
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return magnitude.IsZero(x.mag)
}

// Int64 returns x as a native integer. It fails with OverflowError if |x|
// exceeds MaxSafeInteger.
func (x *Int) Int64() (n int64, err error) {
	u, err := magnitude.Uint64(x.mag)
	if err != nil {
		return 0, err
	}

	if x.neg {
		return -int64(u), nil
	}

	return int64(u), nil
}
