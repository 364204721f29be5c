package magnitude

import "math/bits"

// MaxShift is the largest shift accepted by a single LeftShift or
// RightShiftInPlace call.
const MaxShift = 24

// BitLength returns the 1-based position of the highest set bit, or 0 if buf
// is empty or all zero.
func BitLength(buf []byte) int {
	for i, b := range buf {
		if b != 0 {
			return (len(buf)-i-1)*8 + bits.Len8(b)
		}
	}

	return 0
}

// LeftShiftInPlace shifts buf left by n bits, n <= MaxShift, and returns the
// bits shifted out of the most significant byte.
//
// The caller must not use buf concurrently during the call.
func LeftShiftInPlace(buf []byte, n uint) (overflow uint32, err error) {
	if n > MaxShift {
		return 0, Error.New("shift out of range: %d > %d", n, MaxShift)
	}

	return shiftLeft(buf, n), nil
}

// LeftShift returns buf shifted left by n bits, n <= MaxShift. The result is
// grown by the fewest leading bytes that hold the overflow.
func LeftShift(buf []byte, n uint) (out []byte, err error) {
	out = Clone(buf)

	overflow, err := LeftShiftInPlace(out, n)
	if err != nil {
		return nil, err
	}

	if overflow == 0 {
		return out, nil
	}

	extra := make([]byte, (bits.Len32(overflow)+7)/8)
	for i := len(extra) - 1; i >= 0; i-- {
		extra[i] = byte(overflow)
		overflow >>= 8
	}

	return append(extra, out...), nil
}

// Lsh returns buf shifted left by any number of bits, composed from LeftShift
// steps of at most MaxShift bits.
func Lsh(buf []byte, n uint) []byte {
	out := Clone(buf)

	for n > 0 {
		step := n
		if step > MaxShift {
			step = MaxShift
		}

		// step is within range.
		out, _ = LeftShift(out, step)
		n -= step
	}

	return out
}

// RightShiftInPlace shifts buf right by n bits, n <= MaxShift, and returns the
// bits shifted out of the least significant byte.
//
// The caller must not use buf concurrently during the call.
func RightShiftInPlace(buf []byte, n uint) (underflow uint32, err error) {
	if n > MaxShift {
		return 0, Error.New("shift out of range: %d > %d", n, MaxShift)
	}

	var rem uint32
	for i := range buf {
		v := rem<<8 | uint32(buf[i])
		buf[i] = byte(v >> n)
		rem = v & (1<<n - 1)
	}

	return rem, nil
}

func shiftLeft(buf []byte, n uint) uint32 {
	var carry uint32
	for i := len(buf) - 1; i >= 0; i-- {
		v := uint32(buf[i])<<n | carry
		buf[i] = byte(v)
		carry = v >> 8
	}

	return carry
}
