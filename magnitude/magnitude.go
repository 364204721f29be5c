package magnitude

// MaxSafeInteger is the largest integer that converts losslessly between a
// magnitude and a native number (2^53 - 1).
const MaxSafeInteger uint64 = 1<<53 - 1

// Clone returns a copy of buf.
func Clone(buf []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)

	return out
}

// Trim returns a copy of buf in canonical form: no leading zero bytes, and the
// empty slice for zero.
func Trim(buf []byte) []byte {
	return Clone(trimmed(buf))
}

// trimmed is Trim without the copy. The result aliases buf.
func trimmed(buf []byte) []byte {
	n := (BitLength(buf) + 7) / 8

	return buf[len(buf)-n:]
}

// IsZero returns true if buf represents zero.
func IsZero(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}

	return true
}

// FromUint64 returns the canonical magnitude of n.
func FromUint64(n uint64) []byte {
	var buf [8]byte

	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}

	return Trim(buf[:])
}

// Uint64 returns the value of buf as a native number. It fails with
// OverflowError when the value exceeds MaxSafeInteger.
func Uint64(buf []byte) (n uint64, err error) {
	if BitLength(buf) > 53 {
		return 0, OverflowError.New("value exceeds safe integer range: %d bits", BitLength(buf))
	}

	for _, b := range trimmed(buf) {
		n = n<<8 | uint64(b)
	}

	return n, nil
}
