package magnitude

// Mul returns a * b using schoolbook multiplication over 16 bit lanes. The
// result is len(a) + len(b) bytes, each operand first rounded up to an even
// length. It fails with OverflowError if a lane accumulator exceeds
// MaxSafeInteger, which takes operands of several megabytes.
func Mul(a, b []byte) (out []byte, err error) {
	al, bl := lanes(a), lanes(b)

	n := len(al) + len(bl)
	out = make([]byte, 2*n)

	var carry uint64
	for k := 0; k < n; k++ {
		sum := carry

		lo := 0
		if k >= len(bl) {
			lo = k - len(bl) + 1
		}

		for i := lo; i <= k && i < len(al); i++ {
			p := uint32(al[i]) * uint32(bl[k-i])

			sum += uint64(p)
			if sum > MaxSafeInteger {
				return nil, OverflowError.New("multiplication accumulator exceeds safe integer range at lane %d", k)
			}
		}

		out[2*(n-k)-1] = byte(sum)
		out[2*(n-k)-2] = byte(sum >> 8)
		carry = sum >> 16
	}

	if carry != 0 {
		return nil, OverflowError.New("multiplication residual carry: %d", carry)
	}

	return out, nil
}

// lanes splits buf into 16 bit lanes, least significant first.
func lanes(buf []byte) []uint16 {
	out := make([]uint16, (len(buf)+1)/2)

	for k := range out {
		i := len(buf) - 2*k - 1

		v := uint16(buf[i])
		if i > 0 {
			v |= uint16(buf[i-1]) << 8
		}

		out[k] = v
	}

	return out
}
