package magnitude

// Add returns a + b. The result has the length of the longer operand, plus
// one leading byte when the final carry is non-zero.
func Add(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}

	out := make([]byte, len(a))

	var carry uint16
	for i := 1; i <= len(a); i++ {
		sum := uint16(a[len(a)-i]) + carry
		if i <= len(b) {
			sum += uint16(b[len(b)-i])
		}

		out[len(out)-i] = byte(sum)
		carry = sum >> 8
	}

	if carry != 0 {
		out = append([]byte{byte(carry)}, out...)
	}

	return out
}

// AddInPlace stores a + b into a. It fails with OverflowError, leaving a
// unmodified, if the sum does not fit in len(a) bytes.
//
// The caller must not use a concurrently during the call.
func AddInPlace(a, b []byte) (err error) {
	sum := Add(a, b)

	if BitLength(sum) > 8*len(a) {
		return OverflowError.New("sum needs %d bits, target holds %d", BitLength(sum), 8*len(a))
	}

	copy(a, sum[len(sum)-len(a):])

	return nil
}

// Sub returns a - b. It fails with OverflowError if a < b. The result has the
// length of a; equal operands produce len(a) zero bytes.
func Sub(a, b []byte) (out []byte, err error) {
	if Lt(a, b) {
		return nil, OverflowError.New("subtraction underflow")
	}

	out = Clone(a)
	sub(out, b)

	return out, nil
}

// SubInPlace stores a - b into a. It fails with OverflowError, leaving a
// unmodified, if a < b.
//
// The caller must not use a concurrently during the call.
func SubInPlace(a, b []byte) (err error) {
	if Lt(a, b) {
		return OverflowError.New("subtraction underflow")
	}

	sub(a, b)

	return nil
}

// sub stores a - b into a. It requires a >= b; any bytes of b beyond len(a)
// are then zero.
func sub(a, b []byte) {
	var borrow int16
	for i := 1; i <= len(a); i++ {
		d := int16(a[len(a)-i]) - borrow
		if i <= len(b) {
			d -= int16(b[len(b)-i])
		}

		borrow = 0
		if d < 0 {
			d += 256
			borrow = 1
		}

		a[len(a)-i] = byte(d)
	}
}
