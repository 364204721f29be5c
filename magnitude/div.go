package magnitude

// DivMod returns the quotient and remainder of num / den, both in canonical
// form. It fails with DivisionByZeroError if den is zero.
func DivMod(num, den []byte) (div, mod []byte, err error) {
	if BitLength(den) == 0 {
		return nil, nil, DivisionByZeroError.New("denominator is zero")
	}

	if Lt(num, den) {
		return []byte{}, Trim(num), nil
	}

	// Sized so that neither buffer grows: the remainder is always below
	// 2*den before the conditional subtraction.
	quo := make([]byte, len(num))
	rem := make([]byte, len(den)+1)

	for i := BitLength(num) - 1; i >= 0; i-- {
		shiftLeft(rem, 1)
		rem[len(rem)-1] |= bit(num, i)

		if Gte(rem, den) {
			sub(rem, den)
			quo[len(quo)-1-i/8] |= 1 << (i % 8)
		}
	}

	return Trim(quo), Trim(rem), nil
}

// Div returns num / den.
func Div(num, den []byte) (out []byte, err error) {
	out, _, err = DivMod(num, den)

	return out, err
}

// Mod returns num mod den.
func Mod(num, den []byte) (out []byte, err error) {
	_, out, err = DivMod(num, den)

	return out, err
}

// ModAdd returns (a + b) mod m. This is the reduction used when tweaking a
// fixed size secret by another and reducing by a group order.
func ModAdd(a, b, m []byte) (out []byte, err error) {
	return Mod(Add(a, b), m)
}

// bit returns bit i of buf, counting from the least significant bit.
func bit(buf []byte, i int) byte {
	return (buf[len(buf)-1-i/8] >> (i % 8)) & 1
}
