package magnitude

// Compare returns -1, 0 or 1 as the value of a is less than, equal to or
// greater than the value of b. Leading zero bytes are ignored.
func Compare(a, b []byte) int {
	long, short, sign := a, b, 1
	if len(b) > len(a) {
		long, short, sign = b, a, -1
	}

	diff := len(long) - len(short)

	// Bytes the shorter buffer doesn't have.
	for i := 0; i < diff; i++ {
		if long[i] != 0 {
			return sign
		}
	}

	for i := diff; i < len(long); i++ {
		x, y := long[i], short[i-diff]

		switch {
		case x > y:
			return sign
		case x < y:
			return -sign
		}
	}

	return 0
}

// Eq returns true if a == b.
func Eq(a, b []byte) bool { return Compare(a, b) == 0 }

// Lt returns true if a < b.
func Lt(a, b []byte) bool { return Compare(a, b) < 0 }

// Lte returns true if a <= b.
func Lte(a, b []byte) bool { return Compare(a, b) <= 0 }

// Gt returns true if a > b.
func Gt(a, b []byte) bool { return Compare(a, b) > 0 }

// Gte returns true if a >= b.
func Gte(a, b []byte) bool { return Compare(a, b) >= 0 }
