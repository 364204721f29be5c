package bignum

import "github.com/calebcase/bignum/magnitude"

// sign returns -1, 0 or 1.
func (x *Int) sign() int {
	switch {
	case magnitude.IsZero(x.mag):
		return 0
	case x.neg:
		return -1
	}

	return 1
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	return newInt(magnitude.Clone(x.mag), !x.neg)
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	return newInt(magnitude.Clone(x.mag), false)
}

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
func (x *Int) Cmp(y *Int) int {
	xs, ys := x.sign(), y.sign()

	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs < 0:
		return -magnitude.Compare(x.mag, y.mag)
	}

	return magnitude.Compare(x.mag, y.mag)
}

// Eq returns true if x == y.
func (x *Int) Eq(y *Int) bool { return x.Cmp(y) == 0 }

// Lt returns true if x < y.
func (x *Int) Lt(y *Int) bool { return x.Cmp(y) < 0 }

// Lte returns true if x <= y.
func (x *Int) Lte(y *Int) bool { return x.Cmp(y) <= 0 }

// Gt returns true if x > y.
func (x *Int) Gt(y *Int) bool { return x.Cmp(y) > 0 }

// Gte returns true if x >= y.
func (x *Int) Gte(y *Int) bool { return x.Cmp(y) >= 0 }

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		return newInt(magnitude.Trim(magnitude.Add(x.mag, y.mag)), x.neg)
	}

	diff, flip := subAbs(x.mag, y.mag)

	return newInt(diff, x.neg != flip)
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// Mul returns x * y. It fails with OverflowError only for operands far beyond
// any realistic size.
func (x *Int) Mul(y *Int) (z *Int, err error) {
	prod, err := magnitude.Mul(x.mag, y.mag)
	if err != nil {
		return nil, err
	}

	return newInt(magnitude.Trim(prod), x.neg != y.neg), nil
}

// DivMod returns the truncated quotient and remainder of x / y. It fails with
// DivisionByZeroError if y is zero.
func (x *Int) DivMod(y *Int) (div, mod *Int, err error) {
	q, r, err := magnitude.DivMod(x.mag, y.mag)
	if err != nil {
		return nil, nil, err
	}

	return newInt(q, x.neg != y.neg), newInt(r, x.neg), nil
}

// Div returns the truncated quotient x / y.
func (x *Int) Div(y *Int) (z *Int, err error) {
	z, _, err = x.DivMod(y)

	return z, err
}

// Mod returns the remainder of truncated division x / y.
func (x *Int) Mod(y *Int) (z *Int, err error) {
	_, z, err = x.DivMod(y)

	return z, err
}

// ModAdd returns (x + y) mod |m| in the range [0, |m|).
func (x *Int) ModAdd(y, m *Int) (z *Int, err error) {
	if !x.neg && !y.neg {
		mod, err := magnitude.ModAdd(x.mag, y.mag, m.mag)
		if err != nil {
			return nil, err
		}

		return newInt(mod, false), nil
	}

	z, err = x.Add(y).Mod(m)
	if err != nil {
		return nil, err
	}

	if z.neg {
		z = z.Add(m.Abs())
	}

	return z, nil
}

// Lsh returns x shifted left by n bits.
func (x *Int) Lsh(n uint) *Int {
	return newInt(magnitude.Trim(magnitude.Lsh(x.mag, n)), x.neg)
}

// subAbs returns ||a| - |b|| and whether |a| < |b|.
func subAbs(a, b []byte) (diff []byte, flip bool) {
	if magnitude.Lt(a, b) {
		a, b = b, a
		flip = true
	}

	// a >= b
	diff, _ = magnitude.Sub(a, b)

	return magnitude.Trim(diff), flip
}
