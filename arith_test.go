package bignum

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func fromBig(x *big.Int) *Int {
	z := FromBytes(x.Bytes(), BigEndian)
	z.SetNegative(x.Sign() < 0)

	return z
}

func toBig(x *Int) *big.Int {
	z := new(big.Int).SetBytes(x.Bytes())
	if x.Negative() {
		z.Neg(z)
	}

	return z
}

func TestArithmeticProperties(t *testing.T) {
	t.Run("add sub", func(t *testing.T) {
		condition := func(a, b int64) bool {
			x, y := fromBig(big.NewInt(a)), fromBig(big.NewInt(b))

			sum := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
			diff := new(big.Int).Sub(big.NewInt(a), big.NewInt(b))

			return toBig(x.Add(y)).Cmp(sum) == 0 && toBig(x.Sub(y)).Cmp(diff) == 0
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("mul", func(t *testing.T) {
		condition := func(a, b int64) bool {
			x, y := fromBig(big.NewInt(a)), fromBig(big.NewInt(b))

			prod, err := x.Mul(y)
			if err != nil {
				return false
			}

			return toBig(prod).Cmp(new(big.Int).Mul(big.NewInt(a), big.NewInt(b))) == 0
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("divmod", func(t *testing.T) {
		condition := func(a, b int64) bool {
			if b == 0 {
				return true
			}

			x, y := fromBig(big.NewInt(a)), fromBig(big.NewInt(b))

			div, mod, err := x.DivMod(y)
			if err != nil {
				return false
			}

			wantDiv, wantMod := new(big.Int).QuoRem(big.NewInt(a), big.NewInt(b), new(big.Int))
			if toBig(div).Cmp(wantDiv) != 0 || toBig(mod).Cmp(wantMod) != 0 {
				t.Logf("%d / %d: %s", a, b, spew.Sdump(div, mod))

				return false
			}

			return true
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("cmp", func(t *testing.T) {
		condition := func(a, b int64) bool {
			x, y := fromBig(big.NewInt(a)), fromBig(big.NewInt(b))

			return x.Cmp(y) == big.NewInt(a).Cmp(big.NewInt(b))
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})
}

func TestSignRules(t *testing.T) {
	pos := mustHex(t, "05")
	neg := mustHex(t, "-05")

	t.Run("cancel to positive zero", func(t *testing.T) {
		z := pos.Add(neg)
		require.True(t, z.IsZero())
		require.False(t, z.Negative())
		require.Equal(t, "0", z.String())

		z = neg.Sub(neg)
		require.False(t, z.Negative())
	})

	t.Run("zero product is positive", func(t *testing.T) {
		z, err := neg.Mul(mustHex(t, "00"))
		require.NoError(t, err)
		require.False(t, z.Negative())
	})

	t.Run("neg abs", func(t *testing.T) {
		require.True(t, pos.Neg().Eq(neg))
		require.True(t, neg.Abs().Eq(pos))
		require.False(t, mustHex(t, "0").Neg().Negative())
	})

	t.Run("relational", func(t *testing.T) {
		require.True(t, neg.Lt(pos))
		require.True(t, neg.Lte(neg))
		require.True(t, pos.Gt(neg))
		require.True(t, pos.Gte(pos))
		require.True(t, mustHex(t, "-06").Lt(neg))
		require.True(t, mustHex(t, "-0").Eq(mustHex(t, "0000")))
	})

	t.Run("operands untouched", func(t *testing.T) {
		_ = pos.Add(neg)
		_, _, _ = neg.DivMod(pos)
		require.Equal(t, "05", pos.String())
		require.Equal(t, "-05", neg.String())
	})
}

func TestDivisionByZero(t *testing.T) {
	x := mustHex(t, "01")

	for _, zero := range []*Int{mustHex(t, ""), mustHex(t, "00"), FromBytes(nil, BigEndian)} {
		_, _, err := x.DivMod(zero)
		require.Error(t, err)
		require.True(t, DivisionByZeroError.Has(err))

		_, err = x.Div(zero)
		require.True(t, DivisionByZeroError.Has(err))

		_, err = x.Mod(zero)
		require.True(t, DivisionByZeroError.Has(err))

		_, err = x.ModAdd(x, zero)
		require.True(t, DivisionByZeroError.Has(err))
	}
}

func TestModAdd(t *testing.T) {
	m := mustHex(t, "0x0d")

	type TC struct {
		a, b, want string
	}

	tcs := []TC{
		{a: "01", b: "02", want: "03"},
		{a: "0c", b: "02", want: "01"},
		{a: "-01", b: "00", want: "0c"},
		{a: "-0d", b: "00", want: "0"},
		{a: "-20", b: "01", want: "08"},
	}

	for _, tc := range tcs {
		z, err := mustHex(t, tc.a).ModAdd(mustHex(t, tc.b), m)
		require.NoError(t, err)
		require.Equal(t, tc.want, z.String(), "%s + %s", tc.a, tc.b)

		z, err = mustHex(t, tc.a).ModAdd(mustHex(t, tc.b), m.Neg())
		require.NoError(t, err)
		require.Equal(t, tc.want, z.String(), "%s + %s mod -m", tc.a, tc.b)
	}
}

func TestLsh(t *testing.T) {
	x := mustHex(t, "-0101ffff")

	z := x.Lsh(40)
	require.Zero(t, new(big.Int).Lsh(toBig(x), 40).Cmp(toBig(z)))
	require.True(t, z.Negative())
	require.Equal(t, "-0101ffff", x.String())
}
