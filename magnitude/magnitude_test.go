package magnitude

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func toBig(buf []byte) *big.Int {
	return new(big.Int).SetBytes(buf)
}

func TestUint64(t *testing.T) {
	for _, n := range []uint64{0, 1, 0xff, 0x100, 16908287, MaxSafeInteger} {
		buf := FromUint64(n)
		require.Equal(t, toBig(buf).Bytes(), buf)

		out, err := Uint64(buf)
		require.NoError(t, err)
		require.Equal(t, n, out)

		out, err = Uint64(append([]byte{0x00, 0x00}, buf...))
		require.NoError(t, err)
		require.Equal(t, n, out)
	}

	_, err := Uint64(FromUint64(MaxSafeInteger + 1))
	require.Error(t, err)
	require.True(t, OverflowError.Has(err))
}

func TestIsZero(t *testing.T) {
	require.True(t, IsZero(nil))
	require.True(t, IsZero([]byte{0x00, 0x00}))
	require.False(t, IsZero([]byte{0x00, 0x01}))
}

func TestProperties(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		condition := func(a, b []byte) bool {
			want := new(big.Int).Add(toBig(a), toBig(b))

			return toBig(Add(a, b)).Cmp(want) == 0
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("safe range add", func(t *testing.T) {
		condition := func(x, y uint32) bool {
			n, err := Uint64(Add(FromUint64(uint64(x)), FromUint64(uint64(y))))

			return err == nil && n == uint64(x)+uint64(y)
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("sub", func(t *testing.T) {
		condition := func(a, b []byte) bool {
			diff, err := Sub(a, b)
			if toBig(a).Cmp(toBig(b)) < 0 {
				return OverflowError.Has(err) && diff == nil
			}

			want := new(big.Int).Sub(toBig(a), toBig(b))

			return err == nil && len(diff) == len(a) && toBig(diff).Cmp(want) == 0
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("mul", func(t *testing.T) {
		condition := func(a, b []byte) bool {
			prod, err := Mul(a, b)
			if err != nil {
				t.Logf("operands: %s", spew.Sdump(a, b))

				return false
			}

			want := new(big.Int).Mul(toBig(a), toBig(b))

			return toBig(prod).Cmp(want) == 0
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("safe range mul", func(t *testing.T) {
		condition := func(x uint32, y uint16) bool {
			prod, err := Mul(FromUint64(uint64(x)), FromUint64(uint64(y)))
			if err != nil {
				return false
			}

			n, err := Uint64(prod)

			return err == nil && n == uint64(x)*uint64(y)
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("divmod", func(t *testing.T) {
		condition := func(a, b []byte) bool {
			div, mod, err := DivMod(a, b)
			if IsZero(b) {
				return DivisionByZeroError.Has(err)
			}

			if err != nil {
				return false
			}

			wantDiv, wantMod := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
			if toBig(div).Cmp(wantDiv) != 0 || toBig(mod).Cmp(wantMod) != 0 {
				t.Logf("operands: %s", spew.Sdump(a, b))

				return false
			}

			return Lt(mod, b)
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})

	t.Run("compare", func(t *testing.T) {
		condition := func(a, b []byte, pad uint8) bool {
			padded := append(make([]byte, pad%8), a...)

			return Compare(a, b) == toBig(a).Cmp(toBig(b)) &&
				Compare(padded, b) == Compare(a, b)
		}

		require.NoError(t, quick.Check(condition, &quick.Config{}))
	})
}
