package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripBytes(t *testing.T) {
	cases := []struct {
		name string
		f    *Field
	}{
		{"Goldilocks", Goldilocks},
		{"Stark251", Stark251},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := int64(0); i < 50; i++ {
				e := tc.f.NewElementFromInt64(i * 7919)
				// Bytes is little-endian; ElementFromBytes reads big-endian.
				le := e.Bytes()
				be := make([]byte, len(le))
				for j, v := range le {
					be[len(le)-1-j] = v
				}
				decoded := tc.f.ElementFromBytes(be)
				require.True(t, e.Equal(decoded))
			}
		})
	}
}

func TestOneBytesLittleEndian(t *testing.T) {
	one := Goldilocks.One()
	b := one.Bytes()
	require.Equal(t, byte(1), b[0])
	for _, rest := range b[1:] {
		require.Equal(t, byte(0), rest)
	}
}

func TestArithmeticIdentities(t *testing.T) {
	f := Goldilocks
	a := f.NewElementFromInt64(17)
	b := f.NewElementFromInt64(23)

	require.True(t, a.Add(b).Sub(b).Equal(a))
	require.True(t, a.Mul(f.One()).Equal(a))
	require.True(t, a.Add(f.Zero()).Equal(a))
	require.True(t, a.Square().Equal(a.Mul(a)))

	inv, err := a.Inv()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).IsOne())

	_, err = f.Zero().Inv()
	require.Error(t, err)
}

func TestRootOfUnityOrder(t *testing.T) {
	for _, f := range []*Field{Goldilocks, Stark251} {
		root := f.RootOfUnity()
		order := new(big.Int).Lsh(big.NewInt(1), uint(f.S()))
		require.True(t, root.Pow(order).IsOne())

		half := new(big.Int).Rsh(order, 1)
		require.False(t, root.Pow(half).IsOne())
	}
}

func TestRandomElementInRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		e, err := Goldilocks.RandomElement()
		require.NoError(t, err)
		require.True(t, e.Big().Cmp(Goldilocks.Modulus()) < 0)
	}
}
