package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
)

func fromU64(f *field.Field, vs ...uint64) *Polynomial {
	elems := make([]field.Element, len(vs))
	for i, v := range vs {
		elems[i] = f.NewElementFromUint64(v)
	}
	return FromCoefficients(f, elems)
}

func TestEvalMatchesNaive(t *testing.T) {
	f := field.Goldilocks
	p := fromU64(f, 1, 5, 5, 1, 10, 9, 0, 88)
	for i := int64(0); i < 20; i++ {
		r := f.NewElementFromInt64(i)
		require.True(t, p.Eval(r).Equal(p.EvalNaive(r)))
	}
}

func TestAddSub(t *testing.T) {
	f := field.Goldilocks
	a := fromU64(f, 1, 2, 3, 4)
	b := fromU64(f, 10, 20, 30, 40, 50, 60, 70, 80)

	sum := Add(a, b)
	require.Equal(t, 8, sum.Len())

	back := Sub(sum, b)
	for i := 0; i < a.Len(); i++ {
		require.True(t, back.CoefficientAt(i).Equal(a.CoefficientAt(i)))
	}
}

func TestMulMatchesSchoolbook(t *testing.T) {
	f := field.Goldilocks
	a := fromU64(f, 1, 2, 3, 4)
	b := fromU64(f, 5, 6, 7, 8)

	got, err := Mul(a, b)
	require.NoError(t, err)

	want := schoolbookMul(f, a, b)
	for i := 0; i < len(want); i++ {
		require.True(t, got.CoefficientAt(i).Equal(want[i]), "index %d", i)
	}
}

func schoolbookMul(f *field.Field, a, b *Polynomial) []field.Element {
	out := make([]field.Element, a.Len()+b.Len())
	for i := range out {
		out[i] = f.Zero()
	}
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			out[i+j] = out[i+j].Add(a.CoefficientAt(i).Mul(b.CoefficientAt(j)))
		}
	}
	return out
}

func TestLongDivisionIdentity(t *testing.T) {
	f := field.Goldilocks
	p := fromU64(f, 1, 5, 5, 1, 10, 9, 0, 88)
	vanishing := VanishingPolynomial(f, 4)

	q, r := p.LongDivision(vanishing)

	reconstructed, err := Mul(q, vanishing)
	require.NoError(t, err)
	reconstructed = Add(reconstructed, r)

	for i := 0; i < p.Len(); i++ {
		require.True(t, reconstructed.CoefficientAt(i).Equal(p.CoefficientAt(i)), "index %d", i)
	}
	require.LessOrEqual(t, trimmedLen(r.coef), 4)
}

func TestShiftPolynomialIdentity(t *testing.T) {
	f := field.Goldilocks
	p := fromU64(f, 1, 5, 5, 1, 10, 9, 0, 88)
	r := f.NewElementFromInt64(7)

	w := ShiftPolynomial(p, r)

	one := f.One()
	xMinusR := FromCoefficients(f, []field.Element{f.Zero().Sub(r), one})
	reconstructed, err := Mul(w, xMinusR)
	require.NoError(t, err)
	reconstructed.AddConstant(p.Eval(r))

	for i := 0; i < p.Len(); i++ {
		require.True(t, reconstructed.CoefficientAt(i).Equal(p.CoefficientAt(i)), "index %d", i)
	}
}

func TestVanishingPolynomialRoots(t *testing.T) {
	f := field.Goldilocks
	v := VanishingPolynomial(f, 4)
	// X^4 - 1 is zero on the 4th roots of unity.
	root := f.RootOfUnity()
	for i := f.S(); i > 2; i-- {
		root = root.Square()
	}
	current := f.One()
	for i := 0; i < 4; i++ {
		require.True(t, v.Eval(current).IsZero())
		current = current.Mul(root)
	}
}
