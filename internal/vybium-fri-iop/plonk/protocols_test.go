package plonk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/domain"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/fri"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/ntt"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

func fromU64(f *field.Field, vs ...uint64) *poly.Polynomial {
	elems := make([]field.Element, len(vs))
	for i, v := range vs {
		elems[i] = f.NewElementFromUint64(v)
	}
	return poly.FromCoefficients(f, elems)
}

func verify(t *testing.T, e Evaluation) {
	t.Helper()
	require.Equal(t, fri.ValidProof, e.Proof.Verify(field.Goldilocks))
}

func TestZeroTest(t *testing.T) {
	f := field.Goldilocks
	vanishing := poly.VanishingPolynomial(f, 4)
	k := fromU64(f, 2, 3, 5, 7)
	p, err := poly.Mul(k, vanishing)
	require.NoError(t, err)

	proof, err := ZeroTest(p, vanishing)
	require.NoError(t, err)
	verify(t, proof.FEval)
	verify(t, proof.QEval)
}

func TestProductCheck(t *testing.T) {
	f := field.Goldilocks
	// f(w^i) values chosen so their running product ends at 1: three free
	// values and a fourth forced to their combined inverse.
	a := f.NewElementFromInt64(3)
	b := f.NewElementFromInt64(5)
	c := f.NewElementFromInt64(7)
	prod := a.Mul(b).Mul(c)
	inv, err := prod.Inv()
	require.NoError(t, err)

	// Interpolate the four values over the 4-point subgroup so they are
	// f's evaluations there, not its coefficients.
	values := []field.Element{a, b, c, inv}
	omega, err := domain.RootWithOrder(f, 4)
	require.NoError(t, err)
	ntt.Inverse(values, omega, 2)

	p := poly.FromCoefficients(f, values)
	proof, err := ProductCheck(p)
	require.NoError(t, err)

	require.True(t, proof.TEnd.Value.IsOne())
	verify(t, proof.TEnd)
	verify(t, proof.TR)
	verify(t, proof.TWR)
	verify(t, proof.QR)
	verify(t, proof.FWR)
}

func TestProductCheckRational(t *testing.T) {
	f := field.Goldilocks
	num := fromU64(f, 6, 10, 14, 4)
	den := fromU64(f, 2, 5, 7, 2)

	proof, err := ProductCheckRational(num, den)
	require.NoError(t, err)

	require.True(t, proof.TEnd.Value.IsOne())
	verify(t, proof.TEnd)
	verify(t, proof.QR)
}

func TestPermutationCheck(t *testing.T) {
	f := field.Goldilocks
	// g's coefficients are f's rotated by one place, so over the 4-point
	// subgroup g(omega^i) = omega^i * f(omega^i): not a permutation of f's
	// values, so the running product need not end at 1. Only the FRI
	// proofs are checked here.
	fPoly := fromU64(f, 10, 20, 30, 40)
	gPoly := fromU64(f, 40, 10, 20, 30)

	proof, err := PermutationCheck(fPoly, gPoly)
	require.NoError(t, err)
	verify(t, proof.TR)
	verify(t, proof.QR)
}
