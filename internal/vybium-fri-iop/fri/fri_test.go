package fri

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/domain"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

// blownUpDomainPoints returns the n*BlowupFactor domain points p's
// blown-up evaluations were taken at, in the same order AuthenticationPathFor
// expects to evaluate against.
func blownUpDomainPoints(p *poly.Polynomial) ([]field.Element, error) {
	f := p.Field()
	size := uint64(p.Len()) * BlowupFactor
	d, err := domain.For(f, size)
	if err != nil {
		return nil, err
	}
	points := make([]field.Element, size)
	current := f.One()
	for i := range points {
		points[i] = current
		current = current.Mul(d.Generator)
	}
	return points, nil
}

func fromU64(f *field.Field, vs ...uint64) *poly.Polynomial {
	elems := make([]field.Element, len(vs))
	for i, v := range vs {
		elems[i] = f.NewElementFromUint64(v)
	}
	return poly.FromCoefficients(f, elems)
}

func samplePolynomial() *poly.Polynomial {
	return fromU64(field.Goldilocks, 1, 5, 5, 1, 10, 9, 0, 88)
}

func TestAuthenticationPathRootMatchesCommitment(t *testing.T) {
	p := samplePolynomial()
	commitment, err := Commit(p)
	require.NoError(t, err)

	points, err := blownUpDomainPoints(p)
	require.NoError(t, err)

	for i := 0; i < len(points); i += 2 {
		path, err := AuthenticationPathFor(p, points[i])
		require.NoError(t, err)
		require.Equal(t, commitment.Value, path.DeriveRoot())
	}
}

func TestAuthenticationPathSiblingTamperChangesRoot(t *testing.T) {
	p := samplePolynomial()
	points, err := blownUpDomainPoints(p)
	require.NoError(t, err)
	path, err := AuthenticationPathFor(p, points[0])
	require.NoError(t, err)

	original := path.DeriveRoot()
	require.NotEmpty(t, path.Siblings)
	path.Siblings[0].Hash[0] ^= 0x01
	require.NotEqual(t, original, path.DeriveRoot())
}

func TestFoldFullLengths(t *testing.T) {
	p := samplePolynomial()
	commitmentVector, polynomialVector, err := FoldFull(p)
	require.NoError(t, err)

	logN := logLen(p.Len())
	require.Len(t, commitmentVector, logN)
	require.Len(t, polynomialVector, logN)
	require.Equal(t, 1, polynomialVector[len(polynomialVector)-1].Len())

	for i, pv := range polynomialVector {
		c, err := Commit(pv)
		require.NoError(t, err)
		require.Equal(t, c.Value, commitmentVector[i].Value)
	}
}

func TestEvaluationProofRoundTrip(t *testing.T) {
	// k starts at 2: a length-2 p shifts to a length-1 witness polynomial,
	// which fold_full cannot operate on (§3 requires n >= 2 going in).
	for k := 2; k <= 4; k++ {
		size := uint64(1) << k
		q := fromU64(field.Goldilocks, makeCoeffs(size)...)
		for _, r := range []int64{0, 1, 2, 7} {
			point := field.Goldilocks.NewElementFromInt64(r)
			proof, err := EvaluationProof(q, &point)
			require.NoError(t, err)
			require.Equal(t, ValidProof, proof.Verify(field.Goldilocks))
		}
	}
}

func makeCoeffs(n uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i + 1)
	}
	return out
}

// S1: p(x) = [1,5,5,1,10,9,0,88] over Goldilocks; evaluation_proof(p, None) verifies.
func TestScenarioS1(t *testing.T) {
	p := samplePolynomial()
	proof, err := EvaluationProof(p, nil)
	require.NoError(t, err)
	require.Equal(t, ValidProof, proof.Verify(field.Goldilocks))
}

// S2: flip positive_evaluation by adding 1 -> InvalidProof.
func TestScenarioS2(t *testing.T) {
	p := samplePolynomial()
	proof, err := EvaluationProof(p, nil)
	require.NoError(t, err)

	proof.Challenge.PositiveEvaluation = proof.Challenge.PositiveEvaluation.Add(field.Goldilocks.One())
	require.Equal(t, InvalidProof, proof.Verify(field.Goldilocks))
}

// S3: vanishing_polynomial(4) = X^4-1; long_division(p, X^4-1) satisfies
// p = q*(X^4-1)+rem with rem.len() <= 4.
func TestScenarioS3(t *testing.T) {
	p := samplePolynomial()
	v := poly.VanishingPolynomial(field.Goldilocks, 4)
	q, r := p.LongDivision(v)

	reconstructed, err := poly.Mul(q, v)
	require.NoError(t, err)
	reconstructed = poly.Add(reconstructed, r)
	for i := 0; i < p.Len(); i++ {
		require.True(t, reconstructed.CoefficientAt(i).Equal(p.CoefficientAt(i)))
	}
	require.LessOrEqual(t, r.Len(), 4)
}

// S6: evaluation_proof(p, Some(r)) where r is a root of p produces
// w = p/(x-r) and verifies.
func TestScenarioS6(t *testing.T) {
	f := field.Goldilocks
	r := f.NewElementFromInt64(3)
	// Build p(x) = (x - r) * k(x) so p(r) = 0.
	k := fromU64(f, 2, 4, 6, 8)
	xMinusR := poly.FromCoefficients(f, []field.Element{f.Zero().Sub(r), f.One()})
	p, err := poly.Mul(k, xMinusR)
	require.NoError(t, err)
	require.True(t, p.Eval(r).IsZero())

	proof, err := EvaluationProof(p, &r)
	require.NoError(t, err)
	require.Equal(t, ValidProof, proof.Verify(f))
}

func TestTamperedWCommitmentDetected(t *testing.T) {
	p := samplePolynomial()
	proof, err := EvaluationProof(p, nil)
	require.NoError(t, err)

	proof.WCommitment.Value[0] ^= 0x01
	require.Equal(t, InvalidProof, proof.Verify(field.Goldilocks))
}

func TestTamperedSiblingDetected(t *testing.T) {
	p := samplePolynomial()
	proof, err := EvaluationProof(p, nil)
	require.NoError(t, err)
	require.NotEmpty(t, proof.Challenge.PositiveAuthenticationPath.Siblings)

	proof.Challenge.PositiveAuthenticationPath.Siblings[0].Hash[0] ^= 0x01
	require.Equal(t, InvalidProof, proof.Verify(field.Goldilocks))
}
