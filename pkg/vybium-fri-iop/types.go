package vybiumfriiop

import (
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/fri"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/merkle"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/plonk"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

// FieldElement is an element of a Field.
type FieldElement = field.Element

// Field is a prime field instance: its modulus, 2-adicity, and root of
// unity.
type Field = field.Field

// Goldilocks is the 64-bit field p = 2^64 - 2^32 + 1.
var Goldilocks = field.Goldilocks

// Stark251 is the ~251-bit field used by the PLONK application layer.
var Stark251 = field.Stark251

// Polynomial is a coefficient-vector polynomial over a Field.
type Polynomial = poly.Polynomial

// Commitment is a BLAKE3 Merkle commitment over a polynomial's blown-up
// evaluations.
type Commitment = fri.Commitment

// AuthenticationPath proves membership of a leaf pair in a commitment's
// tree.
type AuthenticationPath = fri.AuthenticationPath

// FriChallenge bundles one verifier query's evaluations, authentication
// paths, and commitment chain.
type FriChallenge = fri.FriChallenge

// FriProof is a non-interactive FRI evaluation proof.
type FriProof = fri.FriProof

// VerificationResult is a FRI verifier's verdict.
type VerificationResult = fri.VerificationResult

const (
	ValidProof   = fri.ValidProof
	InvalidProof = fri.InvalidProof
)

// Evaluation pairs a claimed field value with the FRI proof backing it.
type Evaluation = plonk.Evaluation

// ZeroTestProof is a zero_test result.
type ZeroTestProof = plonk.ZeroTestProof

// ProductCheckProof is a product_check result.
type ProductCheckProof = plonk.ProductCheckProof

// RationalProductCheckProof is a product_check_rational result.
type RationalProductCheckProof = plonk.RationalProductCheckProof

// PermutationCheckProof is a permutation_check result.
type PermutationCheckProof = plonk.PermutationCheckProof

// PrescribedPermutationCheckProof is a prescribed_permutation_check result.
type PrescribedPermutationCheckProof = plonk.PrescribedPermutationCheckProof

// PolynomialFromUint64 builds a Polynomial over f from a slice of unsigned
// coefficients, the common case for tests and examples.
func PolynomialFromUint64(f *Field, coefficients []uint64) *Polynomial {
	elems := make([]FieldElement, len(coefficients))
	for i, c := range coefficients {
		elems[i] = f.NewElementFromUint64(c)
	}
	return poly.FromCoefficients(f, elems)
}

// PolynomialFromElements builds a Polynomial over f directly from field
// elements, for callers holding values outside the uint64 range.
func PolynomialFromElements(f *Field, coefficients []FieldElement) *Polynomial {
	return poly.FromCoefficients(f, coefficients)
}

// Mul multiplies two polynomials via the NTT.
func Mul(a, b *Polynomial) (*Polynomial, error) {
	return poly.Mul(a, b)
}

// DivideFFT divides p by divisor via evaluation-domain division. divisor's
// roots must not coincide with the transform domain (DivideFFT panics if
// they do); a generic single-point divisor such as (X - r) for random r is
// safe, a vanishing polynomial generally is not — use LongDivision for that.
func DivideFFT(p, divisor *Polynomial) (*Polynomial, error) {
	return poly.DivideFFT(p, divisor)
}

// Commit computes the Merkle commitment of p.
func Commit(p *Polynomial) (Commitment, error) {
	return fri.Commit(p)
}

// EvaluationProof runs the non-interactive FRI prover on f. If r is nil,
// the evaluation point is drawn from f's own commitment.
func EvaluationProof(f *Polynomial, r *FieldElement) (*FriProof, error) {
	return fri.EvaluationProof(f, r)
}

// ZeroTest proves p vanishes on the subgroup vanishing annihilates.
func ZeroTest(p, vanishing *Polynomial) (*ZeroTestProof, error) {
	return plonk.ZeroTest(p, vanishing)
}

// ProductCheck proves the running product of f over its evaluation domain
// equals 1.
func ProductCheck(f *Polynomial) (*ProductCheckProof, error) {
	return plonk.ProductCheck(f)
}

// ProductCheckRational proves the running product of f/g over f's
// evaluation domain equals 1.
func ProductCheckRational(f, g *Polynomial) (*RationalProductCheckProof, error) {
	return plonk.ProductCheckRational(f, g)
}

// PermutationCheck proves f's values are a permutation of g's.
func PermutationCheck(f, g *Polynomial) (*PermutationCheckProof, error) {
	return plonk.PermutationCheck(f, g)
}

// PrescribedPermutationCheck proves f is g composed with the prescribed
// permutation w.
func PrescribedPermutationCheck(f, g, w *Polynomial) (*PrescribedPermutationCheckProof, error) {
	return plonk.PrescribedPermutationCheck(f, g, w)
}

// VanishingPolynomial returns X^n - 1 over f, padded to the next power of
// two.
func VanishingPolynomial(f *Field, n uint64) *Polynomial {
	return poly.VanishingPolynomial(f, n)
}

// AuthenticationHash is an alias of merkle.Hash, the 32-byte BLAKE3 digest
// type of Commitment.Value and of authentication-path sibling hashes.
type AuthenticationHash = merkle.Hash
