// Package fri implements the Merkle commitment over blown-up evaluations,
// authentication paths, the fold engine, and the non-interactive FRI
// prover/verifier built on top of field, domain, ntt, poly, and merkle.
package fri

import (
	"math/big"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/domain"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/merkle"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/ntt"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

// BlowupFactor is FRI_BLOWUP_FACTOR (B) from §6: the oversampling ratio
// applied to a polynomial's coefficient length before committing.
const BlowupFactor = 8

// BlowupLog is log2(BlowupFactor).
const BlowupLog = 3

// Commitment wraps the Merkle root over a polynomial's blown-up evaluations.
type Commitment struct {
	Value merkle.Hash
}

// blownUpEvaluations extends p to length n*BlowupFactor and runs the
// forward NTT over that domain, producing the evaluation vector the
// commitment and authentication-path layers both hash.
func blownUpEvaluations(p *poly.Polynomial) ([]field.Element, error) {
	f := p.Field()
	n := uint64(p.Len())
	size := n * BlowupFactor

	evals := make([]field.Element, size)
	copy(evals, p.Coefficients())
	zero := f.Zero()
	for i := n; i < size; i++ {
		evals[i] = zero
	}

	d, err := domain.For(f, size)
	if err != nil {
		return nil, err
	}
	logN := d.PowerOfTwo
	ntt.Forward(evals, d.Generator, logN)
	return evals, nil
}

// leafPairHashes hashes the blown-up evaluation vector pairwise, per §4.E
// step 3: H(e_2i ‖ e_2i+1) using each element's canonical byte encoding.
func leafPairHashes(evals []field.Element) []merkle.Hash {
	pairs := make([]merkle.Hash, len(evals)/2)
	for i := 0; i < len(pairs); i++ {
		pairs[i] = merkle.HashLeafPair(evals[2*i].Bytes(), evals[2*i+1].Bytes())
	}
	return pairs
}

// Commit computes the Merkle commitment of p: extend to n*B, forward-NTT,
// pairwise-hash leaves, then build the tree up to its root (§4.E).
func Commit(p *poly.Polynomial) (Commitment, error) {
	evals, err := blownUpEvaluations(p)
	if err != nil {
		return Commitment{}, err
	}
	levels := merkle.BuildTree(leafPairHashes(evals))
	return Commitment{Value: merkle.Root(levels)}, nil
}

// InterpretAsFieldElement reduces the commitment's digest, read as a
// 256-bit big-endian integer, modulo f's modulus. This is the Fiat-Shamir
// rule from §3/§9: "modular reduction of a 256-bit big-endian integer".
func (c Commitment) InterpretAsFieldElement(f *field.Field) field.Element {
	return f.ElementFromBytes(c.Value.Bytes())
}

// InterpretAsRootOfUnity treats the low 64 bits of the commitment's digest
// as an exponent of a primitive domainSize-th root of unity (§4.H step 5,
// §9: "low 64 bits" — deliberately non-uniform, must not be "improved").
func (c Commitment) InterpretAsRootOfUnity(f *field.Field, domainSize uint64) (field.Element, error) {
	root, err := domain.RootWithOrder(f, domainSize)
	if err != nil {
		return field.Element{}, err
	}
	low8 := c.Value.Bytes()[24:32]
	exp := new(big.Int).SetBytes(low8)
	return root.Pow(exp), nil
}
