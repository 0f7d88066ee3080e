package fri

import (
	"fmt"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/merkle"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

// FriChallenge bundles one verifier query: the boundary evaluations and
// their authentication paths, the intermediate fold queries with matching
// paths, and the fold's commitment chain (§3).
type FriChallenge struct {
	PositiveEvaluation         field.Element
	NegativeEvaluation         field.Element
	PositiveAuthenticationPath *AuthenticationPath
	NegativeAuthenticationPath *AuthenticationPath
	AuthenticationPaths        []*AuthenticationPath
	FoldQueries                []field.Element
	CommitmentVector           []Commitment
}

// FriProof is (w_commitment, FriChallenge) (§3).
type FriProof struct {
	WCommitment Commitment
	Challenge   *FriChallenge
}

// VerificationResult is the verifier's verdict, never an exception (§7).
type VerificationResult int

const (
	InvalidProof VerificationResult = iota
	ValidProof
)

// IsValid reports whether r is ValidProof.
func (r VerificationResult) IsValid() bool { return r == ValidProof }

func (r VerificationResult) String() string {
	if r == ValidProof {
		return "ValidProof"
	}
	return "InvalidProof"
}

// EvaluationProof is the non-interactive FRI prover (§4.H). If r is nil,
// the evaluation point is drawn from f's own commitment by Fiat-Shamir.
//
// State machine: Initial -> Shifted -> Folded -> QueriedBoundary ->
// QueriedChain -> Packaged. Each transition is deterministic once its
// Fiat-Shamir challenge is drawn; there is no retry or backtracking.
func EvaluationProof(f *poly.Polynomial, r *field.Element) (*FriProof, error) {
	fld := f.Field()

	// Initial -> Shifted.
	point := r
	if point == nil {
		com, err := Commit(f)
		if err != nil {
			return nil, fmt.Errorf("fri: EvaluationProof: %w", err)
		}
		p := com.InterpretAsFieldElement(fld)
		point = &p
	}
	w := poly.ShiftPolynomial(f, *point)
	wCommitment, err := Commit(w)
	if err != nil {
		return nil, fmt.Errorf("fri: EvaluationProof: %w", err)
	}

	// Shifted -> Folded.
	commitmentVector, polynomialVector, err := FoldFull(w)
	if err != nil {
		return nil, fmt.Errorf("fri: EvaluationProof: %w", err)
	}

	domainSize := uint64(w.Len()) * uint64(BlowupFactor)
	lastCom := commitmentVector[len(commitmentVector)-1]
	randomRootOfUnity, err := lastCom.InterpretAsRootOfUnity(fld, domainSize)
	if err != nil {
		return nil, fmt.Errorf("fri: EvaluationProof: %w", err)
	}

	// Folded -> QueriedBoundary.
	negRoot := fld.Zero().Sub(randomRootOfUnity)
	positiveAuthenticationPath, err := AuthenticationPathFor(w, randomRootOfUnity)
	if err != nil {
		return nil, fmt.Errorf("fri: EvaluationProof: %w", err)
	}
	negativeAuthenticationPath, err := AuthenticationPathFor(w, negRoot)
	if err != nil {
		return nil, fmt.Errorf("fri: EvaluationProof: %w", err)
	}
	positiveEvaluation := w.Eval(randomRootOfUnity)
	negativeEvaluation := w.Eval(negRoot)

	// QueriedBoundary -> QueriedChain.
	authVec := make([]*AuthenticationPath, 0, len(polynomialVector)-1)
	queryVec := make([]field.Element, 0, len(polynomialVector)-1)

	target := randomRootOfUnity.Square()
	for i := 0; i < len(polynomialVector)-1; i++ {
		p := polynomialVector[i]
		negTarget := fld.Zero().Sub(target)
		path, err := AuthenticationPathFor(p, negTarget)
		if err != nil {
			return nil, fmt.Errorf("fri: EvaluationProof: %w", err)
		}
		authVec = append(authVec, path)
		queryVec = append(queryVec, p.Eval(negTarget))
		target = target.Square()
	}

	// QueriedChain -> Packaged.
	challenge := &FriChallenge{
		PositiveEvaluation:         positiveEvaluation,
		NegativeEvaluation:         negativeEvaluation,
		PositiveAuthenticationPath: positiveAuthenticationPath,
		NegativeAuthenticationPath: negativeAuthenticationPath,
		AuthenticationPaths:        authVec,
		FoldQueries:                queryVec,
		CommitmentVector:           commitmentVector,
	}

	return &FriProof{WCommitment: wCommitment, Challenge: challenge}, nil
}

// queryCheck algebraically re-folds the boundary and intermediate
// evaluations and hashes the resulting constant into a degenerate tree of
// B/2 identical leaves, matching how the prover commits the final
// length-1 polynomial (§4.H step 6, §9).
func queryCheck(f *field.Field, c *FriChallenge, topCommitment Commitment, randomRootOfUnity field.Element) merkle.Hash {
	two := f.NewElementFromUint64(2)
	twoInv, _ := two.Inv()

	target := randomRootOfUnity.Square()
	alpha := topCommitment.InterpretAsFieldElement(f)
	even := c.PositiveEvaluation.Add(c.NegativeEvaluation).Mul(twoInv)
	twoR, _ := two.Mul(randomRootOfUnity).Inv()
	odd := c.PositiveEvaluation.Sub(c.NegativeEvaluation).Mul(twoR)
	assembled := even.Add(alpha.Mul(odd))

	for i := 0; i < len(c.FoldQueries); i++ {
		alpha = c.CommitmentVector[i].InterpretAsFieldElement(f)
		even = assembled.Add(c.FoldQueries[i]).Mul(twoInv)
		twoTargetInv, _ := two.Mul(target).Inv()
		odd = assembled.Sub(c.FoldQueries[i]).Mul(twoTargetInv)
		assembled = even.Add(alpha.Mul(odd))
		target = target.Square()
	}

	leaves := make([]merkle.Hash, BlowupFactor/2)
	for i := range leaves {
		leaves[i] = merkle.HashLeafPair(assembled.Bytes(), assembled.Bytes())
	}
	levels := merkle.BuildTree(leaves)
	return merkle.Root(levels)
}

// Verify is the non-interactive FRI verifier (§4.H).
func (p *FriProof) Verify(fld *field.Field) VerificationResult {
	c := p.Challenge

	if !c.PositiveAuthenticationPath.ContainsEvaluation(c.PositiveEvaluation) {
		return InvalidProof
	}
	if !c.NegativeAuthenticationPath.ContainsEvaluation(c.NegativeEvaluation) {
		return InvalidProof
	}
	for i, path := range c.AuthenticationPaths {
		if !path.ContainsEvaluation(c.FoldQueries[i]) {
			return InvalidProof
		}
	}

	if p.WCommitment.Value != c.PositiveAuthenticationPath.DeriveRoot() {
		return InvalidProof
	}
	if p.WCommitment.Value != c.NegativeAuthenticationPath.DeriveRoot() {
		return InvalidProof
	}
	for i, path := range c.AuthenticationPaths {
		if path.DeriveRoot() != c.CommitmentVector[i].Value {
			return InvalidProof
		}
	}

	lastCom := c.CommitmentVector[len(c.CommitmentVector)-1]
	domainSize := uint64(1) << (uint32(len(c.CommitmentVector)) + BlowupLog)
	shouldBeRoot, err := lastCom.InterpretAsRootOfUnity(fld, domainSize)
	if err != nil {
		return InvalidProof
	}

	shouldBeConstant := queryCheck(fld, c, p.WCommitment, shouldBeRoot)
	if shouldBeConstant != lastCom.Value {
		return InvalidProof
	}

	return ValidProof
}
