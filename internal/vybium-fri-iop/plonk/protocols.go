// Package plonk implements the five PLONK-style sub-protocols that reduce
// to FRI evaluation proofs: zero_test, product_check, its rational
// variant, permutation_check, and prescribed_permutation_check. Each is a
// thin consumer of poly.Polynomial and fri.FriProof — no circuit or gate
// layer, no universal setup.
package plonk

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/domain"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/fri"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/ntt"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

// secondChallenge derives the prescribed-permutation check's second
// Fiat-Shamir scalar s from r and g's commitment, keeping it independent of
// the BLAKE3 commitment path: a domain-separated SHA3-256 digest of the two
// reduced mod p.
func secondChallenge(fld *field.Field, r field.Element, gCommitment fri.Commitment) field.Element {
	h := sha3.New256()
	h.Write([]byte("vybium-fri-iop/plonk/prescribed-permutation-check/s"))
	h.Write(r.Bytes())
	h.Write(gCommitment.Value.Bytes())
	return fld.ElementFromBytes(h.Sum(nil))
}

func bigUint64(v uint64) *big.Int { return new(big.Int).SetUint64(v) }

// Evaluation pairs a claimed field value with the FRI proof backing it.
type Evaluation struct {
	Value field.Element
	Proof *fri.FriProof
}

func evalAt(p *poly.Polynomial, point field.Element) (Evaluation, error) {
	proof, err := fri.EvaluationProof(p, &point)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{Value: p.Eval(point), Proof: proof}, nil
}

// ZeroTestProof proves p vanishes on the subgroup vanishing annihilates:
// p = q*vanishing exactly, witnessed by FRI evaluation proofs of both at
// a commitment-derived point r.
type ZeroTestProof struct {
	FEval Evaluation
	QEval Evaluation
}

// ZeroTest divides p by vanishing and FRI-proves both polynomials at a
// point drawn from the quotient's own commitment.
func ZeroTest(p, vanishing *poly.Polynomial) (*ZeroTestProof, error) {
	q, _ := p.LongDivision(vanishing)

	qCommitment, err := fri.Commit(q)
	if err != nil {
		return nil, fmt.Errorf("plonk: ZeroTest: %w", err)
	}
	r := qCommitment.InterpretAsFieldElement(p.Field())

	fEval, err := evalAt(p, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: ZeroTest: %w", err)
	}
	qEval, err := evalAt(q, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: ZeroTest: %w", err)
	}

	return &ZeroTestProof{FEval: fEval, QEval: qEval}, nil
}

// evaluationDomain returns the size-aligned root of unity and log-size for
// f's coefficient vector, the shared setup every running-product protocol
// below evaluates f (and its partners) over.
func evaluationDomain(f *poly.Polynomial) (field.Element, uint32, uint64, error) {
	size := uint64(1) << f.LogN()
	omega, err := domain.RootWithOrder(f.Field(), size)
	if err != nil {
		return field.Element{}, 0, 0, err
	}
	return omega, f.LogN(), size, nil
}

// runningProductPolynomial builds the interpolated t(x) from a sequence of
// per-point ratios (already evaluated in the NTT domain), returning both
// t(x) in coefficient form and its last evaluation t(omega^(size-1)).
func runningProductPolynomial(fld *field.Field, ratios []field.Element, omega field.Element, logN uint32) (*poly.Polynomial, field.Element) {
	tEvals := make([]field.Element, len(ratios))
	target := fld.One()
	for i, ratio := range ratios {
		target = target.Mul(ratio)
		tEvals[i] = target
	}
	tEnd := tEvals[len(tEvals)-1]

	ntt.Inverse(tEvals, omega, logN)
	return poly.FromCoefficients(fld, tEvals), tEnd
}

// ProductCheckProof proves that the series product of f over its
// evaluation domain is 1.
type ProductCheckProof struct {
	TEnd Evaluation
	TR   Evaluation
	TWR  Evaluation
	QR   Evaluation
	FWR  Evaluation
}

// ProductCheck proves the running product of f's values over its
// evaluation subgroup equals 1 at the subgroup's last point.
func ProductCheck(f *poly.Polynomial) (*ProductCheckProof, error) {
	fld := f.Field()
	omega, logN, size, err := evaluationDomain(f)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheck: %w", err)
	}

	evals := f.Coefficients()
	ntt.Forward(evals, omega, logN)

	tX, tEnd := runningProductPolynomial(fld, evals, omega, logN)

	omegaLast := omega.Pow(bigUint64(size - 1))
	tEndProof, err := fri.EvaluationProof(tX, &omegaLast)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheck: %w", err)
	}
	tEndEval := Evaluation{Value: tEnd, Proof: tEndProof}

	tCommitment, err := fri.Commit(tX)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheck: %w", err)
	}
	r := tCommitment.InterpretAsFieldElement(fld)
	omegaR := omega.Mul(r)

	tR, err := evalAt(tX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheck: %w", err)
	}
	tWR, err := evalAt(tX, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheck: %w", err)
	}

	vanishing := poly.VanishingPolynomial(fld, size)
	qX, _ := tX.LongDivision(vanishing)
	qR, err := evalAt(qX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheck: %w", err)
	}

	fWR, err := evalAt(f, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheck: %w", err)
	}

	return &ProductCheckProof{TEnd: tEndEval, TR: tR, TWR: tWR, QR: qR, FWR: fWR}, nil
}

// RationalProductCheckProof proves the series product of f/g over the
// evaluation domain is 1.
type RationalProductCheckProof struct {
	TEnd Evaluation
	TR   Evaluation
	TWR  Evaluation
	QR   Evaluation
	GWR  Evaluation
	FWR  Evaluation
}

// ProductCheckRational proves the running product of f(w^i)/g(w^i) over
// f's evaluation subgroup equals 1 at the subgroup's last point.
func ProductCheckRational(f, g *poly.Polynomial) (*RationalProductCheckProof, error) {
	fld := f.Field()
	omega, logN, size, err := evaluationDomain(f)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}

	numerator := f.Coefficients()
	denominator := g.Coefficients()
	ntt.Forward(numerator, omega, logN)
	ntt.Forward(denominator, omega, logN)

	ratios := make([]field.Element, len(numerator))
	for i := range ratios {
		inv, err := denominator[i].Inv()
		if err != nil {
			panic(fmt.Sprintf("plonk: ProductCheckRational: denominator vanishes at domain point %d: %v", i, err))
		}
		ratios[i] = numerator[i].Mul(inv)
	}

	tX, tEnd := runningProductPolynomial(fld, ratios, omega, logN)

	omegaLast := omega.Pow(bigUint64(size - 1))
	tEndProof, err := fri.EvaluationProof(tX, &omegaLast)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}
	tEndEval := Evaluation{Value: tEnd, Proof: tEndProof}

	tCommitment, err := fri.Commit(tX)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}
	r := tCommitment.InterpretAsFieldElement(fld)
	omegaR := omega.Mul(r)

	tR, err := evalAt(tX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}
	tWR, err := evalAt(tX, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}

	vanishing := poly.VanishingPolynomial(fld, size)
	qX, _ := tX.LongDivision(vanishing)
	qR, err := evalAt(qX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}

	gWR, err := evalAt(g, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}
	fWR, err := evalAt(f, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: ProductCheckRational: %w", err)
	}

	return &RationalProductCheckProof{TEnd: tEndEval, TR: tR, TWR: tWR, QR: qR, GWR: gWR, FWR: fWR}, nil
}

// PermutationCheckProof proves f's values over its evaluation domain are a
// permutation of g's.
type PermutationCheckProof struct {
	FCommitment fri.Commitment
	TEnd        Evaluation
	TR          Evaluation
	TWR         Evaluation
	QR          Evaluation
	GWR         Evaluation
	FWR         Evaluation
}

// PermutationCheck proves f(omega^i) is a permutation of g(omega^i) via
// the running product of (r-f(omega^i))/(r-g(omega^i)), r drawn from f's
// commitment.
func PermutationCheck(f, g *poly.Polynomial) (*PermutationCheckProof, error) {
	fld := f.Field()
	fCommitment, err := fri.Commit(f)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}
	r := fCommitment.InterpretAsFieldElement(fld)

	omega, logN, size, err := evaluationDomain(f)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}

	fEvals := f.Coefficients()
	gEvals := g.Coefficients()
	ntt.Forward(fEvals, omega, logN)
	ntt.Forward(gEvals, omega, logN)

	ratios := make([]field.Element, len(fEvals))
	for i := range ratios {
		denom, err := r.Sub(gEvals[i]).Inv()
		if err != nil {
			panic(fmt.Sprintf("plonk: PermutationCheck: r collides with g at domain point %d: %v", i, err))
		}
		ratios[i] = r.Sub(fEvals[i]).Mul(denom)
	}

	tX, tEnd := runningProductPolynomial(fld, ratios, omega, logN)

	omegaLast := omega.Pow(bigUint64(size - 1))
	tEndProof, err := fri.EvaluationProof(tX, &omegaLast)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}
	tEndEval := Evaluation{Value: tEnd, Proof: tEndProof}

	tR, err := evalAt(tX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}
	omegaR := omega.Mul(r)
	tWR, err := evalAt(tX, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}

	vanishing := poly.VanishingPolynomial(fld, size)
	qX, _ := tX.LongDivision(vanishing)
	qR, err := evalAt(qX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}

	gWR, err := evalAt(g, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}
	fWR, err := evalAt(f, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: PermutationCheck: %w", err)
	}

	return &PermutationCheckProof{
		FCommitment: fCommitment,
		TEnd:        tEndEval,
		TR:          tR,
		TWR:         tWR,
		QR:          qR,
		GWR:         gWR,
		FWR:         fWR,
	}, nil
}

// PrescribedPermutationCheckProof proves f(y) = g(W(y)) for all y in f's
// evaluation domain, for a known permutation w of that domain.
type PrescribedPermutationCheckProof struct {
	FCommitment fri.Commitment
	GCommitment fri.Commitment
	TEnd        Evaluation
	TR          Evaluation
	TWR         Evaluation
	QR          Evaluation
	GWR         Evaluation
	FWR         Evaluation
	WWR         Evaluation
}

// PrescribedPermutationCheck proves f is g composed with the prescribed
// permutation w, via the running product of
// (r - s*w(omega^i) - f(omega^i)) / (r - s*omega^i - g(omega^i)).
func PrescribedPermutationCheck(f, g, w *poly.Polynomial) (*PrescribedPermutationCheckProof, error) {
	fld := f.Field()
	fCommitment, err := fri.Commit(f)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}
	gCommitment, err := fri.Commit(g)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}
	r := fCommitment.InterpretAsFieldElement(fld)
	s := secondChallenge(fld, r, gCommitment)

	omega, logN, size, err := evaluationDomain(f)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}

	fEvals := f.Coefficients()
	gEvals := g.Coefficients()
	wEvals := w.Coefficients()
	ntt.Forward(fEvals, omega, logN)
	ntt.Forward(gEvals, omega, logN)
	ntt.Forward(wEvals, omega, logN)

	ratios := make([]field.Element, len(fEvals))
	domainPoint := fld.One()
	for i := range ratios {
		num := r.Sub(s.Mul(wEvals[i])).Sub(fEvals[i])
		denom, err := r.Sub(s.Mul(domainPoint)).Sub(gEvals[i]).Inv()
		if err != nil {
			panic(fmt.Sprintf("plonk: PrescribedPermutationCheck: denominator vanishes at domain point %d: %v", i, err))
		}
		ratios[i] = num.Mul(denom)
		domainPoint = domainPoint.Mul(omega)
	}

	tX, tEnd := runningProductPolynomial(fld, ratios, omega, logN)

	omegaLast := omega.Pow(bigUint64(size - 1))
	tEndProof, err := fri.EvaluationProof(tX, &omegaLast)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}
	tEndEval := Evaluation{Value: tEnd, Proof: tEndProof}

	tR, err := evalAt(tX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}
	omegaR := omega.Mul(r)
	tWR, err := evalAt(tX, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}

	vanishing := poly.VanishingPolynomial(fld, size)
	qX, _ := tX.LongDivision(vanishing)
	qR, err := evalAt(qX, r)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}

	gWR, err := evalAt(g, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}
	fWR, err := evalAt(f, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}
	wWR, err := evalAt(w, omegaR)
	if err != nil {
		return nil, fmt.Errorf("plonk: PrescribedPermutationCheck: %w", err)
	}

	return &PrescribedPermutationCheckProof{
		FCommitment: fCommitment,
		GCommitment: gCommitment,
		TEnd:        tEndEval,
		TR:          tR,
		TWR:         tWR,
		QR:          qR,
		GWR:         gWR,
		FWR:         fWR,
		WWR:         wWR,
	}, nil
}
