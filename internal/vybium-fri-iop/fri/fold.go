package fri

import (
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

// Fold performs one even-odd decomposition step with challenge alpha:
// coefficient pairs (c_2i, c_2i+1) become c_2i + alpha*c_2i+1, halving the
// polynomial's length (§4.G).
func Fold(p *poly.Polynomial, alpha field.Element) *poly.Polynomial {
	f := p.Field()
	targetLen := p.Len() / 2
	folded := make([]field.Element, targetLen)
	for i := 0; i < targetLen; i++ {
		folded[i] = p.CoefficientAt(2 * i).Add(p.CoefficientAt(2*i + 1).Mul(alpha))
	}
	return poly.FromCoefficients(f, folded)
}

func logLen(n int) int {
	x := 0
	y := n
	for y != 1 {
		y >>= 1
		x++
	}
	return x
}

// FoldFull repeatedly halves w, drawing each fold's challenge by
// Fiat-Shamir from the current layer's commitment, and returns the
// aligned commitment/polynomial vectors described in §4.G: both have
// length log2(len(w)), and commitment_vector[i] is the commitment of
// polynomial_vector[i]. The very first commitment (of w itself, used only
// to derive the first fold's challenge) is not stored, matching the fold
// algorithm's one source of asymmetry between the first and later steps.
func FoldFull(w *poly.Polynomial) ([]Commitment, []*poly.Polynomial, error) {
	logN := logLen(w.Len())

	commitmentVector := make([]Commitment, 0, logN)
	polynomialVector := make([]*poly.Polynomial, 0, logN)

	com, err := Commit(w)
	if err != nil {
		return nil, nil, err
	}
	r := com.InterpretAsFieldElement(w.Field())
	intermediate := Fold(w, r)

	for i := 0; i < logN-1; i++ {
		polynomialVector = append(polynomialVector, intermediate)

		com, err = Commit(intermediate)
		if err != nil {
			return nil, nil, err
		}
		r = com.InterpretAsFieldElement(w.Field())
		intermediate = Fold(intermediate, r)

		commitmentVector = append(commitmentVector, com)
	}

	finalCom, err := Commit(intermediate)
	if err != nil {
		return nil, nil, err
	}
	commitmentVector = append(commitmentVector, finalCom)
	polynomialVector = append(polynomialVector, intermediate)

	return commitmentVector, polynomialVector, nil
}
