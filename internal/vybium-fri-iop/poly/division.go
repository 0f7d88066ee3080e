package poly

import (
	"fmt"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/domain"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/ntt"
)

// trimmedLen returns the length after stripping trailing zero coefficients,
// without mutating coef.
func trimmedLen(coef []field.Element) int {
	n := len(coef)
	for n > 0 && coef[n-1].IsZero() {
		n--
	}
	return n
}

// LongDivision performs schoolbook polynomial division: a = q*b + r with
// deg(r) < deg(b). The quotient is padded to the next power of two before
// being returned. Dividing by the zero polynomial is a precondition
// violation and panics, matching the source's `long_division`, which
// assumes its caller has already ruled out a zero divisor.
func (p *Polynomial) LongDivision(divisor *Polynomial) (quotient, remainder *Polynomial) {
	f := p.field
	bLen := trimmedLen(divisor.coef)
	if bLen == 0 {
		panic("poly: LongDivision by the zero polynomial")
	}
	divCoef := divisor.coef[:bLen]
	leadInv, err := divCoef[bLen-1].Inv()
	if err != nil {
		panic(fmt.Sprintf("poly: LongDivision: divisor leading coefficient not invertible: %v", err))
	}

	aLen := trimmedLen(p.coef)
	rem := make([]field.Element, aLen)
	copy(rem, p.coef[:aLen])

	if aLen < bLen {
		zero := f.Zero()
		q := FromCoefficients(f, []field.Element{zero})
		return q, FromCoefficients(f, rem)
	}

	qLen := aLen - bLen + 1
	q := make([]field.Element, qLen)
	for i := qLen - 1; i >= 0; i-- {
		degree := i + bLen - 1
		if degree >= len(rem) {
			q[i] = f.Zero()
			continue
		}
		coeff := rem[degree].Mul(leadInv)
		q[i] = coeff
		if coeff.IsZero() {
			continue
		}
		for j := 0; j < bLen; j++ {
			rem[i+j] = rem[i+j].Sub(coeff.Mul(divCoef[j]))
		}
	}

	remTrim := trimmedLen(rem)
	if remTrim == 0 {
		rem = []field.Element{f.Zero()}
	} else {
		rem = rem[:remTrim]
	}

	quotient = FromCoefficients(f, q)
	quotient.PopZeros()
	remainder = FromCoefficients(f, rem)
	return quotient, remainder
}

// DivideFFT divides p by divisor via evaluation-domain division: divisor is
// zero-padded to p's length (the dividend's length), both are further
// zero-padded to a transform size of n*log2(n) (rounded up to the next
// power of two by domain.For), forward-transformed, pointwise divided, and
// inverse-transformed, with trailing zeros stripped from the result. It is
// a precondition violation for any root of divisor to coincide with a
// point of that transform domain (the pointwise division there would
// divide by zero), and DivideFFT panics rather than silently producing a
// wrong quotient.
func DivideFFT(p, divisor *Polynomial) (*Polynomial, error) {
	f := p.field
	n := uint64(p.Len())
	logN := log2Uint64(n)
	transformSize := n * uint64(logN)
	if transformSize == 0 {
		transformSize = n
	}

	d, err := domain.For(f, transformSize)
	if err != nil {
		return nil, fmt.Errorf("poly: DivideFFT: %w", err)
	}
	omega := d.Generator
	size := d.Size

	numerator := make([]field.Element, size)
	copy(numerator, p.coef)
	for i := uint64(len(p.coef)); i < size; i++ {
		numerator[i] = f.Zero()
	}
	ntt.Forward(numerator, omega, d.PowerOfTwo)

	denominator := make([]field.Element, size)
	copy(denominator, divisor.coef)
	for i := uint64(len(divisor.coef)); i < size; i++ {
		denominator[i] = f.Zero()
	}
	ntt.Forward(denominator, omega, d.PowerOfTwo)

	quotientEval := make([]field.Element, size)
	for i := range quotientEval {
		inv, err := denominator[i].Inv()
		if err != nil {
			panic(fmt.Sprintf("poly: DivideFFT: divisor root coincides with transform domain point: %v", err))
		}
		quotientEval[i] = numerator[i].Mul(inv)
	}
	ntt.Inverse(quotientEval, omega, d.PowerOfTwo)

	q := FromCoefficients(f, quotientEval)
	q.PopZeros()
	return q, nil
}

// log2Uint64 returns log2(n) for a power-of-two n, 0 for n <= 1.
func log2Uint64(n uint64) uint32 {
	var p uint32
	for n > 1 {
		n >>= 1
		p++
	}
	return p
}

// ShiftPolynomial returns (p(x) - p(r)) / (x - r), the standard
// quotient-by-a-point FRI evaluation proofs are built from.
func ShiftPolynomial(p *Polynomial, r field.Element) *Polynomial {
	f := p.field
	fr := p.Eval(r)
	numerator := p.SubConstant(fr)
	one := f.One()
	denom := FromCoefficients(f, []field.Element{f.Zero().Sub(r), one})
	q, _ := numerator.LongDivision(denom)
	return q
}
