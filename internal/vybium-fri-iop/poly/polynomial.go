// Package poly implements the polynomial representation and arithmetic the
// FRI engine operates on: a power-of-two coefficient vector with FFT-backed
// multiplication and both long and evaluation-domain division.
package poly

import (
	"fmt"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/domain"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/ntt"
)

// Polynomial is a coefficient vector [c0, c1, ..., c(n-1)] with n a power
// of two. Trailing zero coefficients are allowed as padding.
type Polynomial struct {
	field *field.Field
	coef  []field.Element
}

// FromCoefficients wraps an explicit coefficient vector. The caller is
// responsible for ensuring len(v) is a power of two (use PadToBase/
// PopZeros otherwise), matching the source's `from_vec` contract.
func FromCoefficients(f *field.Field, v []field.Element) *Polynomial {
	coef := make([]field.Element, len(v))
	copy(coef, v)
	return &Polynomial{field: f, coef: coef}
}

// Field returns the field this polynomial's coefficients belong to.
func (p *Polynomial) Field() *field.Field { return p.field }

// Len returns the coefficient vector's length.
func (p *Polynomial) Len() int { return len(p.coef) }

// LogN returns log2 of the next power of two at or above Len().
func (p *Polynomial) LogN() uint32 {
	x := uint32(0)
	y := nextPowerOfTwo(uint64(len(p.coef)))
	for y != 1 {
		y >>= 1
		x++
	}
	return x
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// Coefficients returns a copy of the coefficient vector.
func (p *Polynomial) Coefficients() []field.Element {
	out := make([]field.Element, len(p.coef))
	copy(out, p.coef)
	return out
}

// CoefficientAt returns the coefficient at index i.
func (p *Polynomial) CoefficientAt(i int) field.Element { return p.coef[i] }

// LeadingCoefficient returns the last coefficient (index Len()-1).
func (p *Polynomial) LeadingCoefficient() field.Element { return p.coef[len(p.coef)-1] }

// Clone returns a deep copy.
func (p *Polynomial) Clone() *Polynomial { return FromCoefficients(p.field, p.coef) }

// Eval evaluates p at point via Horner's scheme from the leading
// coefficient down, O(n).
func (p *Polynomial) Eval(point field.Element) field.Element {
	result := p.LeadingCoefficient()
	for i := len(p.coef) - 2; i >= 0; i-- {
		result = result.Mul(point).Add(p.coef[i])
	}
	return result
}

// EvalNaive evaluates p at point by direct summation of c_i * point^i.
// O(n), with powers of point built up incrementally; kept only as a
// cross-check for tests, mirroring the source's
// test-only `eval_at_naive`.
func (p *Polynomial) EvalNaive(point field.Element) field.Element {
	e := point
	ret := p.coef[0]
	for i := 1; i < len(p.coef); i++ {
		ret = ret.Add(e.Mul(p.coef[i]))
		e = e.Mul(point)
	}
	return ret
}

// PadToBase extends the coefficient vector with zeros up to length 1<<newBase.
func (p *Polynomial) PadToBase(newBase uint32) {
	size := uint64(1) << newBase
	if size <= uint64(len(p.coef)) {
		panic("poly: PadToBase target size must exceed current length")
	}
	zero := p.field.Zero()
	for uint64(len(p.coef)) < size {
		p.coef = append(p.coef, zero)
	}
}

// PopZeros strips trailing zero coefficients, then re-pads to the next
// power of two (length 1 at minimum).
func (p *Polynomial) PopZeros() {
	for len(p.coef) > 0 && p.coef[len(p.coef)-1].IsZero() {
		p.coef = p.coef[:len(p.coef)-1]
	}
	n := uint64(len(p.coef))
	if n == 0 || (n&(n-1)) != 0 {
		x := uint32(0)
		y := nextPowerOfTwo(n)
		if y == 0 {
			y = 1
		}
		for y != 1 {
			y >>= 1
			x++
		}
		p.PadToBase(x)
	}
}

// Add returns p + other, coefficient-wise, preserving the longer
// operand's tail. Result length is max(len(p), len(other)).
func Add(a, b *Polynomial) *Polynomial {
	f := a.field
	n := len(a.coef)
	if len(b.coef) > n {
		n = len(b.coef)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a.coef):
			out[i] = b.coef[i]
		case i >= len(b.coef):
			out[i] = a.coef[i]
		default:
			out[i] = a.coef[i].Add(b.coef[i])
		}
	}
	return FromCoefficients(f, out)
}

// Sub returns a - b, negating b's tail where a is shorter.
func Sub(a, b *Polynomial) *Polynomial {
	f := a.field
	n := len(a.coef)
	if len(b.coef) > n {
		n = len(b.coef)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a.coef):
			out[i] = f.Zero().Sub(b.coef[i])
		case i >= len(b.coef):
			out[i] = a.coef[i]
		default:
			out[i] = a.coef[i].Sub(b.coef[i])
		}
	}
	return FromCoefficients(f, out)
}

// Mul returns a * b via FFT multiplication at size 2^(logN(a)+logN(b)).
func Mul(a, b *Polynomial) (*Polynomial, error) {
	f := a.field
	logN := a.LogN() + b.LogN()
	newSize := uint64(1) << logN

	left := make([]field.Element, newSize)
	copy(left, a.coef)
	for i := len(a.coef); uint64(i) < newSize; i++ {
		left[i] = f.Zero()
	}
	right := make([]field.Element, newSize)
	copy(right, b.coef)
	for i := len(b.coef); uint64(i) < newSize; i++ {
		right[i] = f.Zero()
	}

	d, err := domain.For(f, newSize)
	if err != nil {
		return nil, fmt.Errorf("poly: mul: %w", err)
	}
	omega := d.Generator

	ntt.Forward(left, omega, logN)
	ntt.Forward(right, omega, logN)

	product := make([]field.Element, newSize)
	for i := range product {
		product[i] = left[i].Mul(right[i])
	}
	ntt.Inverse(product, omega, logN)

	return FromCoefficients(f, product), nil
}

// Square returns p * p.
func (p *Polynomial) Square() (*Polynomial, error) { return Mul(p, p.Clone()) }

// SubConstant returns p with c subtracted from its constant term.
func (p *Polynomial) SubConstant(c field.Element) *Polynomial {
	ret := p.Clone()
	ret.coef[0] = ret.coef[0].Sub(c)
	return ret
}

// AddConstant adds c to the constant term in place.
func (p *Polynomial) AddConstant(c field.Element) {
	p.coef[0] = p.coef[0].Add(c)
}

// VanishingPolynomial returns X^n - 1, padded to the next power of two.
func VanishingPolynomial(f *field.Field, n uint64) *Polynomial {
	v := make([]field.Element, n+1)
	v[0] = f.Zero().Sub(f.One())
	for i := uint64(1); i < n; i++ {
		v[i] = f.Zero()
	}
	v[n] = f.One()
	p := FromCoefficients(f, v)
	size := nextPowerOfTwo(uint64(len(v)))
	if size > uint64(len(v)) {
		x := uint32(0)
		y := size
		for y != 1 {
			y >>= 1
			x++
		}
		p.PadToBase(x)
	}
	return p
}
