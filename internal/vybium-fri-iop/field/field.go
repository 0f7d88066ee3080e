// Package field implements the prime-field arithmetic abstraction the rest
// of the FRI engine is polymorphic over: a single Field/Element pair,
// parameterized per instance by its modulus, 2-adicity, and root of unity.
package field

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Field describes one prime field instance: its modulus, its canonical
// byte width, and the 2-adic subgroup structure FRI folds over.
type Field struct {
	name        string
	modulus     *big.Int
	reprWidth   int
	s           uint32
	generator   int64
	rootOfUnity *Element
}

// Element is a value in a Field. The zero value is not valid; obtain
// elements through a Field's constructors.
type Element struct {
	field *Field
	value *big.Int
}

// newField builds a Field and derives ROOT_OF_UNITY = generator^((p-1)>>s) mod p.
// This mirrors how the `ff` crate's PrimeField derive macro computes
// ROOT_OF_UNITY from a declared PrimeFieldGenerator: squaring it down from
// the full 2-adicity rather than hand-transcribing a 251-bit literal.
func newField(name string, modulus *big.Int, reprWidth int, s uint32, generator int64) *Field {
	f := &Field{
		name:      name,
		modulus:   new(big.Int).Set(modulus),
		reprWidth: reprWidth,
		s:         s,
		generator: generator,
	}
	exp := new(big.Int).Sub(modulus, big.NewInt(1))
	exp.Rsh(exp, uint(s))
	root := new(big.Int).Exp(big.NewInt(generator), exp, modulus)
	f.rootOfUnity = &Element{field: f, value: root}
	return f
}

// Name returns the field's human-readable name, e.g. "Goldilocks".
func (f *Field) Name() string { return f.name }

// Modulus returns a copy of the field's prime modulus.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.modulus) }

// ReprWidth is the fixed canonical little-endian byte width for this field.
func (f *Field) ReprWidth() int { return f.reprWidth }

// S is the 2-adicity: the largest k such that 2^k divides p-1.
func (f *Field) S() uint32 { return f.s }

// RootOfUnity returns the generator of the 2^S-order subgroup.
func (f *Field) RootOfUnity() Element { return *f.rootOfUnity }

// Zero returns the additive identity.
func (f *Field) Zero() Element { return Element{field: f, value: big.NewInt(0)} }

// One returns the multiplicative identity.
func (f *Field) One() Element { return Element{field: f, value: big.NewInt(1)} }

// NewElement reduces v modulo the field's modulus.
func (f *Field) NewElement(v *big.Int) Element {
	reduced := new(big.Int).Mod(v, f.modulus)
	return Element{field: f, value: reduced}
}

// NewElementFromInt64 builds an element from a signed integer, reducing
// negative values into [0, p).
func (f *Field) NewElementFromInt64(v int64) Element {
	return f.NewElement(big.NewInt(v))
}

// NewElementFromUint64 builds an element from an unsigned integer.
func (f *Field) NewElementFromUint64(v uint64) Element {
	return f.NewElement(new(big.Int).SetUint64(v))
}

// ElementFromBytes implements the byte decode described in spec §4.A:
// interpret b as a big-endian integer, reduce modulo p, and return the
// resulting element. It reads big-endian, so it inverts Bytes (which is
// little-endian) only after the bytes are reversed. b need not be exactly
// ReprWidth bytes; the big-endian
// interpretation handles arbitrary lengths, matching
// `field_element_from_bytes` in the original source, which reduces a
// 256-bit big-endian value mod p regardless of the field's own repr width.
func (f *Field) ElementFromBytes(b []byte) Element {
	asInt := new(big.Int).SetBytes(b)
	return f.NewElement(asInt)
}

// RandomElement draws a uniformly random element using crypto/rand.
func (f *Field) RandomElement() (Element, error) {
	v, err := rand.Int(rand.Reader, f.modulus)
	if err != nil {
		return Element{}, fmt.Errorf("field: failed to generate random element: %w", err)
	}
	return f.NewElement(v), nil
}

// Field returns the field this element belongs to.
func (e Element) Field() *Field { return e.field }

// Big returns a copy of the element's value as a big.Int in [0, p).
func (e Element) Big() *big.Int { return new(big.Int).Set(e.value) }

func (e Element) checkSameField(other Element) {
	if e.field != other.field {
		panic("field: operands belong to different fields")
	}
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	e.checkSameField(other)
	return e.field.NewElement(new(big.Int).Add(e.value, other.value))
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	e.checkSameField(other)
	return e.field.NewElement(new(big.Int).Sub(e.value, other.value))
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	e.checkSameField(other)
	return e.field.NewElement(new(big.Int).Mul(e.value, other.value))
}

// Square returns e * e.
func (e Element) Square() Element { return e.Mul(e) }

// Neg returns the additive inverse of e.
func (e Element) Neg() Element {
	return e.field.NewElement(new(big.Int).Neg(e.value))
}

// Inv returns the multiplicative inverse of e. Total on non-zero elements;
// returns an error for zero.
func (e Element) Inv() (Element, error) {
	if e.IsZero() {
		return Element{}, fmt.Errorf("field: cannot invert zero")
	}
	inv := new(big.Int).ModInverse(e.value, e.field.modulus)
	if inv == nil {
		return Element{}, fmt.Errorf("field: no inverse exists for value")
	}
	return Element{field: e.field, value: inv}, nil
}

// Div returns e / other.
func (e Element) Div(other Element) (Element, error) {
	e.checkSameField(other)
	inv, err := other.Inv()
	if err != nil {
		return Element{}, fmt.Errorf("field: division failed: %w", err)
	}
	return e.Mul(inv), nil
}

// Pow raises e to the given non-negative exponent.
func (e Element) Pow(exp *big.Int) Element {
	return Element{field: e.field, value: new(big.Int).Exp(e.value, exp, e.field.modulus)}
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.value.Sign() == 0 }

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool { return e.value.Cmp(big.NewInt(1)) == 0 }

// Equal reports value equality within the same field.
func (e Element) Equal(other Element) bool {
	if e.field != other.field {
		return false
	}
	return e.value.Cmp(other.value) == 0
}

// Bytes returns the canonical little-endian encoding, fixed at ReprWidth bytes.
func (e Element) Bytes() []byte {
	be := e.value.Bytes()
	out := make([]byte, e.field.reprWidth)
	// be is big-endian with at most reprWidth bytes (value < p); reverse
	// it into the low end of out to get little-endian, zero-padded high.
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// String renders the element's decimal value.
func (e Element) String() string { return e.value.String() }
