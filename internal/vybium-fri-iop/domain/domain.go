// Package domain derives power-of-two multiplicative subgroups of a Field's
// 2-adic tower: the evaluation domains FRI folds and the Merkle commitment
// blow-up operate over.
package domain

import (
	"fmt"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
)

// Domain is a power-of-two-order multiplicative subgroup: {generator^i}.
type Domain struct {
	Size       uint64
	PowerOfTwo uint32
	Generator  field.Element
}

func log2(size uint64) uint32 {
	var p uint32
	for size > 1 {
		size >>= 1
		p++
	}
	return p
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

// RootWithOrder returns the generator of the order-`order` subgroup of f,
// without constructing a full Domain. order is rounded up to the next
// power of two. Fails with ErrSizeExceedsTwoAdicity if that exceeds 2^S.
func RootWithOrder(f *field.Field, order uint64) (field.Element, error) {
	size := nextPowerOfTwo(order)
	p := log2(size)
	if p > f.S() {
		return field.Element{}, fmt.Errorf("domain: order %d exceeds field two-adicity 2^%d: %w", order, f.S(), ErrSizeExceedsTwoAdicity)
	}
	g := f.RootOfUnity()
	for i := p; i < f.S(); i++ {
		g = g.Square()
	}
	return g, nil
}

// RootWithOrderUnchecked is RootWithOrder for callers that have already
// validated the size (matching the source's `root_with_order_unchecked`):
// it panics instead of returning an error when order exceeds 2^S. No
// package in this module calls it; the FRI paths use RootWithOrder and For.
func RootWithOrderUnchecked(f *field.Field, order uint64) field.Element {
	g, err := RootWithOrder(f, order)
	if err != nil {
		panic(fmt.Sprintf("domain: root_with_order_unchecked invoked with order exceeding two-adicity: %v", err))
	}
	return g
}

// For builds the full domain of the given size (rounded up to a power of
// two), failing if that exceeds the field's 2-adicity.
func For(f *field.Field, size uint64) (*Domain, error) {
	n := nextPowerOfTwo(size)
	p := log2(n)
	generator, err := RootWithOrder(f, n)
	if err != nil {
		return nil, err
	}
	return &Domain{Size: n, PowerOfTwo: p, Generator: generator}, nil
}
