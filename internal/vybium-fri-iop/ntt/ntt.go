// Package ntt implements the radix-2 decimation-in-time number-theoretic
// transform the polynomial and Merkle-commitment layers build on.
package ntt

import (
	"fmt"
	"math/big"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
)

func bitReverse(n, l uint32) uint32 {
	var r uint32
	for i := uint32(0); i < l; i++ {
		r = (r << 1) | (n & 1)
		n >>= 1
	}
	return r
}

// Forward runs the in-place Cooley-Tukey radix-2 NTT on a, which must have
// length n = 1<<logN, using omega as a primitive n-th root of unity.
// n != 1<<logN is a precondition violation: it indicates a caller bug, not
// a recoverable input error, so it panics rather than returning an error.
func Forward(a []field.Element, omega field.Element, logN uint32) {
	n := uint32(len(a))
	if n != 1<<logN {
		panic(fmt.Sprintf("ntt: len(a)=%d does not match 1<<logN=%d", n, uint32(1)<<logN))
	}
	if n == 0 {
		return
	}

	for k := uint32(0); k < n; k++ {
		rk := bitReverse(k, logN)
		if k < rk {
			a[k], a[rk] = a[rk], a[k]
		}
	}

	f := omega.Field()
	m := uint32(1)
	for stage := uint32(0); stage < logN; stage++ {
		wm := omega.Pow(big.NewInt(int64(n / (2 * m))))
		for k := uint32(0); k < n; k += 2 * m {
			w := f.One()
			for j := uint32(0); j < m; j++ {
				t := a[k+j+m].Mul(w)
				left := a[k+j]
				a[k+j+m] = left.Sub(t)
				a[k+j] = left.Add(t)
				w = w.Mul(wm)
			}
		}
		m *= 2
	}
}

// Inverse runs the inverse NTT: forward transform with omega^-1, then
// scales every element by n^-1.
func Inverse(a []field.Element, omega field.Element, logN uint32) {
	if len(a) == 0 {
		return
	}
	f := omega.Field()
	omegaInv, err := omega.Inv()
	if err != nil {
		panic(fmt.Sprintf("ntt: root of unity %s has no inverse", omega.String()))
	}
	Forward(a, omegaInv, logN)

	invLen, err := f.NewElementFromUint64(uint64(len(a))).Inv()
	if err != nil {
		panic(fmt.Sprintf("ntt: transform length %d has no inverse in field", len(a)))
	}
	for i := range a {
		a[i] = a[i].Mul(invLen)
	}
}
