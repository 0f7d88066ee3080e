package field

import "math/big"

// Goldilocks is the 64-bit field p = 2^64 - 2^32 + 1 used by the FRI core's
// fast path. Its 2-adicity is 32, matching plonky2's choice of field. Its
// generator is 7, a quadratic non-residue mod p (3 is a residue here, so
// 3^((p-1)>>32) would not have full order 2^32).
var Goldilocks = func() *Field {
	p := new(big.Int).Lsh(big.NewInt(1), 64)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
	p.Add(p, big.NewInt(1))
	return newField("Goldilocks", p, 8, 32, 7)
}()

// Stark251 is the ~251-bit field used by the PLONK application layer:
// p = 2^251 + 2^196 + 2^192 + 1. p-1 = 2^192 * (2^59 + 17), so S = 192.
var Stark251 = func() *Field {
	p := new(big.Int).Lsh(big.NewInt(1), 251)
	p.Add(p, new(big.Int).Lsh(big.NewInt(1), 196))
	p.Add(p, new(big.Int).Lsh(big.NewInt(1), 192))
	p.Add(p, big.NewInt(1))
	return newField("Stark251", p, 32, 192, 3)
}()
